package testutil

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// Fixture credentials accepted by the fake platform.
const (
	TestToken        = "test-session-token"
	TestInstanceZUID = "8-aaeffee09b-7w6v22"
	TestCookieName   = "APP_SID"
)

// Path prefixes of the platform families served by one Platform.
const (
	InstancePrefix = "/instance/v1"
	LegacyPrefix   = "/sites-service/" + TestInstanceZUID
	AccountsPrefix = "/accounts/v1"
	MediaPrefix    = "/media-manager-service"
	StoragePrefix  = "/media-storage-service"
	AuthPrefix     = "/auth"
)

// RecordedRequest is a request as the fake platform received it.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Multipart parses a multipart/form-data body into its plain fields and the
// file part, if any.
func (r RecordedRequest) Multipart() (map[string]string, *UploadedFile, error) {
	_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, nil, err
	}

	reader := multipart.NewReader(bytes.NewReader(r.Body), params["boundary"])
	fields := map[string]string{}

	var file *UploadedFile

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, nil, err
		}

		content, err := io.ReadAll(part)
		if err != nil {
			return nil, nil, err
		}

		if part.FileName() != "" {
			file = &UploadedFile{
				FieldName:   part.FormName(),
				FileName:    part.FileName(),
				ContentType: part.Header.Get("Content-Type"),
				Content:     content,
			}

			continue
		}

		fields[part.FormName()] = string(content)
	}

	return fields, file, nil
}

// UploadedFile is the file part of a multipart request.
type UploadedFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

type failure struct {
	status  int
	message string
}

// Platform is an in-memory fake of the content platform. Every API family
// is mounted under its own prefix on a single httptest server.
type Platform struct {
	Token        string
	InstanceZUID string
	CookieName   string

	server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	failures map[string]failure
	store    *store
}

// NewPlatform starts a fake platform seeded with fixtures. It is closed when
// the test ends.
func NewPlatform(t testing.TB) *Platform {
	t.Helper()

	platform := &Platform{
		Token:        TestToken,
		InstanceZUID: TestInstanceZUID,
		CookieName:   TestCookieName,
		failures:     map[string]failure{},
		store:        newStore(),
	}

	platform.server = httptest.NewServer(platform.routes())
	t.Cleanup(platform.server.Close)

	return platform
}

// URL returns the server root.
func (p *Platform) URL() string {
	return p.server.URL
}

// Client returns an HTTP client for the server.
func (p *Platform) Client() *http.Client {
	return p.server.Client()
}

// Config returns an SDK configuration pointing every family at the platform.
func (p *Platform) Config() *zesty.Config {
	return &zesty.Config{
		InstanceZUID:       p.InstanceZUID,
		Token:              p.Token,
		InstancesAPIURL:    p.server.URL + InstancePrefix,
		LegacyAPIURL:       p.server.URL + LegacyPrefix,
		AccountsAPIURL:     p.server.URL + AccountsPrefix,
		MediaAPIURL:        p.server.URL + MediaPrefix,
		MediaStorageAPIURL: p.server.URL + StoragePrefix,
		AuthURL:            p.server.URL + AuthPrefix,
		CookieName:         p.CookieName,
		HTTPClient:         p.server.Client(),
	}
}

// Requests returns every request received so far.
func (p *Platform) Requests() []RecordedRequest {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]RecordedRequest(nil), p.requests...)
}

// LastRequest returns the most recent request.
func (p *Platform) LastRequest() RecordedRequest {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.requests) == 0 {
		return RecordedRequest{}
	}

	return p.requests[len(p.requests)-1]
}

// FailWith makes every request matching method and path answer with status
// and an error message instead of reaching its handler.
func (p *Platform) FailWith(method, path string, status int, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.failures[method+" "+path] = failure{status: status, message: message}
}

func (p *Platform) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(p.record, p.injectFailures)

	router.Route(InstancePrefix, func(r chi.Router) {
		r.Use(p.requireBearer)
		p.instanceRoutes(r)
	})

	router.Route(LegacyPrefix, func(r chi.Router) {
		r.Use(p.requireCookie)
		r.Post("/content/items/{item}/publish-schedule", p.legacyPublish)
		r.Patch("/content/items/{item}/publish-schedule/{publishing}", p.legacyUnpublish)
	})

	router.Route(AccountsPrefix, func(r chi.Router) {
		r.Use(p.requireBearer)
		r.Get("/instances/{instance}", p.getInstance)
		r.Get("/instances/{instance}/users/roles", p.getInstanceUsers)
		r.Get("/instances/{instance}/domains", p.getInstanceDomains)
	})

	router.Route(MediaPrefix, func(r chi.Router) {
		r.Use(p.requireBearer)
		p.mediaRoutes(r)
	})

	router.Route(StoragePrefix, func(r chi.Router) {
		r.Use(p.requireXAuth)
		r.Post("/upload/{driver}/{bucket}", p.upload)
	})

	router.Route(AuthPrefix, func(r chi.Router) {
		r.Use(p.requireBearer)
		r.Get("/verify", p.verify)
	})

	return router
}

func (p *Platform) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		p.mu.Lock()
		p.requests = append(p.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		p.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (p *Platform) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		fail, ok := p.failures[r.Method+" "+r.URL.Path]
		p.mu.Unlock()

		if ok {
			writeError(w, r, fail.status, fail.message)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (p *Platform) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+p.Token {
			writeError(w, r, http.StatusUnauthorized, "Unauthorized")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (p *Platform) requireCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(p.CookieName)
		if err != nil || cookie.Value != p.Token {
			writeError(w, r, http.StatusUnauthorized, "Unauthorized")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (p *Platform) requireXAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth") != p.Token {
			writeError(w, r, http.StatusUnauthorized, "Unauthorized")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (p *Platform) verify(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"code":    http.StatusOK,
		"message": "Valid token",
		"data": zesty.Session{
			UserZUID:  "5-user-cloud",
			ExpiresAt: "2026-12-31T00:00:00Z",
		},
	})
}

// writeData renders the instance/accounts envelope shape.
func writeData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	render.Status(r, status)
	render.JSON(w, r, map[string]interface{}{
		"_meta": map[string]interface{}{"timestamp": "2026-10-18T00:00:00Z"},
		"data":  data,
	})
}

// writeMedia renders the media-service envelope shape.
func writeMedia(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	render.Status(r, status)
	render.JSON(w, r, map[string]interface{}{
		"code":   status,
		"status": strings.ToUpper(http.StatusText(status)),
		"data":   data,
	})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]interface{}{"error": message})
}
