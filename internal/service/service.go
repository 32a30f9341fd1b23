// Package service implements the request dispatcher every resource client
// delegates to. A Service owns one base URL and one token; it builds the
// absolute URL, attaches authentication, encodes the payload, sends exactly
// one request and normalizes the reply into a zesty.Envelope.
package service

import (
	"context"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
	zestyhttp "github.com/fivetwenty-io/zesty-client/internal/http"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// Options describes one request. The zero value is a GET without payload.
type Options struct {
	// Method is set by the verb helpers.
	Method string
	// Payload is sent as JSON, or as multipart form data when FormData is set
	// (then it must be a *zesty.FormData or a map[string]string).
	Payload  interface{}
	FormData bool
	// CookieAuth additionally sends the token as the session cookie.
	CookieAuth bool
	// XAuthHeader additionally sends the token in the X-Auth header.
	XAuthHeader bool
	// SuccessCode is the status the caller expects. It is informational:
	// it never turns a completed response into an error.
	SuccessCode int
	Query       url.Values
	// Formatter post-processes the envelope after the status is injected.
	Formatter func(*zesty.Envelope) *zesty.Envelope
}

// Service is the request dispatcher. It is immutable after construction and
// safe for concurrent use.
type Service struct {
	baseURL    string
	token      string
	cookieName string
	transport  zestyhttp.Doer
	logger     zesty.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCookieName sets the session cookie name used by cookie-authenticated
// calls. New rejects names that are not valid cookie names.
func WithCookieName(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.cookieName = name
		}
	}
}

// WithTransport sets the transport.
func WithTransport(transport zestyhttp.Doer) Option {
	return func(s *Service) {
		if transport != nil {
			s.transport = transport
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger zesty.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a dispatcher. Both the base URL and the token are required:
// every request is authenticated.
func New(baseURL, token string, opts ...Option) (*Service, error) {
	if baseURL == "" {
		return nil, zesty.NewMissingArgument("Service.New", "baseAPI")
	}

	if token == "" {
		return nil, zesty.NewMissingArgument("Service.New", "token")
	}

	svc := &Service{
		baseURL:    baseURL,
		token:      token,
		cookieName: constants.DefaultCookieName,
	}

	for _, opt := range opts {
		opt(svc)
	}

	if !isCookieName(svc.cookieName) {
		return nil, zesty.NewInvalidArgument("Service.New", "cookieName", "not a valid cookie name: "+svc.cookieName)
	}

	if svc.transport == nil {
		svc.transport = zestyhttp.NewClient()
	}

	return svc, nil
}

// BaseURL returns the base URL requests are sent to.
func (s *Service) BaseURL() string {
	return s.baseURL
}

// CookieName returns the session cookie name.
func (s *Service) CookieName() string {
	return s.cookieName
}

// Interpolate replaces every occurrence of each key of replacements found in
// template with its value. The template is scanned once, so substituted
// values are never rescanned; where keys overlap the longer key wins.
// Nothing is escaped and unresolved placeholders are left as they are.
func (s *Service) Interpolate(template string, replacements map[string]string) string {
	return Interpolate(template, replacements)
}

// Interpolate is the package-level form of Service.Interpolate.
func Interpolate(template string, replacements map[string]string) string {
	keys := slices.DeleteFunc(slices.Collect(maps.Keys(replacements)), func(key string) bool {
		return key == ""
	})
	if len(keys) == 0 {
		return template
	}

	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}

		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, 2*len(keys)) //nolint:mnd // old and new per key
	for _, key := range keys {
		pairs = append(pairs, key, replacements[key])
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// Get issues a GET request; the expected status defaults to 200.
func (s *Service) Get(ctx context.Context, path string, opts *Options) (*zesty.Envelope, error) {
	return s.Request(ctx, path, withMethod(opts, http.MethodGet, constants.HTTPStatusOK))
}

// Delete issues a DELETE request; the expected status defaults to 200.
func (s *Service) Delete(ctx context.Context, path string, opts *Options) (*zesty.Envelope, error) {
	return s.Request(ctx, path, withMethod(opts, http.MethodDelete, constants.HTTPStatusOK))
}

// Put issues a PUT request; the expected status defaults to 200.
func (s *Service) Put(ctx context.Context, path string, opts *Options) (*zesty.Envelope, error) {
	return s.Request(ctx, path, withMethod(opts, http.MethodPut, constants.HTTPStatusOK))
}

// Post issues a POST request; the expected status defaults to 201.
func (s *Service) Post(ctx context.Context, path string, opts *Options) (*zesty.Envelope, error) {
	return s.Request(ctx, path, withMethod(opts, http.MethodPost, constants.HTTPStatusCreated))
}

// Patch issues a PATCH request; the expected status defaults to 200.
func (s *Service) Patch(ctx context.Context, path string, opts *Options) (*zesty.Envelope, error) {
	return s.Request(ctx, path, withMethod(opts, http.MethodPatch, constants.HTTPStatusOK))
}

// withMethod copies opts, fixes the method and fills in the expected status
// only when the caller left it unset.
func withMethod(opts *Options, method string, successCode int) *Options {
	resolved := Options{}
	if opts != nil {
		resolved = *opts
	}

	resolved.Method = method

	if resolved.SuccessCode == 0 {
		resolved.SuccessCode = successCode
	}

	return &resolved
}

// Request sends one request and returns the normalized envelope.
//
// Every completed response, whatever its status, is returned without error.
// Transport failures are returned exactly as the transport reported them.
func (s *Service) Request(ctx context.Context, path string, opts *Options) (*zesty.Envelope, error) {
	if opts == nil {
		opts = &Options{}
	}

	req, err := s.buildRequest(path, opts)
	if err != nil {
		return nil, err
	}

	resp, err := s.transport.Do(ctx, req)
	if err != nil {
		return nil, err //nolint:wrapcheck // transport errors reach callers unmodified
	}

	env := zesty.NewEnvelope(resp.StatusCode, resp.Header, resp.Body)

	if opts.SuccessCode != 0 && env.StatusCode != opts.SuccessCode && s.logger != nil {
		s.logger.Debug("unexpected status", map[string]interface{}{
			"method":   req.Method,
			"path":     path,
			"status":   env.StatusCode,
			"expected": opts.SuccessCode,
		})
	}

	if opts.Formatter != nil {
		formatted := opts.Formatter(env)
		if formatted != nil {
			env = formatted
		}
	}

	return env, nil
}

func (s *Service) buildRequest(path string, opts *Options) (*zestyhttp.Request, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req := &zestyhttp.Request{
		Method: method,
		URL:    s.buildURL(path, opts.Query),
		Header: http.Header{},
	}

	req.Header.Set("Authorization", "Bearer "+s.token)

	if opts.CookieAuth {
		req.Header.Set("Cookie", s.cookieName+"="+url.PathEscape(s.token))
	}

	if opts.XAuthHeader {
		req.Header.Set(constants.XAuthHeader, s.token)
	}

	if opts.Payload == nil {
		return req, nil
	}

	if !opts.FormData {
		req.Body = opts.Payload

		return req, nil
	}

	switch payload := opts.Payload.(type) {
	case *zesty.FormData:
		req.Form = payload
	case map[string]string:
		req.Form = zesty.NewFormData(payload)
	default:
		return nil, zesty.NewInvalidArgument("Service.Request", "payload", "form data must be *zesty.FormData or map[string]string")
	}

	return req, nil
}

// isCookieName reports whether name is an RFC 6265 cookie name (an HTTP token).
func isCookieName(name string) bool {
	if name == "" {
		return false
	}

	return !strings.ContainsFunc(name, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		default:
			return !strings.ContainsRune("!#$%&'*+-.^_`|~", r)
		}
	})
}

func (s *Service) buildURL(path string, query url.Values) string {
	target := s.baseURL + path
	if len(query) == 0 {
		return target
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return target + separator + query.Encode()
}
