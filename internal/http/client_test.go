package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	zestyhttp "github.com/fivetwenty-io/zesty-client/internal/http"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func (l *MockLogger) messages() []string {
	msgs := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		msgs = append(msgs, entry["msg"].(string))
	}

	return msgs
}

var errGateTimeout = errors.New("request did not reach the server before the file was read")

// gatedReader returns its first chunk at once and the rest only after gate
// is closed, so a body that is buffered before sending never completes.
type gatedReader struct {
	chunks []string
	gate   <-chan struct{}
	read   int
}

func (r *gatedReader) Read(p []byte) (int, error) {
	if r.read >= len(r.chunks) {
		return 0, io.EOF
	}

	if r.read > 0 {
		select {
		case <-r.gate:
		case <-time.After(5 * time.Second):
			return 0, errGateTimeout
		}
	}

	n := copy(p, r.chunks[r.read])
	r.read++

	return n, nil
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/content/models", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.NotEmpty(t, request.Header.Get("X-Request-Id"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"data": []map[string]string{{"ZUID": "6-abc"}},
			})
		}))
		defer server.Close()

		client := zestyhttp.NewClient()

		resp, err := client.Do(context.Background(), &zestyhttp.Request{
			Method: "GET",
			URL:    server.URL + "/content/models",
			Header: http.Header{"Authorization": []string{"Bearer test-token"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `{"data":[{"ZUID":"6-abc"}]}`, string(resp.Body))
	})

	t.Run("request with JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "articles", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := zestyhttp.NewClient()

		resp, err := client.Do(context.Background(), &zestyhttp.Request{
			Method: "POST",
			URL:    server.URL + "/content/models",
			Body:   map[string]string{"name": "articles"},
		})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("multipart form", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.True(t, strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data"))
			require.NoError(t, request.ParseMultipartForm(1<<20))
			assert.Equal(t, "Midgar Map", request.FormValue("title"))
			assert.Equal(t, "3-bin", request.FormValue("bin_id"))

			file, header, err := request.FormFile("file")
			require.NoError(t, err)

			defer file.Close()

			content, _ := io.ReadAll(file)
			assert.Equal(t, "midgar.jpg", header.Filename)
			assert.Equal(t, "jpeg-bytes", string(content))

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := zestyhttp.NewClient()

		resp, err := client.Do(context.Background(), &zestyhttp.Request{
			Method: "POST",
			URL:    server.URL + "/upload",
			Form: &zesty.FormData{
				Fields: map[string]string{"title": "Midgar Map", "bin_id": "3-bin"},
				File:   &zesty.FormFile{FileName: "midgar.jpg", Reader: strings.NewReader("jpeg-bytes")},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("multipart file is sent while it is read", func(t *testing.T) {
		t.Parallel()

		received := make(chan struct{})

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			close(received)

			file, header, err := request.FormFile("file")
			if !assert.NoError(t, err) {
				writer.WriteHeader(http.StatusBadRequest)

				return
			}

			defer file.Close()

			content, _ := io.ReadAll(file)
			assert.Equal(t, "chocobo.png", header.Filename)
			assert.Equal(t, "first-chunk|second-chunk", string(content))

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := zestyhttp.NewClient()

		resp, err := client.Do(context.Background(), &zestyhttp.Request{
			Method: "POST",
			URL:    server.URL + "/upload",
			Form: &zesty.FormData{
				Fields: map[string]string{"title": "Chocobo"},
				File: &zesty.FormFile{
					FileName: "chocobo.png",
					Reader:   &gatedReader{chunks: []string{"first-chunk|", "second-chunk"}, gate: received},
				},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error status is not an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"error":"boom"}`))
		}))
		defer server.Close()

		client := zestyhttp.NewClient()

		resp, err := client.Do(context.Background(), &zestyhttp.Request{Method: "GET", URL: server.URL + "/x"})
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.JSONEq(t, `{"error":"boom"}`, string(resp.Body))
	})

	t.Run("server errors are not retried", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := zestyhttp.NewClient()

		resp, err := client.Do(context.Background(), &zestyhttp.Request{Method: "GET", URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, 1, attempts)
	})

	t.Run("transport error is passed through", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client := zestyhttp.NewClient(zestyhttp.WithTimeout(time.Second))

		resp, err := client.Do(context.Background(), &zestyhttp.Request{Method: "GET", URL: serverURL})
		require.Error(t, err)
		assert.Nil(t, resp)

		urlErr := &url.Error{}
		assert.True(t, errors.As(err, &urlErr))
		assert.NotContains(t, err.Error(), "giving up")
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "my-agent/1.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := zestyhttp.NewClient(zestyhttp.WithUserAgent("my-agent/1.0"))

		_, err := client.Do(context.Background(), &zestyhttp.Request{Method: "GET", URL: server.URL})
		require.NoError(t, err)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := zestyhttp.NewClient(zestyhttp.WithLogger(logger), zestyhttp.WithDebug(true))

		_, err := client.Do(context.Background(), &zestyhttp.Request{Method: "GET", URL: server.URL})
		require.NoError(t, err)

		msgs := logger.messages()
		assert.Contains(t, msgs, "HTTP Request")
		assert.Contains(t, msgs, "HTTP Response")
	})

	t.Run("logger without debug stays quiet", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := zestyhttp.NewClient(zestyhttp.WithLogger(logger))

		_, err := client.Do(context.Background(), &zestyhttp.Request{Method: "GET", URL: server.URL})
		require.NoError(t, err)
		assert.Empty(t, logger.logs)
	})
}

func TestClient_CustomHTTPClient(t *testing.T) {
	t.Parallel()

	called := false
	httpClient := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			called = true

			return &http.Response{
				StatusCode: http.StatusTeapot,
				Header:     http.Header{},
				Body:       io.NopCloser(strings.NewReader(`{}`)),
				Request:    req,
			}, nil
		}),
	}

	client := zestyhttp.NewClient(zestyhttp.WithHTTPClient(httpClient))

	resp, err := client.Do(context.Background(), &zestyhttp.Request{Method: "GET", URL: "https://example.invalid/"})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
