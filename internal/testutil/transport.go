// Package testutil provides test doubles shared by the client packages: a
// recording transport and an in-memory fake of the content platform.
package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	zestyhttp "github.com/fivetwenty-io/zesty-client/internal/http"
)

// RecordingTransport is a zestyhttp.Doer that records every request and
// answers with a canned response.
type RecordingTransport struct {
	mu       sync.Mutex
	requests []*zestyhttp.Request

	// Respond produces the reply. When nil, every call returns StatusCode
	// with Body.
	Respond    func(req *zestyhttp.Request) (*zestyhttp.Response, error)
	StatusCode int
	Body       []byte
}

// NewRecordingTransport creates a transport that replies with status and a
// JSON encoding of body.
func NewRecordingTransport(status int, body interface{}) *RecordingTransport {
	transport := &RecordingTransport{StatusCode: status}

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}

		transport.Body = data
	}

	return transport
}

// Do implements zestyhttp.Doer.
func (t *RecordingTransport) Do(_ context.Context, req *zestyhttp.Request) (*zestyhttp.Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req)
	t.mu.Unlock()

	if t.Respond != nil {
		return t.Respond(req)
	}

	return &zestyhttp.Response{
		StatusCode: t.StatusCode,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       t.Body,
	}, nil
}

// Calls returns the number of requests sent.
func (t *RecordingTransport) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.requests)
}

// Requests returns a copy of the recorded requests.
func (t *RecordingTransport) Requests() []*zestyhttp.Request {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]*zestyhttp.Request(nil), t.requests...)
}

// Last returns the most recent request, or nil.
func (t *RecordingTransport) Last() *zestyhttp.Request {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.requests) == 0 {
		return nil
	}

	return t.requests[len(t.requests)-1]
}
