package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdhttp "net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/zesty-client/internal/constants"
	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// Doer issues a single HTTP exchange. Client is the production
// implementation; tests substitute their own.
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request is one outbound call. URL is absolute.
type Request struct {
	Method string
	URL    string
	Header stdhttp.Header
	// Body is JSON-encoded when non-nil. Ignored when Form is set.
	Body interface{}
	// Form is sent as multipart/form-data.
	Form *zesty.FormData
}

// Response is a fully-buffered HTTP response.
type Response struct {
	StatusCode int
	Header     stdhttp.Header
	Body       []byte
}

// Client sends requests through go-retryablehttp configured for exactly one
// attempt: non-2xx statuses are returned as responses and transport errors
// are passed through unwrapped.
type Client struct {
	client     *retryablehttp.Client
	httpClient *stdhttp.Client
	logger     zesty.Logger
	debug      bool
	userAgent  string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger zesty.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each request. Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *stdhttp.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new transport client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		userAgent: constants.DefaultUserAgent,
		timeout:   constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	if c.logger != nil && c.debug {
		retryClient.Logger = &leveledLogger{logger: c.logger}
	}

	if c.httpClient != nil {
		retryClient.HTTPClient = c.httpClient
	} else {
		retryClient.HTTPClient.Timeout = c.timeout
	}

	c.client = retryClient

	return c
}

// neverRetry stops after the first attempt whatever its outcome.
func neverRetry(ctx context.Context, resp *stdhttp.Response, err error) (bool, error) {
	return false, nil
}

// Do executes one HTTP exchange.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)

	requestID := uuid.NewString()
	httpReq.Header.Set(constants.RequestIDHeader, requestID)

	c.logDebug("HTTP Request", map[string]interface{}{
		"method":     req.Method,
		"url":        req.URL,
		"request_id": requestID,
	})

	start := time.Now()

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err //nolint:wrapcheck // transport errors reach callers unmodified
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logDebug("HTTP Response", map[string]interface{}{
		"status":     resp.StatusCode,
		"duration":   time.Since(start).String(),
		"request_id": requestID,
	})

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.logger != nil && c.debug {
		c.logger.Debug(msg, fields)
	}
}

// encodeBody returns the request body and its content type. Multipart
// bodies are encoded while they are sent.
func encodeBody(req *Request) (interface{}, string, error) {
	if req.Form != nil {
		body, contentType := streamMultipart(req.Form)

		return body, contentType, nil
	}

	if req.Body == nil {
		return nil, "", nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("marshaling JSON body: %w", err)
	}

	return bytes.NewReader(data), "application/json", nil
}
