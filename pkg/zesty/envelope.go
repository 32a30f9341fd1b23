package zesty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// StatusCodeKey is the key under which the transport status is merged into
// the JSON form of an Envelope.
const StatusCodeKey = "statusCode"

// Envelope is the normalized result of a completed HTTP exchange: the
// transport status plus whatever top-level fields the platform returned.
// Fields are passed through untouched; nothing beyond StatusCode is
// guaranteed to be present.
type Envelope struct {
	StatusCode int
	Header     http.Header
	// Fields holds the top-level keys of a JSON object body.
	Fields map[string]json.RawMessage
	// Body is the raw response body, kept for non-object or non-JSON replies.
	Body []byte
}

// NewEnvelope parses a response body into an envelope. A body that is not a
// JSON object leaves Fields empty; it is never an error.
func NewEnvelope(statusCode int, header http.Header, body []byte) *Envelope {
	env := &Envelope{
		StatusCode: statusCode,
		Header:     header,
		Fields:     map[string]json.RawMessage{},
		Body:       body,
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return env
	}

	var fields map[string]json.RawMessage

	err := json.Unmarshal(trimmed, &fields)
	if err != nil {
		return env
	}

	// The transport status always wins over an upstream field of the same name.
	delete(fields, StatusCodeKey)
	env.Fields = fields

	return env
}

// Field returns a raw top-level field.
func (e *Envelope) Field(name string) (json.RawMessage, bool) {
	raw, ok := e.Fields[name]

	return raw, ok
}

// Data returns the raw "data" field, or nil.
func (e *Envelope) Data() json.RawMessage {
	return e.Fields["data"]
}

// Message returns the upstream "message" or "error" string, if any.
func (e *Envelope) Message() string {
	for _, key := range []string{"message", "error"} {
		raw, ok := e.Fields[key]
		if !ok {
			continue
		}

		var text string
		if json.Unmarshal(raw, &text) == nil && text != "" {
			return text
		}
	}

	return ""
}

// IsSuccess reports whether the status is 2xx.
func (e *Envelope) IsSuccess() bool {
	return e.StatusCode >= 200 && e.StatusCode < 300
}

// Success reports whether the status equals the given success code.
func (e *Envelope) Success(code int) bool {
	return e.StatusCode == code
}

// MarshalJSON emits the upstream object merged with "statusCode".
func (e *Envelope) MarshalJSON() ([]byte, error) {
	merged := make(map[string]json.RawMessage, len(e.Fields)+1)
	for key, value := range e.Fields {
		merged[key] = value
	}

	merged[StatusCodeKey] = json.RawMessage(strconv.Itoa(e.StatusCode))

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("marshaling envelope: %w", err)
	}

	return data, nil
}

// Result is an envelope whose "data" field has been decoded into T.
type Result[T any] struct {
	StatusCode int       `json:"statusCode"        yaml:"statusCode"`
	Data       T         `json:"data"              yaml:"data"`
	Message    string    `json:"message,omitempty" yaml:"message,omitempty"`
	Envelope   *Envelope `json:"-"                 yaml:"-"`
}

// IsSuccess reports whether the status is 2xx.
func (r *Result[T]) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DecodeResult decodes the envelope's "data" field into a Result[T].
//
// A missing or null data field leaves Data at its zero value. A data field
// that does not fit T is an error only for 2xx responses; error replies keep
// a zero Data and are returned as-is.
func DecodeResult[T any](env *Envelope) (*Result[T], error) {
	result := &Result[T]{
		StatusCode: env.StatusCode,
		Message:    env.Message(),
		Envelope:   env,
	}

	raw := env.Data()
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return result, nil
	}

	err := json.Unmarshal(raw, &result.Data)
	if err != nil {
		if env.IsSuccess() {
			return nil, fmt.Errorf("%w: %w", ErrUnexpectedPayload, err)
		}

		var zero T
		result.Data = zero
	}

	return result, nil
}

// FormData is a multipart/form-data payload: plain fields plus an optional
// streamed file part.
type FormData struct {
	Fields map[string]string
	File   *FormFile
}

// FormFile is the file part of a multipart payload.
type FormFile struct {
	// FieldName is the form field name; "file" when empty.
	FieldName string
	FileName  string
	// ContentType defaults to application/octet-stream.
	ContentType string
	Reader      io.Reader
}

// NewFormData creates form data from plain fields.
func NewFormData(fields map[string]string) *FormData {
	if fields == nil {
		fields = map[string]string{}
	}

	return &FormData{Fields: fields}
}
