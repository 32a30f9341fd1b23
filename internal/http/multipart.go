package http

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"net/textproto"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

const defaultFileField = "file"

var errMultipartReplayed = errors.New("multipart body can only be sent once")

// streamMultipart returns a body that encodes form while the transport reads
// it. The file reader is consumed once, so only the first body handed out
// and actually read may start encoding.
func streamMultipart(form *zesty.FormData) (retryablehttp.ReaderFunc, string) {
	layout := multipart.NewWriter(io.Discard)
	started := &atomic.Bool{}

	bodyFunc := func() (io.Reader, error) {
		return &multipartBody{form: form, boundary: layout.Boundary(), started: started}, nil
	}

	return bodyFunc, layout.FormDataContentType()
}

// multipartBody starts its encoder on the first Read. retryablehttp opens and
// closes one body up front to look for a length; that body is never read.
type multipartBody struct {
	form     *zesty.FormData
	boundary string
	started  *atomic.Bool

	mu     sync.Mutex
	reader *io.PipeReader
	closed bool
}

func (b *multipartBody) Read(p []byte) (int, error) {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()

		return 0, io.ErrClosedPipe
	}

	if b.reader == nil {
		if !b.started.CompareAndSwap(false, true) {
			b.mu.Unlock()

			return 0, errMultipartReplayed
		}

		pipeReader, pipeWriter := io.Pipe()
		b.reader = pipeReader

		go func() {
			_ = pipeWriter.CloseWithError(writeMultipart(pipeWriter, b.form, b.boundary))
		}()
	}

	reader := b.reader
	b.mu.Unlock()

	return reader.Read(p) //nolint:wrapcheck // encoder errors are already wrapped
}

// Close stops the encoder if it is running.
func (b *multipartBody) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true

	if b.reader != nil {
		return b.reader.Close() //nolint:wrapcheck // io.PipeReader.Close never fails
	}

	return nil
}

// writeMultipart writes the plain fields in key order, then the file part.
func writeMultipart(w io.Writer, form *zesty.FormData, boundary string) error {
	writer := multipart.NewWriter(w)

	err := writer.SetBoundary(boundary)
	if err != nil {
		return fmt.Errorf("setting multipart boundary: %w", err)
	}

	for _, key := range slices.Sorted(maps.Keys(form.Fields)) {
		err := writer.WriteField(key, form.Fields[key])
		if err != nil {
			return fmt.Errorf("writing form field %s: %w", key, err)
		}
	}

	if form.File != nil {
		err := writeFilePart(writer, form.File)
		if err != nil {
			return err
		}
	}

	err = writer.Close()
	if err != nil {
		return fmt.Errorf("closing multipart writer: %w", err)
	}

	return nil
}

func writeFilePart(writer *multipart.Writer, file *zesty.FormFile) error {
	fieldName := file.FieldName
	if fieldName == "" {
		fieldName = defaultFileField
	}

	var (
		part io.Writer
		err  error
	)

	if file.ContentType != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(fieldName), escapeQuotes(file.FileName)))
		header.Set("Content-Type", file.ContentType)
		part, err = writer.CreatePart(header)
	} else {
		part, err = writer.CreateFormFile(fieldName, file.FileName)
	}

	if err != nil {
		return fmt.Errorf("creating file part: %w", err)
	}

	if file.Reader == nil {
		return nil
	}

	_, err = io.Copy(part, file.Reader)
	if err != nil {
		return fmt.Errorf("copying file content: %w", err)
	}

	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
