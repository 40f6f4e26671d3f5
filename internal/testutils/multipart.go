package testutils

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"testing"
)

// MultipartFile builds a multipart body holding one file part, the way a
// browser submits the upload form. It returns the body and its Content-Type.
func MultipartFile(t *testing.T, field, filename, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	if err != nil {
		t.Fatalf("failed to create multipart part: %v", err)
	}
	if _, err := io.WriteString(part, content); err != nil {
		t.Fatalf("failed to write multipart content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

// FileHeader parses a single-file multipart body back into the header a
// handler would receive from the form.
func FileHeader(t *testing.T, field, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	body, ct := MultipartFile(t, field, filename, contentType, content)
	_, params, err := mime.ParseMediaType(ct)
	if err != nil {
		t.Fatalf("failed to parse content type: %v", err)
	}
	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("failed to read multipart form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[field]
	if len(files) != 1 {
		t.Fatalf("expected one file in field %q, got %d", field, len(files))
	}
	return files[0]
}
