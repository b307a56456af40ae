package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Form accumulates fields and file attachments for a multipart request.
// Encoding happens once, when the request is built, so the content type
// always carries the writer's boundary.
type Form struct {
	fields map[string]string
	files  []formFile
}

type formFile struct {
	field    string
	filename string
	reader   io.Reader
}

// NewForm creates an empty multipart form.
func NewForm() *Form {
	return &Form{fields: make(map[string]string)}
}

// Set adds or replaces a plain text field.
func (f *Form) Set(key, value string) *Form {
	f.fields[key] = value
	return f
}

// AddFile attaches a file part read from r.
func (f *Form) AddFile(field, filename string, r io.Reader) *Form {
	f.files = append(f.files, formFile{field: field, filename: filename, reader: r})
	return f
}

func (f *Form) encode() (string, io.Reader, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range f.fields {
		if err := w.WriteField(key, value); err != nil {
			return "", nil, fmt.Errorf("failed to write field %q: %w", key, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return "", nil, fmt.Errorf("failed to create file part %q: %w", file.field, err)
		}
		if _, err := io.Copy(part, file.reader); err != nil {
			return "", nil, fmt.Errorf("failed to copy file part %q: %w", file.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, err
	}
	return w.FormDataContentType(), &buf, nil
}
