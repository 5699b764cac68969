package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// File is an uploaded file forwarded to the API.
type File struct {
	FileName    string
	ContentType string
	Data        []byte
}

type multipartField struct {
	name  string
	value string
}

type multipartFile struct {
	name string
	file File
}

// Multipart is a multipart/form-data request body. Fields keep insertion order.
type Multipart struct {
	fields []multipartField
	files  []multipartFile
}

func NewMultipart() *Multipart {
	return &Multipart{}
}

// Field adds a text field.
func (m *Multipart) Field(name, value string) *Multipart {
	m.fields = append(m.fields, multipartField{name: name, value: value})
	return m
}

// OptionalField adds a text field only when value is not blank.
func (m *Multipart) OptionalField(name, value string) *Multipart {
	if strings.TrimSpace(value) == "" {
		return m
	}
	return m.Field(name, value)
}

func (m *Multipart) File(name string, f File) *Multipart {
	m.files = append(m.files, multipartFile{name: name, file: f})
	return m
}

// Value returns the first value of the named field.
func (m *Multipart) Value(name string) (string, bool) {
	for _, f := range m.fields {
		if f.name == name {
			return f.value, true
		}
	}
	return "", false
}

func (m *Multipart) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range m.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", f.name, err)
		}
	}

	for _, f := range m.files {
		contentType := f.file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.name, f.file.FileName))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create part %s: %w", f.name, err)
		}
		if _, err := part.Write(f.file.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write part %s: %w", f.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
