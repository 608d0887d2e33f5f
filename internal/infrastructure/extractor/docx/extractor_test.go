package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/civiai/planning-analyzer/internal/core/domain"
)

type storageFake struct {
	docs map[string][]byte
}

func (s *storageFake) Save(_ context.Context, key string, data io.Reader) error {
	b, _ := io.ReadAll(data)
	s.docs[key] = b
	return nil
}

func (s *storageFake) Open(_ context.Context, key string) (io.ReadCloser, error) {
	doc, ok := s.docs[key]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return io.NopCloser(bytes.NewReader(doc)), nil
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

const sampleBody = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Zoning Application</w:t></w:r></w:p>
    <w:p><w:r><w:t>Applicant: </w:t></w:r><w:r><w:t>John Smith</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractJoinsRunsAndBreaksParagraphs(t *testing.T) {
	e := New(&storageFake{docs: map[string][]byte{
		"app.docx": buildDocx(t, sampleBody),
	}})

	text, err := e.Extract(context.Background(), "app.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Zoning Application\nApplicant: John Smith"
	if text != want {
		t.Fatalf("expected %q, got %q", want, text)
	}
}

func TestExtractRejectsNonArchiveContent(t *testing.T) {
	e := New(&storageFake{docs: map[string][]byte{
		"app.docx": []byte("plain text, not a zip"),
	}})

	_, err := e.Extract(context.Background(), "app.docx")
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractRejectsArchiveWithoutBody(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	if _, err := w.Create("unrelated.txt"); err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}

	e := New(&storageFake{docs: map[string][]byte{"app.docx": buf.Bytes()}})

	_, err := e.Extract(context.Background(), "app.docx")
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
