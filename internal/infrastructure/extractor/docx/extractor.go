package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/civiai/planning-analyzer/internal/core/domain"
	"github.com/civiai/planning-analyzer/internal/core/ports"
)

// Extractor reads the text runs of a stored .docx document. A .docx file is
// a zip archive; the body lives in word/document.xml where paragraphs (w:p)
// contain text runs (w:t). Paragraph boundaries become newlines.
type Extractor struct {
	storage ports.ObjectStorage
}

func New(storage ports.ObjectStorage) *Extractor {
	return &Extractor{storage: storage}
}

func (e *Extractor) Extract(ctx context.Context, storageKey string) (string, error) {
	r, err := e.storage.Open(ctx, storageKey)
	if err != nil {
		return "", err
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "open docx archive",
			fmt.Errorf("document %s: %w", storageKey, err))
	}

	body, err := archive.Open("word/document.xml")
	if err != nil {
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "locate docx body",
			fmt.Errorf("document %s: %w", storageKey, err))
	}
	defer body.Close()

	text, err := documentText(body)
	if err != nil {
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "parse docx body",
			fmt.Errorf("document %s: %w", storageKey, err))
	}
	return text, nil
}

func documentText(body io.Reader) (string, error) {
	dec := xml.NewDecoder(body)

	var (
		sb     strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
