package composite

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/civiai/planning-analyzer/internal/core/ports"
	"github.com/civiai/planning-analyzer/internal/infrastructure/extractor/docx"
	"github.com/civiai/planning-analyzer/internal/infrastructure/extractor/pdf"
	"github.com/civiai/planning-analyzer/internal/infrastructure/extractor/plaintext"
	"github.com/civiai/planning-analyzer/internal/infrastructure/extractor/spreadsheet"
)

// Extractor routes a stored document to the reader for its file extension.
// Anything without a dedicated reader falls back to plain text.
type Extractor struct {
	byExt    map[string]ports.TextExtractor
	fallback ports.TextExtractor
}

func New(storage ports.ObjectStorage) *Extractor {
	return &Extractor{
		byExt: map[string]ports.TextExtractor{
			".pdf":  pdf.New(storage),
			".xlsx": spreadsheet.New(storage),
			".xlsm": spreadsheet.New(storage),
			".docx": docx.New(storage),
		},
		fallback: plaintext.New(storage),
	}
}

func (e *Extractor) Extract(ctx context.Context, storageKey string) (string, error) {
	ext := strings.ToLower(filepath.Ext(storageKey))
	if ex, ok := e.byExt[ext]; ok {
		return ex.Extract(ctx, storageKey)
	}
	return e.fallback.Extract(ctx, storageKey)
}
