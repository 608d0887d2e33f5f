package plaintext

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/civiai/planning-analyzer/internal/core/domain"
	"github.com/civiai/planning-analyzer/internal/core/ports"
)

// Extractor reads stored documents as UTF-8 text. It is the fallback for
// formats without a dedicated reader.
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

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	if !utf8.Valid(data) {
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "extract plain text",
			fmt.Errorf("document %s is not valid UTF-8", storageKey))
	}
	return strings.TrimSpace(string(data)), nil
}
