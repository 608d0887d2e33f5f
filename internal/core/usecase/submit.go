package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/civiai/planning-analyzer/internal/core/domain"
	"github.com/civiai/planning-analyzer/internal/core/ports"
)

// SubmitDocumentUseCase handles document intake around the engine: storing
// uploads, queueing analysis requests, and running extraction + analysis
// for stored documents.
type SubmitDocumentUseCase struct {
	storage   ports.ObjectStorage
	queue     ports.MessageQueue
	extractor ports.TextExtractor
	analyzer  ports.DocumentAnalyzer
}

func NewSubmitDocumentUseCase(
	storage ports.ObjectStorage,
	queue ports.MessageQueue,
	extractor ports.TextExtractor,
	analyzer ports.DocumentAnalyzer,
) *SubmitDocumentUseCase {
	return &SubmitDocumentUseCase{
		storage:   storage,
		queue:     queue,
		extractor: extractor,
		analyzer:  analyzer,
	}
}

func (uc *SubmitDocumentUseCase) Store(ctx context.Context, filename string, body io.Reader) (string, error) {
	storageKey := fmt.Sprintf("%s_%s", uuid.NewString(), sanitizeFilename(filename))
	if err := uc.storage.Save(ctx, storageKey, body); err != nil {
		return "", fmt.Errorf("save to object storage: %w", err)
	}
	return storageKey, nil
}

func (uc *SubmitDocumentUseCase) Enqueue(ctx context.Context, storageKey string) error {
	if err := uc.queue.PublishAnalysisRequested(ctx, storageKey); err != nil {
		return fmt.Errorf("publish analysis request: %w", err)
	}
	return nil
}

// AnalyzeStored extracts text from a stored document and analyzes it.
// Extraction failures (unreadable file, unsupported format) are
// translated into the empty-text terminal result rather than surfaced:
// the engine has no transient failure class of its own.
func (uc *SubmitDocumentUseCase) AnalyzeStored(ctx context.Context, storageKey string) (*domain.AnalysisResult, error) {
	text, err := uc.extractor.Extract(ctx, storageKey)
	if err != nil {
		if domain.IsKind(err, domain.ErrDocumentNotFound) {
			return nil, err
		}
		slog.Warn("text_extraction_failed", "storage_key", storageKey, "error", err)
		text = ""
	}
	return uc.analyzer.Analyze(ctx, text, nil)
}

// StoreResult writes the analysis result next to the source document as a
// JSON artifact for the requester. The engine itself stays stateless.
func (uc *SubmitDocumentUseCase) StoreResult(ctx context.Context, storageKey string, result *domain.AnalysisResult) (string, error) {
	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal analysis result: %w", err)
	}
	resultKey := storageKey + ".analysis.json"
	if err := uc.storage.Save(ctx, resultKey, bytes.NewReader(raw)); err != nil {
		return "", fmt.Errorf("save analysis result: %w", err)
	}
	return resultKey, nil
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." {
		return "document.bin"
	}
	return base
}
