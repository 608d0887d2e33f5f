package ports

import (
	"context"
	"io"

	"github.com/civiai/planning-analyzer/internal/core/domain"
)

// DocumentAnalyzer is the inbound contract for the compliance engine. The
// entities mapping is optional supplementary NER output; pass nil when no
// recognizer result is available.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, text string, entities map[string][]string) (*domain.AnalysisResult, error)
}

// DocumentSubmitter is the inbound contract for document intake: storing a
// raw upload, queueing it for asynchronous analysis, or analyzing a stored
// document in place.
type DocumentSubmitter interface {
	Store(ctx context.Context, filename string, body io.Reader) (string, error)
	Enqueue(ctx context.Context, storageKey string) error
	AnalyzeStored(ctx context.Context, storageKey string) (*domain.AnalysisResult, error)
}
