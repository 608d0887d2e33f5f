package ports

import (
	"context"
	"io"
)

// ObjectStorage stores source documents and analysis artifacts.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes analysis request events. The payload is
// the object storage key of the document to analyze.
type MessageQueue interface {
	PublishAnalysisRequested(ctx context.Context, storageKey string) error
	SubscribeAnalysisRequested(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor turns a stored document into plain text. Implementations
// are thin format readers with no decision logic; the engine only consumes
// the resulting string.
type TextExtractor interface {
	Extract(ctx context.Context, storageKey string) (string, error)
}

// EntityRecognizer is the optional NER collaborator. It returns labeled
// mentions grouped by entity kind (person, organization, location,
// monetary). The engine must work identically when no recognizer is wired.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) (map[string][]string, error)
}
