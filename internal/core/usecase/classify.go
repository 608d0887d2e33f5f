package usecase

import (
	"strings"

	"github.com/civiai/planning-analyzer/internal/core/domain"
)

// Classifier scores text against keyword triggers per document type.
type Classifier struct {
	triggers []TypeTriggers
}

func NewClassifier(triggers []TypeTriggers) *Classifier {
	return &Classifier{triggers: triggers}
}

// Classify picks the type with the most distinct trigger phrases present
// in the text. Each phrase counts at most once regardless of how often it
// repeats. Ties break toward the earlier type in trigger order, which
// follows catalog enumeration order; with zero hits the result is unknown.
func (c *Classifier) Classify(text string) domain.DocumentType {
	lower := strings.ToLower(text)

	best := domain.TypeUnknown
	bestScore := 0
	for _, tt := range c.triggers {
		score := 0
		for _, phrase := range tt.Phrases {
			if strings.Contains(lower, phrase) {
				score++
			}
		}
		if score > bestScore {
			best = tt.Type
			bestScore = score
		}
	}
	return best
}
