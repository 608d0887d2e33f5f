package usecase

import (
	"strings"

	"github.com/civiai/planning-analyzer/internal/core/domain"
)

// FieldExtractor applies the ordered pattern rules to raw text.
type FieldExtractor struct {
	patterns []FieldPatterns
}

func NewFieldExtractor(patterns []FieldPatterns) *FieldExtractor {
	return &FieldExtractor{patterns: patterns}
}

// Extract runs each field's pattern list against the text. The first
// pattern that matches decides the field: if it has capturing groups the
// first group becomes the value, otherwise the whole match does. A match
// that trims to nothing leaves the field absent rather than stored empty.
func (e *FieldExtractor) Extract(text string) domain.ExtractedFields {
	found := make(domain.ExtractedFields)
	for _, fp := range e.patterns {
		for _, re := range fp.Patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			value := m[0]
			if len(m) > 1 {
				value = m[1]
			}
			if v := strings.TrimSpace(value); v != "" {
				found[fp.Field] = domain.TextValue(v)
			}
			break
		}
	}
	return found
}

// MergeEntities folds supplementary NER output into the extraction result.
// Pattern-derived values take precedence: entity lists only fill keys not
// already present, and empty lists are dropped.
func MergeEntities(found domain.ExtractedFields, entities map[string][]string) {
	for key, values := range entities {
		if len(values) == 0 {
			continue
		}
		if _, exists := found[key]; exists {
			continue
		}
		found[key] = domain.ListValue(values)
	}
}
