package usecase

import (
	"github.com/civiai/planning-analyzer/internal/core/catalog"
	"github.com/civiai/planning-analyzer/internal/core/domain"
)

// MissingRequirements walks the catalog in canonical order (category, then
// field within category) and emits a record for every field absent or
// empty in the extraction result. This ordering is the contract consumed
// by the recommendation generator; nothing downstream re-sorts.
func MissingRequirements(cat *catalog.Catalog, docType domain.DocumentType, found domain.ExtractedFields) []domain.MissingRequirement {
	var missing []domain.MissingRequirement
	for _, group := range cat.Requirements(docType) {
		for _, req := range group.Fields {
			if value, ok := found[req.FieldName]; ok && !value.Empty() {
				continue
			}
			record := domain.MissingRequirement{
				Category:        group.Category,
				FieldName:       req.FieldName,
				Description:     req.Description,
				Importance:      req.Importance,
				SuggestedSource: cat.SuggestedSource(req.FieldName),
			}
			if example, ok := cat.ExampleValue(req.FieldName); ok {
				record.ExampleValue = example
			}
			missing = append(missing, record)
		}
	}
	return missing
}
