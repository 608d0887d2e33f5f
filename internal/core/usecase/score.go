package usecase

import (
	"github.com/civiai/planning-analyzer/internal/core/catalog"
	"github.com/civiai/planning-analyzer/internal/core/domain"
)

// ComplianceScore is the weighted percentage of required information
// present: 100 * (total_weight - missing_weight) / total_weight, clamped
// to [0,100]. An empty catalog is vacuously compliant and scores 100.
func ComplianceScore(groups []catalog.Group, found domain.ExtractedFields) float64 {
	totalWeight := 0
	missingWeight := 0
	for _, group := range groups {
		for _, req := range group.Fields {
			weight := req.Importance.Weight()
			totalWeight += weight
			if value, ok := found[req.FieldName]; !ok || value.Empty() {
				missingWeight += weight
			}
		}
	}
	if totalWeight == 0 {
		return 100.0
	}

	score := float64(totalWeight-missingWeight) / float64(totalWeight) * 100
	if score < 0 {
		return 0.0
	}
	if score > 100 {
		return 100.0
	}
	return score
}

// ConfidenceScore measures extraction coverage only: min(100, 10 * found
// field count). It says nothing about whether the fields were required and
// is not a calibrated probability.
func ConfidenceScore(found domain.ExtractedFields) float64 {
	score := float64(len(found)) * 10
	if score > 100 {
		return 100.0
	}
	return score
}
