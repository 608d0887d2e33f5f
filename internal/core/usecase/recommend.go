package usecase

import (
	"fmt"

	"github.com/civiai/planning-analyzer/internal/core/domain"
)

const (
	maxCriticalBullets  = 3
	maxImportantBullets = 2
)

// Recommendations turns the missing-requirement list into prioritized
// guidance. Critical items lead with an urgent summary and up to three
// bullets, important items follow with up to two; recommended items are
// informational only and never surface as bullets. With nothing critical
// or important the document is reported complete.
func Recommendations(missing []domain.MissingRequirement) []string {
	var critical, important []domain.MissingRequirement
	for _, req := range missing {
		switch req.Importance {
		case domain.ImportanceCritical:
			critical = append(critical, req)
		case domain.ImportanceImportant:
			important = append(important, req)
		}
	}

	var recommendations []string
	if len(critical) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"URGENT: %d critical requirements are missing. Application cannot proceed without these.", len(critical)))
		for i, req := range critical {
			if i == maxCriticalBullets {
				break
			}
			recommendations = append(recommendations, fmt.Sprintf(
				"• Provide %s (Source: %s)", req.Description, req.SuggestedSource))
		}
	}
	if len(important) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"IMPORTANT: %d important requirements need attention.", len(important)))
		for i, req := range important {
			if i == maxImportantBullets {
				break
			}
			recommendations = append(recommendations, fmt.Sprintf("• Include %s", req.Description))
		}
	}
	if len(critical) == 0 && len(important) == 0 {
		recommendations = append(recommendations,
			"Document appears complete for basic requirements.",
			"Review with planning staff for final approval.",
		)
	}
	return recommendations
}

// NextSteps builds the numbered procedural list for the applicant. The
// branch depends only on whether critical items remain; a type-specific
// fourth step is appended for types that define one.
func NextSteps(docType domain.DocumentType, missing []domain.MissingRequirement) []string {
	hasCritical := false
	for _, req := range missing {
		if req.Importance == domain.ImportanceCritical {
			hasCritical = true
			break
		}
	}

	var steps []string
	if hasCritical {
		steps = []string{
			"1. Gather missing critical information before submitting application",
			"2. Contact planning department for pre-application consultation",
			"3. Prepare additional documentation as identified",
		}
	} else {
		steps = []string{
			"1. Review application for completeness",
			"2. Submit application to planning department",
			"3. Schedule follow-up meeting if needed",
		}
	}

	if extra, ok := typeSpecificStep[docType]; ok {
		steps = append(steps, extra)
	}
	return steps
}

var typeSpecificStep = map[domain.DocumentType]string{
	domain.TypeZoningApplication: "4. Prepare for public hearing if required",
	domain.TypeBuildingPermit:    "4. Schedule building inspection once approved",
}
