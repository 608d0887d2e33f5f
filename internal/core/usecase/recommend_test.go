package usecase

import (
	"strings"
	"testing"

	"github.com/civiai/planning-analyzer/internal/core/domain"
)

func missingOf(importance domain.Importance, n int) []domain.MissingRequirement {
	var out []domain.MissingRequirement
	for i := 0; i < n; i++ {
		out = append(out, domain.MissingRequirement{
			FieldName:       "field",
			Description:     "description",
			Importance:      importance,
			SuggestedSource: "source",
		})
	}
	return out
}

func TestRecommendationsLeadWithUrgentSummary(t *testing.T) {
	missing := missingOf(domain.ImportanceCritical, 5)
	recs := Recommendations(missing)

	if !strings.HasPrefix(recs[0], "URGENT: 5 critical requirements are missing.") {
		t.Fatalf("expected urgent summary first, got %q", recs[0])
	}
	bullets := 0
	for _, r := range recs[1:] {
		if strings.HasPrefix(r, "•") {
			bullets++
		}
	}
	if bullets != 3 {
		t.Fatalf("expected 3 critical bullets, got %d", bullets)
	}
}

func TestRecommendationsIncludeImportantSection(t *testing.T) {
	missing := append(missingOf(domain.ImportanceCritical, 1), missingOf(domain.ImportanceImportant, 4)...)
	recs := Recommendations(missing)

	importantIdx := -1
	for i, r := range recs {
		if strings.HasPrefix(r, "IMPORTANT: 4 important requirements need attention.") {
			importantIdx = i
		}
	}
	if importantIdx < 0 {
		t.Fatalf("expected important summary line, got %v", recs)
	}
	if len(recs) != importantIdx+3 {
		t.Fatalf("expected exactly 2 important bullets after the summary, got %v", recs[importantIdx:])
	}
}

func TestRecommendationsCompletePairWhenNothingActionable(t *testing.T) {
	recs := Recommendations(missingOf(domain.ImportanceRecommended, 3))
	if len(recs) != 2 {
		t.Fatalf("expected the two-line complete message, got %v", recs)
	}
	if recs[0] != "Document appears complete for basic requirements." {
		t.Fatalf("unexpected first line: %q", recs[0])
	}
	if recs[1] != "Review with planning staff for final approval." {
		t.Fatalf("unexpected second line: %q", recs[1])
	}
}

func TestRecommendedItemsNeverProduceBullets(t *testing.T) {
	missing := append(missingOf(domain.ImportanceCritical, 1), missingOf(domain.ImportanceRecommended, 6)...)
	recs := Recommendations(missing)
	for _, r := range recs {
		if strings.Contains(r, "recommended") {
			t.Fatalf("recommended items must stay informational, got %q", r)
		}
	}
	// One urgent summary plus one critical bullet, nothing else.
	if len(recs) != 2 {
		t.Fatalf("expected 2 lines, got %v", recs)
	}
}

func TestNextStepsCriticalBranch(t *testing.T) {
	steps := NextSteps(domain.TypeZoningApplication, missingOf(domain.ImportanceCritical, 1))
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %v", steps)
	}
	if steps[0] != "1. Gather missing critical information before submitting application" {
		t.Fatalf("unexpected first step: %q", steps[0])
	}
	if steps[3] != "4. Prepare for public hearing if required" {
		t.Fatalf("expected zoning hearing step, got %q", steps[3])
	}
}

func TestNextStepsCompleteBranchWithTypeStep(t *testing.T) {
	steps := NextSteps(domain.TypeBuildingPermit, nil)
	if steps[0] != "1. Review application for completeness" {
		t.Fatalf("unexpected first step: %q", steps[0])
	}
	if steps[3] != "4. Schedule building inspection once approved" {
		t.Fatalf("expected inspection step, got %q", steps[3])
	}
}

func TestNextStepsNoFourthLineForTypesWithoutExtraStep(t *testing.T) {
	steps := NextSteps(domain.TypeSitePlan, nil)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps for site plan, got %v", steps)
	}
}
