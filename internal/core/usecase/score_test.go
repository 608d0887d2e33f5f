package usecase

import (
	"testing"

	"github.com/civiai/planning-analyzer/internal/core/catalog"
	"github.com/civiai/planning-analyzer/internal/core/domain"
)

func fullyPopulated(groups []catalog.Group) domain.ExtractedFields {
	found := make(domain.ExtractedFields)
	for _, group := range groups {
		for _, req := range group.Fields {
			found[req.FieldName] = domain.TextValue("present")
		}
	}
	return found
}

func TestComplianceScoreFullDocumentIsHundred(t *testing.T) {
	cat := catalog.New()
	groups := cat.Requirements(domain.TypeBuildingPermit)
	score := ComplianceScore(groups, fullyPopulated(groups))
	if score != 100.0 {
		t.Fatalf("expected 100.0 for fully populated document, got %f", score)
	}
}

func TestComplianceScoreEmptyDocumentIsZero(t *testing.T) {
	cat := catalog.New()
	score := ComplianceScore(cat.Requirements(domain.TypeZoningApplication), domain.ExtractedFields{})
	if score != 0.0 {
		t.Fatalf("expected 0.0 with nothing found, got %f", score)
	}
}

func TestComplianceScoreVacuousCatalog(t *testing.T) {
	if score := ComplianceScore(nil, domain.ExtractedFields{}); score != 100.0 {
		t.Fatalf("expected 100.0 for empty catalog, got %f", score)
	}
}

func TestComplianceScoreWeighsImportance(t *testing.T) {
	groups := []catalog.Group{
		{
			Category: domain.CategoryPropertyInfo,
			Fields: []domain.FieldRequirement{
				{FieldName: "critical_field", Importance: domain.ImportanceCritical},
				{FieldName: "recommended_field", Importance: domain.ImportanceRecommended},
			},
		},
	}

	// Missing only the recommended field: 3 of 4 weight present.
	withCritical := ComplianceScore(groups, domain.ExtractedFields{
		"critical_field": domain.TextValue("x"),
	})
	if withCritical != 75.0 {
		t.Fatalf("expected 75.0, got %f", withCritical)
	}

	// Missing only the critical field: 1 of 4 weight present.
	withRecommended := ComplianceScore(groups, domain.ExtractedFields{
		"recommended_field": domain.TextValue("x"),
	})
	if withRecommended != 25.0 {
		t.Fatalf("expected 25.0, got %f", withRecommended)
	}
}

func TestComplianceScoreTreatsEmptyValueAsMissing(t *testing.T) {
	groups := []catalog.Group{
		{
			Category: domain.CategoryPropertyInfo,
			Fields: []domain.FieldRequirement{
				{FieldName: "lot_size", Importance: domain.ImportanceCritical},
			},
		},
	}
	score := ComplianceScore(groups, domain.ExtractedFields{
		"lot_size": domain.TextValue("   "),
	})
	if score != 0.0 {
		t.Fatalf("whitespace value must count as missing, got %f", score)
	}
}

func TestComplianceScoreBounds(t *testing.T) {
	cat := catalog.New()
	for _, docType := range append(domain.DocumentTypes(), domain.TypeUnknown) {
		groups := cat.Requirements(docType)
		for _, found := range []domain.ExtractedFields{{}, fullyPopulated(groups)} {
			score := ComplianceScore(groups, found)
			if score < 0.0 || score > 100.0 {
				t.Fatalf("score out of bounds for %s: %f", docType, score)
			}
		}
	}
}

func TestConfidenceScoreIsCoverageHeuristic(t *testing.T) {
	if got := ConfidenceScore(domain.ExtractedFields{}); got != 0.0 {
		t.Fatalf("expected 0.0 for no fields, got %f", got)
	}

	three := domain.ExtractedFields{
		"a": domain.TextValue("1"),
		"b": domain.TextValue("2"),
		"c": domain.ListValue([]string{"x"}),
	}
	if got := ConfidenceScore(three); got != 30.0 {
		t.Fatalf("expected 30.0 for three fields, got %f", got)
	}

	many := make(domain.ExtractedFields)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		many[name] = domain.TextValue("x")
	}
	if got := ConfidenceScore(many); got != 100.0 {
		t.Fatalf("expected cap at 100.0, got %f", got)
	}
}
