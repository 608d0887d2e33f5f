package usecase

import (
	"testing"

	"github.com/civiai/planning-analyzer/internal/core/domain"
)

func TestClassifyPicksTypeWithMostTriggers(t *testing.T) {
	c := NewClassifier(DefaultRules().Triggers)

	got := c.Classify("ZONING APPLICATION for a zone change on parcel 12")
	if got != domain.TypeZoningApplication {
		t.Fatalf("expected zoning_application, got %s", got)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	c := NewClassifier(DefaultRules().Triggers)
	if got := c.Classify("BUILDING PERMIT APPLICATION"); got != domain.TypeBuildingPermit {
		t.Fatalf("expected building_permit, got %s", got)
	}
}

func TestClassifyCountsDistinctTriggersNotFrequency(t *testing.T) {
	triggers := []TypeTriggers{
		{Type: domain.TypeVarianceRequest, Phrases: []string{"variance"}},
		{Type: domain.TypeSubdivisionPlan, Phrases: []string{"subdivision", "plat"}},
	}
	c := NewClassifier(triggers)

	// "variance" appears three times but counts once; the subdivision text
	// hits two distinct phrases and must win.
	got := c.Classify("variance variance variance subdivision plat")
	if got != domain.TypeSubdivisionPlan {
		t.Fatalf("expected subdivision_plan, got %s", got)
	}
}

// Ties break toward the earlier type in trigger order. The order-dependent
// tie-break is part of the documented contract, so this test pins it.
func TestClassifyTieBreaksOnTriggerOrder(t *testing.T) {
	c := NewClassifier(DefaultRules().Triggers)

	got := c.Classify("request for variance on the subdivision")
	if got != domain.TypeVarianceRequest {
		t.Fatalf("expected variance_request to win the tie, got %s", got)
	}
}

func TestClassifyReturnsUnknownWithoutTriggers(t *testing.T) {
	c := NewClassifier(DefaultRules().Triggers)
	if got := c.Classify("grocery list: milk, eggs, coffee"); got != domain.TypeUnknown {
		t.Fatalf("expected unknown, got %s", got)
	}
}
