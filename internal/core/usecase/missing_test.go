package usecase

import (
	"testing"

	"github.com/civiai/planning-analyzer/internal/core/catalog"
	"github.com/civiai/planning-analyzer/internal/core/domain"
)

func TestMissingRequirementsCompletenessIdentity(t *testing.T) {
	cat := catalog.New()
	found := domain.ExtractedFields{
		"applicant_name":    domain.TextValue("Jane Doe"),
		"construction_type": domain.TextValue("New single-family residence"),
		"building_value":    domain.TextValue("350,000"),
		"blank_field":       domain.TextValue("  "),
	}

	missing := MissingRequirements(cat, domain.TypeBuildingPermit, found)

	missingSet := make(map[string]bool)
	for _, req := range missing {
		missingSet[req.FieldName] = true
	}

	for _, group := range cat.Requirements(domain.TypeBuildingPermit) {
		for _, req := range group.Fields {
			value, ok := found[req.FieldName]
			present := ok && !value.Empty()
			if present && missingSet[req.FieldName] {
				t.Fatalf("field %q found but reported missing", req.FieldName)
			}
			if !present && !missingSet[req.FieldName] {
				t.Fatalf("field %q absent but not reported missing", req.FieldName)
			}
		}
	}
}

func TestMissingRequirementsFollowCatalogOrder(t *testing.T) {
	cat := catalog.New()
	missing := MissingRequirements(cat, domain.TypeBuildingPermit, domain.ExtractedFields{})

	if missing[0].FieldName != "property_address" {
		t.Fatalf("expected property_address first, got %q", missing[0].FieldName)
	}
	last := missing[len(missing)-1]
	if last.FieldName != "electrical_service" {
		t.Fatalf("expected electrical_service last, got %q", last.FieldName)
	}

	// Category blocks must appear contiguously in catalog order.
	seen := map[domain.RequirementCategory]bool{}
	var current domain.RequirementCategory
	for _, req := range missing {
		if req.Category == current {
			continue
		}
		if seen[req.Category] {
			t.Fatalf("category %s appears in two separate blocks", req.Category)
		}
		seen[req.Category] = true
		current = req.Category
	}
}

func TestMissingRequirementCarriesRemediationMetadata(t *testing.T) {
	cat := catalog.New()
	missing := MissingRequirements(cat, domain.TypeZoningApplication, domain.ExtractedFields{})

	byField := make(map[string]domain.MissingRequirement)
	for _, req := range missing {
		byField[req.FieldName] = req
	}

	addr := byField["property_address"]
	if addr.SuggestedSource != "Property deed or tax records" {
		t.Fatalf("unexpected suggested source: %q", addr.SuggestedSource)
	}
	if addr.ExampleValue != "123 Main Street, Shady Cove, OR 97520" {
		t.Fatalf("unexpected example value: %q", addr.ExampleValue)
	}
	if addr.Importance != domain.ImportanceCritical {
		t.Fatalf("expected critical importance, got %s", addr.Importance)
	}

	// density_calculation has no curated source or example: generic source,
	// no fabricated example.
	density := byField["density_calculation"]
	if density.SuggestedSource != "Additional documentation required" {
		t.Fatalf("expected generic source fallback, got %q", density.SuggestedSource)
	}
	if density.ExampleValue != "" {
		t.Fatalf("expected no example value, got %q", density.ExampleValue)
	}
}

func TestMissingRequirementsForUnknownTypeUseBaseCatalogOnly(t *testing.T) {
	cat := catalog.New()
	missing := MissingRequirements(cat, domain.TypeUnknown, domain.ExtractedFields{})
	for _, req := range missing {
		if req.Category != domain.CategoryPropertyInfo && req.Category != domain.CategoryApplicantInfo {
			t.Fatalf("unknown type must only report base categories, got %s", req.Category)
		}
	}
	if len(missing) != 10 {
		t.Fatalf("expected 10 base fields missing, got %d", len(missing))
	}
}
