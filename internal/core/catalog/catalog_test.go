package catalog

import (
	"testing"

	"github.com/civiai/planning-analyzer/internal/core/domain"
)

func TestEveryTypeIncludesBaseCategories(t *testing.T) {
	cat := New()
	base := cat.Requirements(domain.TypeUnknown)
	if len(base) != 2 {
		t.Fatalf("expected 2 base groups for unknown, got %d", len(base))
	}
	if base[0].Category != domain.CategoryPropertyInfo || base[1].Category != domain.CategoryApplicantInfo {
		t.Fatalf("unexpected base category order: %v, %v", base[0].Category, base[1].Category)
	}

	for _, docType := range domain.DocumentTypes() {
		groups := cat.Requirements(docType)
		if len(groups) < 2 {
			t.Fatalf("type %s has fewer groups than the base catalog", docType)
		}
		for i, baseGroup := range base {
			if groups[i].Category != baseGroup.Category {
				t.Fatalf("type %s group %d: expected %s, got %s", docType, i, baseGroup.Category, groups[i].Category)
			}
			if len(groups[i].Fields) != len(baseGroup.Fields) {
				t.Fatalf("type %s base group %s was overridden", docType, baseGroup.Category)
			}
		}
	}
}

func TestTypeSpecificGroupsExtendBase(t *testing.T) {
	cat := New()
	groups := cat.Requirements(domain.TypeZoningApplication)
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups for zoning application, got %d", len(groups))
	}
	if groups[2].Category != domain.CategoryProjectDetails {
		t.Fatalf("expected project details after base groups, got %s", groups[2].Category)
	}
	if groups[3].Category != domain.CategoryZoning {
		t.Fatalf("expected zoning compliance last, got %s", groups[3].Category)
	}
}

func TestRequirementsStableAcrossCalls(t *testing.T) {
	cat := New()
	first := cat.Requirements(domain.TypeBuildingPermit)
	second := cat.Requirements(domain.TypeBuildingPermit)
	if len(first) != len(second) {
		t.Fatalf("catalog changed between calls: %d vs %d groups", len(first), len(second))
	}
	for i := range first {
		if first[i].Category != second[i].Category || len(first[i].Fields) != len(second[i].Fields) {
			t.Fatalf("group %d differs between calls", i)
		}
	}
}

func TestNoSharedStateBetweenTypes(t *testing.T) {
	cat := New()
	zoning := cat.Requirements(domain.TypeZoningApplication)
	permit := cat.Requirements(domain.TypeBuildingPermit)
	if zoning[2].Fields[0].FieldName == permit[2].Fields[0].FieldName {
		t.Fatalf("type-specific groups appear shared: both start with %q", zoning[2].Fields[0].FieldName)
	}
}

func TestSuggestedSourceFallback(t *testing.T) {
	cat := New()
	if src := cat.SuggestedSource("parcel_number"); src != "County assessor records" {
		t.Fatalf("expected assessor records source, got %q", src)
	}
	if src := cat.SuggestedSource("never_defined_field"); src != "Additional documentation required" {
		t.Fatalf("expected generic fallback source, got %q", src)
	}
}

func TestExampleValueAbsentWhenUndefined(t *testing.T) {
	cat := New()
	if example, ok := cat.ExampleValue("property_address"); !ok || example == "" {
		t.Fatalf("expected example for property_address, got %q (ok=%v)", example, ok)
	}
	if _, ok := cat.ExampleValue("water_connection"); ok {
		t.Fatalf("expected no example for water_connection")
	}
}
