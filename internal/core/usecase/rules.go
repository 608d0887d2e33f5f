package usecase

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/civiai/planning-analyzer/internal/core/domain"
)

// FieldPatterns is the ordered pattern list for one field. Order is the
// precedence policy: the first matching pattern wins and later patterns
// are never tried, so the most specific pattern must come first.
type FieldPatterns struct {
	Field    string
	Patterns []*regexp.Regexp
}

// TypeTriggers associates a document type with the keyword phrases that
// count as classification evidence. Trigger lists are matched against
// lower-cased text, so phrases must be lower case.
type TypeTriggers struct {
	Type    domain.DocumentType
	Phrases []string
}

// Rules is the full static rule configuration for the engine: extraction
// patterns per field and classification triggers per type. Built once and
// injected; never mutated afterwards.
type Rules struct {
	Patterns []FieldPatterns
	Triggers []TypeTriggers
}

// DefaultRules compiles the built-in rule tables. All patterns carry (?i)
// and stay line-bounded, which keeps matching linear in input size.
func DefaultRules() Rules {
	return Rules{
		Patterns: []FieldPatterns{
			field("property_address",
				`\b\d+\s+[A-Za-z ]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd|Way|Circle|Cir|Court|Ct)\b`,
				`(?:Property|Site|Location)(?:\s+Address)?:[ \t]*([^\n]+)`,
				`Address:[ \t]*([^\n]+)`,
			),
			field("parcel_number",
				`(?:Parcel|Tax|Assessor)(?:\s+(?:Number|ID|#))?:[ \t]*([A-Z0-9\-]+)`,
				`APN:[ \t]*([A-Z0-9\-]+)`,
				`\b\d{2,3}-\d{2,3}-\d{2,3}\b`,
			),
			field("lot_size",
				`(?:Lot|Site)\s+Size:[ \t]*([\d,]+\.?\d*)\s*(?:sq\.?\s*ft\.?|square\s+feet|acres?)`,
				`([\d,]+\.?\d*)\s*(?:sq\.?\s*ft\.?|square\s+feet|acres?)`,
				`Area:[ \t]*([\d,]+\.?\d*)\s*(?:sq\.?\s*ft\.?|square\s+feet|acres?)`,
			),
			field("current_zoning",
				`(?:Current\s+)?Zoning:[ \t]*([A-Z0-9\-]+)`,
				`Zone:[ \t]*([A-Z0-9\-]+)`,
				`Zoned\s+([A-Z0-9\-]+)`,
			),
			field("applicant_name",
				`Applicant:[ \t]*([A-Za-z ,\.]+)`,
				`Name:[ \t]*([A-Za-z ,\.]+)`,
				`Applied\s+by:[ \t]*([A-Za-z ,\.]+)`,
			),
			field("applicant_phone",
				`(?:Phone|Telephone)(?:\s+Number)?:[ \t]*(\(?\d{3}\)?[ \-\.]?\d{3}[ \-\.]?\d{4})`,
				`\(\d{3}\)\s*\d{3}[ \-\.]?\d{4}`,
			),
			field("applicant_email",
				`E-?mail(?:\s+Address)?:[ \t]*([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`,
				`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`,
			),
			field("proposed_use",
				`Proposed\s+Use:[ \t]*([^\n]+)`,
				`Project\s+Description:[ \t]*([^\n]+)`,
				`Use:[ \t]*([^\n]+)`,
			),
			field("building_height",
				`(?:Building\s+)?Height:[ \t]*([\d\.]+)\s*(?:feet|ft\.?|')`,
				`([\d\.]+)\s*(?:feet|ft\.?|')\s*(?:high|height)`,
				`Maximum\s+Height:[ \t]*([\d\.]+)\s*(?:feet|ft\.?|')`,
			),
			field("setbacks",
				`Setbacks?:[ \t]*([^\n]+)`,
			),
			field("parking_spaces",
				`Parking(?:\s+Spaces)?(?:\s+Provided)?:[ \t]*([^\n]+)`,
				`(\d+)\s+parking\s+spaces`,
			),
			field("construction_type",
				`Construction\s+Type:[ \t]*([^\n]+)`,
				`Type\s+of\s+Construction:[ \t]*([^\n]+)`,
			),
			field("building_value",
				`(?:Building|Construction|Project)\s+Value:[ \t]*\$?([\d,]+(?:\.\d{2})?)`,
				`Estimated\s+(?:Cost|Value):[ \t]*\$?([\d,]+(?:\.\d{2})?)`,
			),
			field("square_footage",
				`(?:Total\s+)?Square\s+Footage:[ \t]*([\d,]+)`,
				`([\d,]+)\s*(?:sq\.?\s*ft\.?|square\s+feet)\b`,
			),
		},
		Triggers: []TypeTriggers{
			{Type: domain.TypeZoningApplication, Phrases: []string{"zoning", "rezone", "zone change", "zoning application"}},
			{Type: domain.TypeBuildingPermit, Phrases: []string{"building permit", "construction permit", "building application"}},
			{Type: domain.TypeSitePlan, Phrases: []string{"site plan", "site development", "development plan"}},
			{Type: domain.TypeEnvironmentalImpact, Phrases: []string{"environmental impact", "environmental assessment", "eir", "eis"}},
			{Type: domain.TypeVarianceRequest, Phrases: []string{"variance", "variance request", "zoning variance"}},
			{Type: domain.TypeSubdivisionPlan, Phrases: []string{"subdivision", "subdivision plan", "plat"}},
			{Type: domain.TypeConditionalUse, Phrases: []string{"conditional use", "special use", "cup"}},
		},
	}
}

func field(name string, patterns ...string) FieldPatterns {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return FieldPatterns{Field: name, Patterns: compiled}
}

type rulesFile struct {
	Fields []struct {
		Field    string   `yaml:"field"`
		Patterns []string `yaml:"patterns"`
	} `yaml:"fields"`
	Triggers []struct {
		Type    string   `yaml:"type"`
		Phrases []string `yaml:"phrases"`
	} `yaml:"triggers"`
}

// LoadRules merges a YAML rules file over the built-in tables. A field or
// type named in the file replaces the built-in entry wholesale; unnamed
// entries keep their defaults and their order. New fields and types are
// appended after the defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file: %w", err)
	}
	var file rulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Rules{}, fmt.Errorf("parse rules file: %w", err)
	}

	for _, f := range file.Fields {
		compiled := make([]*regexp.Regexp, 0, len(f.Patterns))
		for _, p := range f.Patterns {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				return Rules{}, fmt.Errorf("compile pattern for field %q: %w", f.Field, err)
			}
			compiled = append(compiled, re)
		}
		rules.Patterns = upsertField(rules.Patterns, FieldPatterns{Field: f.Field, Patterns: compiled})
	}
	for _, t := range file.Triggers {
		rules.Triggers = upsertTrigger(rules.Triggers, TypeTriggers{
			Type:    domain.DocumentType(t.Type),
			Phrases: t.Phrases,
		})
	}
	return rules, nil
}

func upsertField(patterns []FieldPatterns, entry FieldPatterns) []FieldPatterns {
	for i := range patterns {
		if patterns[i].Field == entry.Field {
			patterns[i] = entry
			return patterns
		}
	}
	return append(patterns, entry)
}

func upsertTrigger(triggers []TypeTriggers, entry TypeTriggers) []TypeTriggers {
	for i := range triggers {
		if triggers[i].Type == entry.Type {
			triggers[i] = entry
			return triggers
		}
	}
	return append(triggers, entry)
}
