package domain

import (
	"encoding/json"
	"strings"
)

type DocumentType string

const (
	TypeZoningApplication   DocumentType = "zoning_application"
	TypeBuildingPermit      DocumentType = "building_permit"
	TypeSitePlan            DocumentType = "site_plan"
	TypeEnvironmentalImpact DocumentType = "environmental_impact"
	TypeVarianceRequest     DocumentType = "variance_request"
	TypeSubdivisionPlan     DocumentType = "subdivision_plan"
	TypeConditionalUse      DocumentType = "conditional_use"
	TypeUnknown             DocumentType = "unknown"
)

// DocumentTypes lists every classifiable type in catalog enumeration order.
// The classifier's tie-break contract depends on this order staying stable.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		TypeZoningApplication,
		TypeBuildingPermit,
		TypeSitePlan,
		TypeEnvironmentalImpact,
		TypeVarianceRequest,
		TypeSubdivisionPlan,
		TypeConditionalUse,
	}
}

type RequirementCategory string

const (
	CategoryPropertyInfo   RequirementCategory = "property_information"
	CategoryApplicantInfo  RequirementCategory = "applicant_information"
	CategoryProjectDetails RequirementCategory = "project_details"
	CategoryZoning         RequirementCategory = "zoning_compliance"
	CategoryEnvironmental  RequirementCategory = "environmental_considerations"
	CategoryInfrastructure RequirementCategory = "infrastructure_requirements"
	CategoryFinancial      RequirementCategory = "financial_information"
	CategoryLegal          RequirementCategory = "legal_documentation"
)

type Importance string

const (
	ImportanceCritical    Importance = "critical"
	ImportanceImportant   Importance = "important"
	ImportanceRecommended Importance = "recommended"
)

// Weight maps importance to its scoring weight. Unrecognized levels weigh 1
// so a malformed rules file can never zero out a requirement.
func (i Importance) Weight() int {
	switch i {
	case ImportanceCritical:
		return 3
	case ImportanceImportant:
		return 2
	default:
		return 1
	}
}

// FieldRequirement describes one required piece of information for a
// document type. Instances are static configuration, never mutated.
type FieldRequirement struct {
	FieldName   string     `json:"field_name"`
	Description string     `json:"description"`
	Importance  Importance `json:"importance"`
}

// MissingRequirement is a catalog field the extractor could not satisfy.
type MissingRequirement struct {
	Category        RequirementCategory `json:"category"`
	FieldName       string              `json:"field_name"`
	Description     string              `json:"description"`
	Importance      Importance          `json:"importance"`
	SuggestedSource string              `json:"suggested_source"`
	ExampleValue    string              `json:"example_value,omitempty"`
}

// FieldValue holds one extracted value: either a single pattern-derived
// string or a list of entity mentions from the NER collaborator.
type FieldValue struct {
	Text string
	List []string
}

func TextValue(s string) FieldValue   { return FieldValue{Text: s} }
func ListValue(v []string) FieldValue { return FieldValue{List: v} }

// Empty reports whether the value counts as absent: a whitespace-only
// match is treated the same as no match at all.
func (v FieldValue) Empty() bool {
	if v.List != nil {
		return len(v.List) == 0
	}
	return strings.TrimSpace(v.Text) == ""
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.List != nil {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = FieldValue{List: list}
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*v = FieldValue{Text: text}
	return nil
}

// ExtractedFields maps field name to extracted value. Absence means "not
// found"; values are never stored empty.
type ExtractedFields map[string]FieldValue

// AnalysisResult is the complete outcome of one analyze call.
type AnalysisResult struct {
	DocumentType         DocumentType         `json:"document_type"`
	ExtractedTextPreview string               `json:"extracted_text_preview"`
	FoundInformation     ExtractedFields      `json:"found_information"`
	MissingRequirements  []MissingRequirement `json:"missing_requirements"`
	ComplianceScore      float64              `json:"compliance_score"`
	ConfidenceScore      float64              `json:"confidence_score"`
	Recommendations      []string             `json:"recommendations"`
	NextSteps            []string             `json:"next_steps"`
}
