// Package catalog holds the static requirement tables for planning and
// zoning document types. A Catalog is constructed once and never mutated,
// so it is safe to share across concurrent analyses.
package catalog

import (
	"github.com/civiai/planning-analyzer/internal/core/domain"
)

// Group is an ordered set of field requirements under one category.
// Group order and field order within a group are the canonical catalog
// order consumed by the missing-requirement identifier.
type Group struct {
	Category domain.RequirementCategory
	Fields   []domain.FieldRequirement
}

type Catalog struct {
	requirements map[domain.DocumentType][]Group
	sources      map[string]string
	examples     map[string]string
}

func New() *Catalog {
	c := &Catalog{
		requirements: make(map[domain.DocumentType][]Group),
		sources:      suggestedSources(),
		examples:     exampleValues(),
	}
	for _, docType := range domain.DocumentTypes() {
		c.requirements[docType] = append(baseGroups(), typeGroups(docType)...)
	}
	c.requirements[domain.TypeUnknown] = baseGroups()
	return c
}

// Requirements returns the full ordered catalog for a document type. Types
// without specific requirements (including unknown) get the base groups
// only, so scoring against a minimal catalog always works.
func (c *Catalog) Requirements(docType domain.DocumentType) []Group {
	if groups, ok := c.requirements[docType]; ok {
		return groups
	}
	return c.requirements[domain.TypeUnknown]
}

// SuggestedSource names where a missing field can usually be obtained.
func (c *Catalog) SuggestedSource(fieldName string) string {
	if src, ok := c.sources[fieldName]; ok {
		return src
	}
	return "Additional documentation required"
}

// ExampleValue returns a sample value for a field, if one is defined.
// Fields without a curated example report ok=false rather than a
// fabricated value.
func (c *Catalog) ExampleValue(fieldName string) (string, bool) {
	example, ok := c.examples[fieldName]
	return example, ok
}

// baseGroups returns a fresh copy of the categories required for every
// document type. Callers compose on top of the copy, so no slice is
// shared between types.
func baseGroups() []Group {
	return []Group{
		{
			Category: domain.CategoryPropertyInfo,
			Fields: []domain.FieldRequirement{
				{FieldName: "property_address", Description: "Complete property address", Importance: domain.ImportanceCritical},
				{FieldName: "parcel_number", Description: "Tax assessor parcel number", Importance: domain.ImportanceCritical},
				{FieldName: "lot_size", Description: "Total lot size in square feet or acres", Importance: domain.ImportanceCritical},
				{FieldName: "current_zoning", Description: "Current zoning designation", Importance: domain.ImportanceCritical},
				{FieldName: "property_owner", Description: "Legal property owner name", Importance: domain.ImportanceImportant},
			},
		},
		{
			Category: domain.CategoryApplicantInfo,
			Fields: []domain.FieldRequirement{
				{FieldName: "applicant_name", Description: "Full name of applicant", Importance: domain.ImportanceCritical},
				{FieldName: "applicant_address", Description: "Applicant mailing address", Importance: domain.ImportanceImportant},
				{FieldName: "applicant_phone", Description: "Contact phone number", Importance: domain.ImportanceImportant},
				{FieldName: "applicant_email", Description: "Email address", Importance: domain.ImportanceRecommended},
				{FieldName: "agent_info", Description: "Authorized agent information if applicable", Importance: domain.ImportanceRecommended},
			},
		},
	}
}

func typeGroups(docType domain.DocumentType) []Group {
	switch docType {
	case domain.TypeZoningApplication:
		return []Group{
			{
				Category: domain.CategoryProjectDetails,
				Fields: []domain.FieldRequirement{
					{FieldName: "proposed_use", Description: "Detailed description of proposed use", Importance: domain.ImportanceCritical},
					{FieldName: "building_height", Description: "Maximum building height", Importance: domain.ImportanceCritical},
					{FieldName: "building_footprint", Description: "Building footprint area", Importance: domain.ImportanceCritical},
					{FieldName: "setbacks", Description: "Front, rear, and side setbacks", Importance: domain.ImportanceCritical},
					{FieldName: "parking_spaces", Description: "Number of parking spaces provided", Importance: domain.ImportanceImportant},
					{FieldName: "landscaping_plan", Description: "Landscaping and green space plan", Importance: domain.ImportanceImportant},
				},
			},
			{
				Category: domain.CategoryZoning,
				Fields: []domain.FieldRequirement{
					{FieldName: "density_calculation", Description: "Dwelling units per acre calculation", Importance: domain.ImportanceCritical},
					{FieldName: "floor_area_ratio", Description: "Floor area ratio compliance", Importance: domain.ImportanceImportant},
					{FieldName: "open_space_ratio", Description: "Required open space percentage", Importance: domain.ImportanceImportant},
				},
			},
		}
	case domain.TypeBuildingPermit:
		return []Group{
			{
				Category: domain.CategoryProjectDetails,
				Fields: []domain.FieldRequirement{
					{FieldName: "construction_type", Description: "Type of construction (new, addition, renovation)", Importance: domain.ImportanceCritical},
					{FieldName: "building_value", Description: "Estimated construction value", Importance: domain.ImportanceCritical},
					{FieldName: "square_footage", Description: "Total square footage", Importance: domain.ImportanceCritical},
					{FieldName: "number_of_stories", Description: "Number of stories", Importance: domain.ImportanceImportant},
					{FieldName: "occupancy_type", Description: "Building occupancy classification", Importance: domain.ImportanceCritical},
				},
			},
			{
				Category: domain.CategoryInfrastructure,
				Fields: []domain.FieldRequirement{
					{FieldName: "water_connection", Description: "Water service connection details", Importance: domain.ImportanceCritical},
					{FieldName: "sewer_connection", Description: "Sewer service connection details", Importance: domain.ImportanceCritical},
					{FieldName: "electrical_service", Description: "Electrical service requirements", Importance: domain.ImportanceImportant},
				},
			},
		}
	case domain.TypeSitePlan:
		return []Group{
			{
				Category: domain.CategoryProjectDetails,
				Fields: []domain.FieldRequirement{
					{FieldName: "building_footprint", Description: "Building footprint area", Importance: domain.ImportanceCritical},
					{FieldName: "setbacks", Description: "Front, rear, and side setbacks", Importance: domain.ImportanceCritical},
					{FieldName: "parking_spaces", Description: "Number of parking spaces provided", Importance: domain.ImportanceImportant},
					{FieldName: "landscaping_plan", Description: "Landscaping and green space plan", Importance: domain.ImportanceImportant},
				},
			},
			{
				Category: domain.CategoryInfrastructure,
				Fields: []domain.FieldRequirement{
					{FieldName: "stormwater_drainage", Description: "Stormwater drainage plan", Importance: domain.ImportanceCritical},
					{FieldName: "utility_easements", Description: "Utility easement locations", Importance: domain.ImportanceImportant},
				},
			},
		}
	case domain.TypeEnvironmentalImpact:
		return []Group{
			{
				Category: domain.CategoryProjectDetails,
				Fields: []domain.FieldRequirement{
					{FieldName: "proposed_use", Description: "Detailed description of proposed use", Importance: domain.ImportanceCritical},
				},
			},
			{
				Category: domain.CategoryEnvironmental,
				Fields: []domain.FieldRequirement{
					{FieldName: "wetlands_assessment", Description: "Wetlands and riparian area assessment", Importance: domain.ImportanceCritical},
					{FieldName: "traffic_impact", Description: "Traffic impact analysis", Importance: domain.ImportanceImportant},
					{FieldName: "noise_assessment", Description: "Noise impact assessment", Importance: domain.ImportanceRecommended},
				},
			},
		}
	case domain.TypeVarianceRequest:
		return []Group{
			{
				Category: domain.CategoryProjectDetails,
				Fields: []domain.FieldRequirement{
					{FieldName: "variance_type", Description: "Type of variance requested", Importance: domain.ImportanceCritical},
					{FieldName: "hardship_justification", Description: "Statement of unique hardship", Importance: domain.ImportanceCritical},
				},
			},
			{
				Category: domain.CategoryZoning,
				Fields: []domain.FieldRequirement{
					{FieldName: "requested_deviation", Description: "Specific deviation from standard requested", Importance: domain.ImportanceCritical},
				},
			},
		}
	case domain.TypeSubdivisionPlan:
		return []Group{
			{
				Category: domain.CategoryProjectDetails,
				Fields: []domain.FieldRequirement{
					{FieldName: "number_of_lots", Description: "Number of proposed lots", Importance: domain.ImportanceCritical},
					{FieldName: "minimum_lot_size", Description: "Minimum proposed lot size", Importance: domain.ImportanceCritical},
				},
			},
			{
				Category: domain.CategoryInfrastructure,
				Fields: []domain.FieldRequirement{
					{FieldName: "road_access", Description: "Road access and frontage details", Importance: domain.ImportanceCritical},
					{FieldName: "water_connection", Description: "Water service connection details", Importance: domain.ImportanceImportant},
					{FieldName: "sewer_connection", Description: "Sewer service connection details", Importance: domain.ImportanceImportant},
				},
			},
			{
				Category: domain.CategoryLegal,
				Fields: []domain.FieldRequirement{
					{FieldName: "plat_map", Description: "Preliminary plat map", Importance: domain.ImportanceCritical},
				},
			},
		}
	case domain.TypeConditionalUse:
		return []Group{
			{
				Category: domain.CategoryProjectDetails,
				Fields: []domain.FieldRequirement{
					{FieldName: "proposed_use", Description: "Detailed description of proposed use", Importance: domain.ImportanceCritical},
					{FieldName: "hours_of_operation", Description: "Proposed hours of operation", Importance: domain.ImportanceImportant},
				},
			},
			{
				Category: domain.CategoryZoning,
				Fields: []domain.FieldRequirement{
					{FieldName: "compatibility_statement", Description: "Neighborhood compatibility statement", Importance: domain.ImportanceImportant},
				},
			},
		}
	default:
		return nil
	}
}
