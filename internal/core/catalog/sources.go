package catalog

// suggestedSources maps field names to the document or office that usually
// supplies them. Fields not listed here fall back to a generic hint.
func suggestedSources() map[string]string {
	return map[string]string{
		"property_address":       "Property deed or tax records",
		"parcel_number":          "County assessor records",
		"lot_size":               "Survey or property deed",
		"current_zoning":         "Municipal zoning map",
		"property_owner":         "Property deed or title report",
		"applicant_name":         "Application form",
		"applicant_address":      "Application form",
		"applicant_phone":        "Application form",
		"applicant_email":        "Application form",
		"proposed_use":           "Project description document",
		"building_height":        "Architectural plans",
		"building_footprint":     "Site plan or architectural drawings",
		"setbacks":               "Site plan with measurements",
		"parking_spaces":         "Site plan or parking analysis",
		"construction_type":      "Building plans and specifications",
		"building_value":         "Construction cost estimate",
		"square_footage":         "Architectural plans",
		"stormwater_drainage":    "Civil engineering drainage plan",
		"wetlands_assessment":    "Environmental consultant report",
		"traffic_impact":         "Traffic engineering study",
		"variance_type":          "Variance application form",
		"hardship_justification": "Written hardship statement",
		"number_of_lots":         "Preliminary plat drawing",
		"road_access":            "Civil engineering road plan",
		"plat_map":               "Licensed surveyor plat",
	}
}

func exampleValues() map[string]string {
	return map[string]string{
		"property_address":   "123 Main Street, Shady Cove, OR 97520",
		"parcel_number":      "37-1W-25-1000",
		"lot_size":           "0.25 acres (10,890 sq ft)",
		"current_zoning":     "R-1 (Single Family Residential)",
		"applicant_name":     "John Smith",
		"applicant_phone":    "(541) 555-0123",
		"applicant_email":    "john.smith@email.com",
		"proposed_use":       "Single-family residence with detached garage",
		"building_height":    "28 feet",
		"building_footprint": "2,400 square feet",
		"setbacks":           "Front: 25ft, Rear: 20ft, Side: 10ft",
		"parking_spaces":     "2 covered spaces in garage",
		"construction_type":  "New single-family residence",
		"building_value":     "$350,000",
		"square_footage":     "1,850 sq ft",
		"number_of_lots":     "4 lots",
	}
}
