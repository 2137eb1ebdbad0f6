package queries

// industrySynonyms expands an industry topic into adjacent phrasings so the
// generated batch covers how practitioners actually search.
var industrySynonyms = map[string][]string{
	"insurance":     {"insurance carriers", "insurers", "claims management"},
	"healthcare":    {"medical practices", "clinics", "patient care"},
	"legal":         {"law firms", "legal services"},
	"real estate":   {"realtors", "property management"},
	"construction":  {"general contractors", "construction companies"},
	"hospitality":   {"restaurants", "hotels"},
	"software":      {"saas companies", "software vendors"},
	"ecommerce":     {"online retailers", "ecommerce brands"},
	"finance":       {"accounting firms", "financial services"},
	"education":     {"schools", "education providers"},
	"logistics":     {"freight companies", "3pl providers"},
	"manufacturing": {"manufacturers", "industrial companies"},
	"fitness":       {"gyms", "fitness studios"},
	"automotive":    {"auto dealerships", "repair shops"},
}
