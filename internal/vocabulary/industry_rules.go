package vocabulary

// patternEntry maps a named table entry to its keyword patterns. Matching
// any single pattern adds the entry's whole pattern set to the vocabulary.
type patternEntry struct {
	name     string
	patterns []string
}

// industryPatterns is the curated industry keyword table. Patterns are
// matched as lowercase substrings of the combined profile text.
var industryPatterns = []patternEntry{
	{"insurance", []string{
		"insurance", "claims", "policyholder", "underwriting", "premiums",
		"adjuster", "coverage", "deductible",
	}},
	{"healthcare", []string{
		"healthcare", "patient", "clinic", "medical", "telehealth",
		"provider", "hipaa", "ehr",
	}},
	{"legal", []string{
		"legal", "law firm", "attorney", "paralegal", "litigation",
		"compliance", "contracts",
	}},
	{"real-estate", []string{
		"real estate", "realtor", "listings", "property management",
		"tenants", "brokerage", "mls",
	}},
	{"construction", []string{
		"construction", "contractor", "job site", "subcontractor",
		"estimating", "punch list", "blueprints",
	}},
	{"hospitality", []string{
		"restaurant", "hospitality", "reservations", "guests", "menu",
		"front desk", "occupancy",
	}},
	{"software", []string{
		"saas", "software", "platform", "integration", "api", "workflow",
		"automation", "onboarding",
	}},
	{"ecommerce", []string{
		"ecommerce", "online store", "checkout", "cart", "fulfillment",
		"storefront", "inventory",
	}},
	{"finance", []string{
		"finance", "accounting", "bookkeeping", "invoices", "payroll",
		"lending", "reconciliation",
	}},
	{"education", []string{
		"education", "students", "curriculum", "enrollment", "tutoring",
		"classroom", "lms",
	}},
	{"logistics", []string{
		"logistics", "freight", "shipping", "fleet", "dispatch",
		"warehouse", "supply chain",
	}},
	{"manufacturing", []string{
		"manufacturing", "production line", "assembly", "quality control",
		"oem", "fabrication",
	}},
	{"fitness", []string{
		"fitness", "gym", "trainer", "membership", "wellness", "studio",
		"classes",
	}},
	{"automotive", []string{
		"automotive", "dealership", "repair shop", "service bay",
		"vehicles", "technicians",
	}},
	{"home-services", []string{
		"plumbing", "hvac", "electrician", "landscaping", "roofing",
		"cleaning service", "pest control",
	}},
}
