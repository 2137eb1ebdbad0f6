package vocabulary

// regionPatterns is the curated region keyword table, matched the same way
// as industryPatterns: one hit pulls in the full entry.
var regionPatterns = []patternEntry{
	{"united-states", []string{
		"united states", "usa", "america", "nationwide", "us market",
	}},
	{"canada", []string{
		"canada", "canadian", "ontario", "quebec", "british columbia",
		"toronto", "vancouver", "montreal",
	}},
	{"united-kingdom", []string{
		"united kingdom", "uk", "britain", "england", "london",
	}},
	{"europe", []string{
		"europe", "european", "eu market", "germany", "france",
	}},
	{"australia", []string{
		"australia", "australian", "sydney", "melbourne", "anz",
	}},
	{"asia-pacific", []string{
		"asia", "apac", "singapore", "japan", "india",
	}},
	{"latin-america", []string{
		"latin america", "latam", "brazil", "mexico",
	}},
}
