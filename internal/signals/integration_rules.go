package signals

import (
	"regexp"
	"strings"

	"github.com/brandsight/signal-engine/internal/domain"
)

// integrationCategory pairs an ecosystem category with the product names
// scanned for. Categories are tried in slice order; the first category with
// a product hit wins.
type integrationCategory struct {
	category string
	products []string
}

var integrationCategories = []integrationCategory{
	{"crm", []string{"salesforce", "hubspot", "pipedrive", "zoho crm", "dynamics 365"}},
	{"communication", []string{"slack", "microsoft teams", "zoom", "discord"}},
	{"project-management", []string{"jira", "asana", "monday.com", "trello", "clickup", "linear"}},
	{"accounting", []string{"quickbooks", "xero", "netsuite", "freshbooks", "sage"}},
	{"marketing", []string{"mailchimp", "marketo", "klaviyo", "pardot", "braze"}},
	{"data-warehouse", []string{"snowflake", "bigquery", "redshift", "databricks"}},
	{"automation", []string{"zapier", "make.com", "workato", "power automate"}},
	{"support", []string{"zendesk", "intercom", "freshdesk", "front"}},
	{"ecommerce", []string{"shopify", "woocommerce", "bigcommerce", "stripe"}},
}

// requestIntentPattern marks an integration mention as an active request
// rather than a passing reference.
var requestIntentPattern = regexp.MustCompile(
	`(?i)\b(?:need|want|wish|would love|looking for|any way to|does (?:it|this) (?:integrate|connect|sync)|please add)\b`)

// DetectIntegrationOpportunity scans text for any product name in the fixed
// category table and returns the first category with a hit, listing every
// matched product in that category. Returns nil when no product appears.
func DetectIntegrationOpportunity(text string) *domain.IntegrationOpportunity {
	lower := strings.ToLower(text)

	for _, cat := range integrationCategories {
		var hits []string
		for _, product := range cat.products {
			if strings.Contains(lower, product) {
				hits = append(hits, product)
			}
		}
		if len(hits) > 0 {
			return &domain.IntegrationOpportunity{
				Category:  cat.category,
				Products:  hits,
				Requested: requestIntentPattern.MatchString(text),
			}
		}
	}
	return nil
}
