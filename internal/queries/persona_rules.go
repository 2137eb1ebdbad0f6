package queries

import (
	"regexp"
	"strings"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/textutil"
)

// jobTitlePatterns is the fixed list of job-title shapes scanned against
// role and statement text, in precedence order.
var jobTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:head of|vp of|director of)\s+\w+\b`),
	regexp.MustCompile(`(?i)\b\w+\s+(?:manager|director|coordinator|supervisor|administrator)\b`),
	regexp.MustCompile(`(?i)\b(?:owner|founder|ceo|cto|coo|cfo|president)\b`),
	regexp.MustCompile(`(?i)\b(?:manager|director|consultant|specialist|analyst)\b`),
}

// ExtractPersonas applies the job-title patterns to the target customer's
// role and statement. When no pattern matches, the raw role string is kept
// as-is so a persona is never silently lost.
func ExtractPersonas(profile *domain.BrandProfile) []string {
	var out []string

	for _, text := range []string{profile.TargetCustomer.Role, profile.TargetCustomer.Statement} {
		if strings.TrimSpace(text) == "" {
			continue
		}
		matched := false
		for _, p := range jobTitlePatterns {
			for _, hit := range p.FindAllString(text, -1) {
				out = append(out, strings.ToLower(strings.TrimSpace(hit)))
				matched = true
			}
			if matched {
				break
			}
		}
		if !matched && text == profile.TargetCustomer.Role {
			out = append(out, strings.ToLower(strings.TrimSpace(text)))
		}
	}

	return textutil.Dedupe(out)
}
