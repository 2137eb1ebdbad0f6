// Package signals classifies raw national signals: signal type, churn risk,
// integration opportunity, urgency, composite score and conversion potential.
package signals

import (
	"regexp"

	"github.com/brandsight/signal-engine/internal/domain"
)

// signalFamily pairs a signal type with its pattern set. Families are tried
// in slice order and the first family with a matching pattern wins.
type signalFamily struct {
	signalType domain.SignalType
	patterns   []*regexp.Regexp
}

var signalFamilies = []signalFamily{
	{
		signalType: domain.SignalChurnAnnouncement,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:cancel(?:l?ed|ing)?|terminat(?:ed|ing))\s+(?:our|my|the)\s+(?:subscription|contract|account|plan)\b`),
			regexp.MustCompile(`(?i)\b(?:we|i)(?:'re| are| am)?\s+(?:leaving|dropping|ditching|done with)\b`),
			regexp.MustCompile(`(?i)\bnot\s+renewing\b`),
		},
	},
	{
		signalType: domain.SignalSwitchingIntent,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:switching|migrating|moving)\s+(?:to|from|away from|over to)\b`),
			regexp.MustCompile(`(?i)\blooking\s+to\s+(?:switch|migrate|move|replace)\b`),
			regexp.MustCompile(`(?i)\breplac(?:e|ing)\s+(?:our|my|the)\s+(?:current|existing)\b`),
		},
	},
	{
		signalType: domain.SignalCompetitorComplaint,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:fed up|sick of|tired of|frustrated with|disappointed (?:with|in|by))\b`),
			regexp.MustCompile(`(?i)\b(?:worst|terrible|awful|horrible)\s+(?:tool|software|platform|product|vendor|experience)\b`),
		},
	},
	{
		signalType: domain.SignalPricingDiscussion,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:pricing|price increase|price hike|cost(?:s)? too much|too expensive|overpriced)\b`),
			regexp.MustCompile(`(?i)\b(?:cheaper|more affordable)\s+(?:alternative|option|tool)\b`),
			regexp.MustCompile(`(?i)\b(?:worth the (?:price|cost|money)|good value)\b`),
		},
	},
	{
		signalType: domain.SignalIntegrationRequest,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:integrat(?:e|es|ion|ions))\s+(?:with|between|into)\b`),
			regexp.MustCompile(`(?i)\b(?:does|do)\s+(?:it|this|anyone know if \w+)\s+(?:connect|sync|work)\s+with\b`),
			regexp.MustCompile(`(?i)\b(?:api|webhook|zapier)\s+(?:support|access|connection)\b`),
		},
	},
	{
		signalType: domain.SignalFeatureRequest,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:wish (?:it|they|there) (?:had|was|were)|would be (?:great|nice) if)\b`),
			regexp.MustCompile(`(?i)\b(?:feature request|missing feature|please add)\b`),
			regexp.MustCompile(`(?i)\bneeds?\s+(?:a|an|better|more)\s+\w+\s+(?:feature|option|support)\b`),
		},
	},
	{
		signalType: domain.SignalRecommendationAsk,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:any|looking for)\s+recommendations?\b`),
			regexp.MustCompile(`(?i)\bwhat\s+(?:do you|does everyone)\s+(?:use|recommend)\b`),
			regexp.MustCompile(`(?i)\b(?:best|good)\s+(?:tool|software|platform|app)s?\s+for\b`),
			regexp.MustCompile(`(?i)\bsuggestions?\s+(?:for|on|welcome)\b`),
		},
	},
	{
		signalType: domain.SignalVendorEvaluation,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:evaluating|shortlist(?:ed|ing)?|comparing)\s+(?:vendors?|tools?|platforms?|options?|solutions?)\b`),
			regexp.MustCompile(`(?i)\b(?:proof of concept|poc|pilot|trial(?:ing)?)\s+(?:with|of|for)\b`),
			regexp.MustCompile(`(?i)\b(?:rfp|request for proposal|vendor selection)\b`),
		},
	},
	{
		signalType: domain.SignalSupportFrustration,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:support|customer service)\s+(?:is|has been|was)\s+(?:terrible|awful|useless|unresponsive|slow|nonexistent)\b`),
			regexp.MustCompile(`(?i)\b(?:no response|still waiting|ignored)\b.{0,40}\b(?:ticket|support|help)\b`),
			regexp.MustCompile(`(?i)\b(?:ticket|case)\s+(?:open|unanswered)\s+for\b`),
		},
	},
	{
		signalType: domain.SignalOutageReport,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:is|are)\s+(?:down|offline|unreachable)\b`),
			regexp.MustCompile(`(?i)\b(?:outage|downtime|service disruption|major incident)\b`),
			regexp.MustCompile(`(?i)\b(?:can'?t|cannot|unable to)\s+(?:log ?in|access|connect)\b.{0,40}\b(?:again|all morning|for hours)\b`),
		},
	},
	{
		signalType: domain.SignalContractRenewal,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:contract|subscription|license)\s+(?:renewal|up for renewal|expires?|expiring|ends?)\b`),
			regexp.MustCompile(`(?i)\brenewal\s+(?:date|notice|negotiation|coming up)\b`),
		},
	},
	{
		signalType: domain.SignalExpansionNeed,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:scaling|growing)\s+(?:the\s+)?(?:team|company|usage|fast)\b`),
			regexp.MustCompile(`(?i)\bneed\s+(?:more\s+)?(?:seats|licenses|capacity)\b`),
			regexp.MustCompile(`(?i)\b(?:outgrown|outgrowing)\b`),
		},
	},
	{
		signalType: domain.SignalToolConsolidation,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:consolidat(?:e|ing|ion))\s+(?:our\s+)?(?:tools?|stack|vendors?|spend)\b`),
			regexp.MustCompile(`(?i)\b(?:too many tools|tool sprawl|reduce (?:our\s+)?(?:stack|number of tools))\b`),
			regexp.MustCompile(`(?i)\ball.in.one\s+(?:platform|solution|tool)\b`),
		},
	},
}

// DetectSignalType tries each family in order and returns the first family
// with a matching pattern. Nothing matching falls through to
// feature-comparison.
func DetectSignalType(text string) domain.SignalType {
	for _, family := range signalFamilies {
		for _, p := range family.patterns {
			if p.MatchString(text) {
				return family.signalType
			}
		}
	}
	return domain.SignalFeatureComparison
}
