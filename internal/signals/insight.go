package signals

import (
	"fmt"

	"github.com/brandsight/signal-engine/internal/domain"
)

// tacticsByType maps each signal type to its recommended outreach tactic.
var tacticsByType = map[domain.SignalType]string{
	domain.SignalChurnAnnouncement:   "Reach out within 24 hours with a tailored migration offer before the replacement decision settles.",
	domain.SignalSwitchingIntent:     "Engage with a comparison resource and a fast-track onboarding offer while the evaluation is open.",
	domain.SignalCompetitorComplaint: "Respond with empathy in-thread, then follow up privately with how the pain point is handled differently.",
	domain.SignalPricingDiscussion:   "Share transparent pricing and a value breakdown; offer a cost-comparison call.",
	domain.SignalIntegrationRequest:  "Confirm or roadmap the requested integration and offer a technical walkthrough.",
	domain.SignalFeatureRequest:      "Route to product and reply with the closest existing workflow plus roadmap visibility.",
	domain.SignalRecommendationAsk:   "Join the thread with a genuinely useful answer; avoid a hard pitch, link a relevant case study.",
	domain.SignalVendorEvaluation:    "Offer an evaluation guide and a proof-of-concept environment scoped to their criteria.",
	domain.SignalSupportFrustration:  "Lead with the support SLA and named-contact model; offer a white-glove migration.",
	domain.SignalOutageReport:        "Time-sensitive: highlight reliability track record and status-page transparency.",
	domain.SignalContractRenewal:     "Time outreach to the renewal window with a switching-cost analysis.",
	domain.SignalExpansionNeed:       "Lead with scale pricing and capacity headroom; offer a growth-planning session.",
	domain.SignalToolConsolidation:   "Position the platform play: map which of their current tools it replaces.",
	domain.SignalFeatureComparison:   "Provide an honest feature comparison and invite a hands-on trial.",
}

// BuildInsight generates the actionable recommendation for a classified
// signal. The insight text names what was detected; the tactic comes from
// the fixed per-type table.
func BuildInsight(signal domain.NationalSignal, result *domain.NationalSignalResult) domain.SignalInsight {
	insight := domain.SignalInsight{
		RecommendedTactic:   tacticsByType[result.Type],
		ConversionPotential: conversionPotential(signal, result),
	}

	switch {
	case result.Churn != nil && result.Churn.Severity == domain.SeverityCritical:
		insight.ActionableInsight = fmt.Sprintf(
			"Critical %s churn signal on %s with %s timeframe; the account decision is effectively made and displacement is in progress.",
			result.Churn.Type, signal.Platform, result.Churn.Timeframe)
	case result.Churn != nil:
		insight.ActionableInsight = fmt.Sprintf(
			"%s churn risk (%s severity, %s timeframe) detected on %s.",
			result.Churn.Type, result.Churn.Severity, result.Churn.Timeframe, signal.Platform)
	case result.Competitors != nil && result.Competitors.PrimaryCompetitor != "":
		insight.ActionableInsight = fmt.Sprintf(
			"%s signal on %s centered on %s; displacement context: %s.",
			result.Type, signal.Platform, result.Competitors.PrimaryCompetitor,
			displacementLabel(result.Competitors.Displacement))
	case result.Integration != nil:
		insight.ActionableInsight = fmt.Sprintf(
			"Integration interest in the %s category (%d product mention(s)) on %s.",
			result.Integration.Category, len(result.Integration.Products), signal.Platform)
	default:
		insight.ActionableInsight = fmt.Sprintf("%s signal detected on %s.", result.Type, signal.Platform)
	}

	return insight
}

func displacementLabel(d domain.DisplacementType) string {
	if d == domain.DisplacementNone {
		return "none"
	}
	return string(d)
}
