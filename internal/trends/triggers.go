// Package trends derives customer triggers from a brand profile and scores
// external trend descriptions against them.
package trends

import (
	"strings"

	"github.com/brandsight/signal-engine/internal/domain"
)

// Fixed trigger intensities per source field.
const (
	intensityDriver       = 75
	intensityFunctional   = 70
	intensityBefore       = 80
	intensityAfter        = 85
	intensityKeyBenefit   = 90
	quoteIntensityBoost   = 20
	quoteEmotionThreshold = 50
	maxIntensity          = 100
)

// fearWords flag an emotional driver as fear rather than desire.
var fearWords = []string{"fear", "afraid", "worry", "worried", "risk", "losing", "lose", "behind", "miss out"}

// ExtractTriggers maps fixed BrandProfile fields to CustomerTrigger records
// with fixed intensities. Missing fields simply produce no trigger.
func ExtractTriggers(profile *domain.BrandProfile) []domain.CustomerTrigger {
	var out []domain.CustomerTrigger

	for _, driver := range profile.EmotionalDrivers {
		if strings.TrimSpace(driver) == "" {
			continue
		}
		tt := domain.TriggerDesire
		if containsAny(driver, fearWords) {
			tt = domain.TriggerFear
		}
		out = append(out, domain.CustomerTrigger{
			Statement: driver,
			Type:      tt,
			Source:    "emotional_driver",
			Intensity: intensityDriver,
		})
	}

	for _, driver := range profile.FunctionalDrivers {
		if strings.TrimSpace(driver) == "" {
			continue
		}
		out = append(out, domain.CustomerTrigger{
			Statement: driver,
			Type:      domain.TriggerPainPoint,
			Source:    "functional_driver",
			Intensity: intensityFunctional,
		})
	}

	if s := strings.TrimSpace(profile.Transformation.Before); s != "" {
		out = append(out, domain.CustomerTrigger{
			Statement: s,
			Type:      domain.TriggerFrustration,
			Source:    "transformation_before",
			Intensity: intensityBefore,
		})
	}
	if s := strings.TrimSpace(profile.Transformation.After); s != "" {
		out = append(out, domain.CustomerTrigger{
			Statement: s,
			Type:      domain.TriggerAspiration,
			Source:    "transformation_after",
			Intensity: intensityAfter,
		})
	}

	for _, quote := range profile.CustomerQuotes {
		if strings.TrimSpace(quote.Text) == "" {
			continue
		}
		tt := domain.TriggerPainPoint
		if quote.EmotionalWeight >= quoteEmotionThreshold {
			tt = domain.TriggerDesire
		}
		intensity := quote.EmotionalWeight + quoteIntensityBoost
		if intensity > maxIntensity {
			intensity = maxIntensity
		}
		out = append(out, domain.CustomerTrigger{
			Statement: quote.Text,
			Type:      tt,
			Source:    "customer_quote",
			Intensity: intensity,
		})
	}

	if s := strings.TrimSpace(profile.KeyBenefit.Statement); s != "" {
		out = append(out, domain.CustomerTrigger{
			Statement: s,
			Type:      domain.TriggerAspiration,
			Source:    "key_benefit",
			Intensity: intensityKeyBenefit,
		})
	}

	return out
}

func containsAny(text string, words []string) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
