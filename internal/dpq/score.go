package dpq

import (
	"strings"

	"dpq/pkg/domain"
)

// neutralScore is used for a facet when none of its items were answered.
const neutralScore = 4.0

// Scores is the raw scored outcome of a questionnaire before client-facing
// formatting: per-facet and per-factor means on the 1-7 scale, the
// three-level profile, dominant traits and the 0-1 bias indicators.
type Scores struct {
	Facets         map[string]float64
	Factors        map[string]float64
	Profile        map[string]string
	DominantTraits []string
	Bias           map[string]float64
}

// Score computes the DPQ scores for a (validated) response set.
//
// Items listed as reverse-coded are flipped (v' = 8 - v), each facet is the
// mean of its answered items (4.0 neutral when none answered), and each
// factor is the mean of its facet scores.
func Score(responses domain.Responses) Scores {
	processed := make(map[int]int, len(responses))
	for q, v := range responses {
		processed[q] = v
	}
	for _, factor := range Factors {
		for _, facet := range factor.Facets {
			for _, item := range facet.Reverse {
				if v, ok := processed[item]; ok {
					processed[item] = 8 - v
				}
			}
		}
	}

	facets := make(map[string]float64)
	factors := make(map[string]float64)
	for _, factor := range Factors {
		var factorSum float64
		for _, facet := range factor.Facets {
			var sum, n float64
			for _, item := range facet.Items {
				if v, ok := processed[item]; ok {
					sum += float64(v)
					n++
				}
			}
			score := neutralScore
			if n > 0 {
				score = sum / n
			}
			facets[facet.Key] = score
			factorSum += score
		}
		factors[factor.Key] = factorSum / float64(len(factor.Facets))
	}

	return Scores{
		Facets:         facets,
		Factors:        factors,
		Profile:        profile(factors),
		DominantTraits: dominantTraits(factors),
		Bias:           biasIndicators(factors, facets),
	}
}

// profile classifies each factor score into High (>= 5.5), Moderate (>= 4.5)
// or Low.
func profile(factors map[string]float64) map[string]string {
	out := make(map[string]string, len(factors))
	for key, score := range factors {
		switch {
		case score >= 5.5:
			out[key] = "High"
		case score >= 4.5:
			out[key] = "Moderate"
		default:
			out[key] = "Low"
		}
	}

	return out
}

// dominantTraits picks the descriptive traits for factors scoring >= 5.0, in
// factor order, falling back to "Balanced" when none qualify.
func dominantTraits(factors map[string]float64) []string {
	labels := map[string]string{
		FactorFearfulness:      "Cautious/Fearful",
		FactorAggressionPeople: "Protective/Aggressive",
		FactorActivity:         "Energetic/Excitable",
		FactorTraining:         "Trainable/Responsive",
		FactorAggressionAnimal: "Animal-Reactive",
	}

	var traits []string
	for _, factor := range Factors {
		if factors[factor.Key] >= 5.0 {
			traits = append(traits, labels[factor.Key])
		}
	}
	if len(traits) == 0 {
		traits = append(traits, "Balanced")
	}

	return traits
}

// biasIndicators derives the 0-1 calibration signals for AI translation from
// factor and facet scores.
func biasIndicators(factors, facets map[string]float64) map[string]float64 {
	return map[string]float64{
		// communication biases
		"fearfulness_bias":  factors[FactorFearfulness] / 7.0,
		"aggression_bias":   (factors[FactorAggressionPeople] + factors[FactorAggressionAnimal]) / 14.0,
		"excitability_bias": factors[FactorActivity] / 7.0,
		"trainability_bias": factors[FactorTraining] / 7.0,

		// specific behavioral biases
		"social_confidence":          (7 - facets["fear_of_people"]) / 7.0,
		"dog_sociability":            (7 - facets["fear_of_dogs"] + facets["playfulness"]) / 14.0,
		"environmental_adaptability": (7 - facets["nonsocial_fear"]) / 7.0,
		"handling_tolerance":         (7 - facets["fear_of_handling"]) / 7.0,

		// energy and attention biases
		"attention_seeking": facets["companionability"] / 7.0,
		"activity_level":    (facets["excitability"] + facets["active_engagement"]) / 14.0,
		"impulse_control":   facets["controllability"] / 7.0,

		// territorial and protective biases
		"territorial_tendency": facets["general_aggression"] / 7.0,
		"resource_guarding":    facets["situational_aggression"] / 7.0,
		"prey_drive":           facets["prey_drive"] / 7.0,
	}
}

// BiasDescriptions explain each bias indicator in a report context.
var BiasDescriptions = map[string]string{
	"fearfulness_bias":           "Tendency to interpret neutral signals as threatening",
	"aggression_bias":            "Likelihood of aggressive response interpretations",
	"excitability_bias":          "Tendency toward high-energy interpretations",
	"trainability_bias":          "Responsiveness to command-like communications",
	"social_confidence":          "Comfort level in social interactions",
	"dog_sociability":            "Friendliness toward other dogs",
	"environmental_adaptability": "Comfort with new environments/situations",
	"handling_tolerance":         "Acceptance of physical handling/restraint",
	"attention_seeking":          "Desire for human interaction and attention",
	"activity_level":             "General energy and movement preferences",
	"impulse_control":            "Ability to control immediate responses",
	"territorial_tendency":       "Protective behavior toward territory/family",
	"resource_guarding":          "Protective behavior toward valued items",
	"prey_drive":                 "Interest in chasing/hunting behaviors",
}

// DominantTraitsLine joins the dominant traits for display.
func (s Scores) DominantTraitsLine() string {
	return strings.Join(s.DominantTraits, ", ")
}
