package dpq

import (
	"fmt"
	"math"

	"dpq/pkg/domain"
)

// Versioning constants recorded with every stored result.
const (
	AssessmentVersion = "DPQ_Short_Form_v1.0"
	ScoringAlgorithm  = "Jones_2009_validated"

	// baselineReliability is the published reliability of the short form;
	// per-assessment estimation is out of scope for now.
	baselineReliability = 0.94
)

// factorDescriptions map a factor key and base level (High/Moderate/Low) to a
// client-facing description.
var factorDescriptions = map[string]map[string]string{
	FactorFearfulness: {
		"High":     "Shows high levels of anxiety and fear responses",
		"Moderate": "Shows moderate levels of anxiety and fear responses",
		"Low":      "Generally confident and calm in various situations",
	},
	FactorAggressionPeople: {
		"High":     "May show aggressive tendencies toward people",
		"Moderate": "Shows some wariness or assertiveness with people",
		"Low":      "Generally friendly and non-aggressive toward people",
	},
	FactorActivity: {
		"High":     "Highly energetic, excitable, and active",
		"Moderate": "Moderately energetic with balanced activity levels",
		"Low":      "Calm and low-energy, prefers quiet activities",
	},
	FactorTraining: {
		"High":     "Highly trainable and responsive to commands",
		"Moderate": "Moderately trainable with consistent effort",
		"Low":      "May be challenging to train, requires patience",
	},
	FactorAggressionAnimal: {
		"High":     "Shows high reactivity or aggression toward other animals",
		"Moderate": "Shows moderate reactivity toward other animals",
		"Low":      "Generally peaceful and non-aggressive with other animals",
	},
}

// Level converts a 1-7 factor score into the five-step level used in results.
func Level(score float64) string {
	switch {
	case score >= 5.5:
		return "High"
	case score >= 4.5:
		return "Moderate-High"
	case score >= 3.5:
		return "Moderate"
	case score >= 2.5:
		return "Moderate-Low"
	default:
		return "Low"
	}
}

func describeFactor(key, level string) string {
	if d, ok := factorDescriptions[key][level]; ok {
		return d
	}

	return fmt.Sprintf("%s levels for %s", level, key)
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)

	return math.Round(v*p) / p
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Result assembles the complete client-facing assessment result from raw
// scores and responses. Recommendations are attached separately by the
// caller once generated.
func Result(scores Scores, responses domain.Responses) *domain.AssessmentResult {
	factors := make(map[string]domain.FactorAssessment, len(Factors))
	for _, factor := range Factors {
		score := scores.Factors[factor.Key]
		level := Level(score)
		factors[factor.Key] = domain.FactorAssessment{
			Name:        factor.Name,
			Score:       round(score, 1),
			Level:       level,
			Description: describeFactor(factor.Key, level),
		}
	}

	bias := make(map[string]float64, len(scores.Bias))
	for key, value := range scores.Bias {
		bias[key] = clamp01(round(value, 2))
	}

	return &domain.AssessmentResult{
		FactorScores:   scores.Factors,
		FacetScores:    scores.Facets,
		Factors:        factors,
		BiasIndicators: bias,
		Summary:        summary(factors),
		Translator:     translatorConfig(bias),
		Quality:        qualityMetrics(responses),
		Metadata: domain.ResultMetadata{
			AssessmentVersion: AssessmentVersion,
			ScoringAlgorithm:  ScoringAlgorithm,
		},
	}
}

// summary derives the human-readable personality summary from the formatted
// factor assessments.
func summary(factors map[string]domain.FactorAssessment) domain.Summary {
	var dominant []string
	var high []string
	for _, factor := range Factors {
		if factors[factor.Key].Level != "High" {
			continue
		}
		high = append(high, factor.Key)
		switch factor.Key {
		case FactorActivity:
			dominant = append(dominant, "Energetic/Excitable")
		case FactorTraining:
			dominant = append(dominant, "Trainable/Responsive")
		case FactorFearfulness:
			dominant = append(dominant, "Sensitive/Cautious")
		}
	}
	if len(dominant) > 2 {
		dominant = dominant[:2]
	}

	return domain.Summary{
		DominantTraits:     dominant,
		PrimaryType:        primaryType(high),
		KeyCharacteristics: keyCharacteristics(factors),
	}
}

func primaryType(high []string) string {
	has := func(key string) bool {
		for _, k := range high {
			if k == key {
				return true
			}
		}

		return false
	}

	switch {
	case has(FactorActivity) && has(FactorTraining):
		return "High-Energy Companion"
	case has(FactorActivity):
		return "Energetic Explorer"
	case has(FactorTraining):
		return "Eager Learner"
	case has(FactorFearfulness):
		return "Sensitive Soul"
	case len(high) == 0:
		return "Balanced Companion"
	default:
		return "Unique Personality"
	}
}

func keyCharacteristics(factors map[string]domain.FactorAssessment) []string {
	var out []string
	for _, factor := range Factors {
		level := factors[factor.Key].Level
		switch {
		case factor.Key == FactorActivity && level == "High":
			out = append(out, "Very energetic and playful")
		case factor.Key == FactorTraining && level == "High":
			out = append(out, "Highly trainable and responsive")
		case factor.Key == FactorAggressionPeople && level == "Low":
			out = append(out, "Generally friendly with people")
		case factor.Key == FactorFearfulness && level == "High":
			out = append(out, "Sensitive and needs gentle handling")
		}
	}
	if len(out) == 0 {
		out = append(out,
			"Well-balanced personality",
			"Adaptable to various situations")
	}
	if len(out) > 5 {
		out = out[:5]
	}

	return out
}

// translatorConfig derives the AI translator calibration from the formatted
// bias indicators.
func translatorConfig(bias map[string]float64) domain.TranslatorConfig {
	get := func(key string) float64 {
		if v, ok := bias[key]; ok {
			return v
		}

		return 0.5
	}
	excitability := get("excitability_bias")
	fearfulness := get("fearfulness_bias")
	trainability := get("trainability_bias")

	style := "balanced_adaptive"
	switch {
	case excitability > 0.7:
		style = "energetic_friendly"
	case fearfulness > 0.7:
		style = "calm_reassuring"
	case trainability > 0.7:
		style = "structured_positive"
	}

	energy := "moderate"
	if excitability > 0.6 {
		energy = "high"
	}
	authority := "gentle"
	if trainability > 0.6 {
		authority = "positive"
	}

	return domain.TranslatorConfig{
		CommunicationStyle: style,
		ToneAdjustments: domain.ToneAdjustments{
			BaseEnergyLevel:     energy,
			ExcitementThreshold: round(excitability, 2),
			CalmingNeeded:       fearfulness > 0.6,
			AuthorityResponse:   authority,
		},
		ResponseModifications: domain.ResponseModifications{
			IncreaseEnthusiasm:    round(excitability, 2),
			AddTrainingCues:       round(trainability, 2),
			ReduceFearLanguage:    round(1.0-fearfulness, 2),
			EnhancePlayReferences: round(excitability*0.8, 2),
		},
	}
}

// qualityMetrics flags low-information response patterns: very few distinct
// values suggest an extreme response bias.
func qualityMetrics(responses domain.Responses) domain.QualityMetrics {
	distinct := make(map[int]struct{}, len(responses))
	for _, v := range responses {
		distinct[v] = struct{}{}
	}

	consistency := "low"
	if len(distinct) >= 4 {
		consistency = "high"
	}

	return domain.QualityMetrics{
		ReliabilityScore:     baselineReliability,
		ResponseConsistency:  consistency,
		ExtremeResponseBias:  len(distinct) <= 2,
		AllQuestionsAnswered: len(responses) == domain.QuestionCount,
	}
}
