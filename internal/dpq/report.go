package dpq

import (
	"fmt"
	"strings"
	"time"
)

// factorNotes back the plain-text report: what each factor measures and how
// to read high/low scores.
var factorNotes = map[string]struct {
	Description string
	High        string
	Low         string
}{
	FactorFearfulness: {
		Description: "Measures anxiety, fear responses, and confidence levels",
		High:        "Dog shows high anxiety, fear of people/situations, low confidence",
		Low:         "Dog is confident, calm, and comfortable in various situations",
	},
	FactorAggressionPeople: {
		Description: "Measures aggressive tendencies toward humans",
		High:        "Dog shows protective/aggressive behaviors toward people",
		Low:         "Dog is friendly and non-aggressive toward people",
	},
	FactorActivity: {
		Description: "Measures energy levels, playfulness, and engagement",
		High:        "Dog is highly energetic, excitable, and active",
		Low:         "Dog is calm, low-energy, and less active",
	},
	FactorTraining: {
		Description: "Measures trainability and responsiveness to commands",
		High:        "Dog is highly trainable and responsive to commands",
		Low:         "Dog may be stubborn or less responsive to training",
	},
	FactorAggressionAnimal: {
		Description: "Measures aggressive tendencies toward other animals",
		High:        "Dog shows aggressive behaviors toward other animals",
		Low:         "Dog is friendly and non-aggressive toward other animals",
	},
}

// biasCategories group bias indicators for the report, in display order.
var biasCategories = []struct {
	Name       string
	Indicators []string
}{
	{"Communication Interpretation Biases",
		[]string{"fearfulness_bias", "aggression_bias", "excitability_bias", "trainability_bias"}},
	{"Social Interaction Biases",
		[]string{"social_confidence", "dog_sociability", "environmental_adaptability", "handling_tolerance"}},
	{"Behavioral Response Biases",
		[]string{"attention_seeking", "activity_level", "impulse_control"}},
	{"Protective/Territorial Biases",
		[]string{"territorial_tendency", "resource_guarding", "prey_drive"}},
}

func biasLevel(value float64) string {
	switch {
	case value >= 0.7:
		return "High"
	case value >= 0.4:
		return "Moderate"
	default:
		return "Low"
	}
}

func titleCase(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}

	return strings.Join(parts, " ")
}

// ruleRecommendations are the built-in, rule-based suggestions used by the
// offline report (the API path uses AI-generated recommendations instead).
func ruleRecommendations(scores Scores) []string {
	var recs []string
	bias := scores.Bias

	if bias["fearfulness_bias"] > 0.6 {
		recs = append(recs,
			"Use calm, reassuring tones and avoid sudden or loud vocalizations",
			"Interpret neutral behaviors as potentially anxiety-related")
	}
	if bias["aggression_bias"] > 0.5 {
		recs = append(recs,
			"Be cautious with territorial or protective interpretations",
			"Avoid aggressive or confrontational communication styles")
	}
	if bias["excitability_bias"] > 0.6 {
		recs = append(recs,
			"Expect high-energy responses and enthusiastic communications",
			"May need to moderate excitement levels in translations")
	}
	if bias["trainability_bias"] > 0.6 {
		recs = append(recs, "Dog likely responds well to clear commands and structure")
	} else {
		recs = append(recs, "May need more patience and alternative communication approaches")
	}
	if bias["social_confidence"] < 0.4 {
		recs = append(recs, "Approach social situations gradually and with extra care")
	}
	if bias["dog_sociability"] < 0.4 {
		recs = append(recs, "Be cautious around other dogs, may prefer human company")
	}
	if bias["activity_level"] > 0.6 {
		recs = append(recs, "Expect active, movement-oriented communications")
	} else {
		recs = append(recs, "Dog may prefer calm, low-energy interactions")
	}

	return recs
}

// Report renders a plain-text assessment report for the offline CLI path.
func Report(dogID string, scores Scores, answered int) string {
	rule := strings.Repeat("=", 80)
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nDOG PERSONALITY ASSESSMENT REPORT\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Dog ID: %s\n", dogID)
	fmt.Fprintf(&b, "Assessment Date: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Total Questions Completed: %d\n\n", answered)

	fmt.Fprintf(&b, "%s\nPERSONALITY FACTOR SCORES\n%s\n\n", rule, rule)
	for _, factor := range Factors {
		score := scores.Factors[factor.Key]
		level := scores.Profile[factor.Key]
		notes := factorNotes[factor.Key]

		fmt.Fprintf(&b, "%s:\n", factor.Name)
		fmt.Fprintf(&b, "  Score: %.2f/7.00 (%s)\n", score, level)
		fmt.Fprintf(&b, "  Description: %s\n", notes.Description)
		switch level {
		case "High":
			fmt.Fprintf(&b, "  Interpretation: %s\n", notes.High)
		case "Low":
			fmt.Fprintf(&b, "  Interpretation: %s\n", notes.Low)
		default:
			fmt.Fprintf(&b, "  Interpretation: Moderate levels of this trait\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\nPERSONALITY SUMMARY\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Dominant Traits: %s\n\n", scores.DominantTraitsLine())

	fmt.Fprintf(&b, "%s\nAI TRANSLATION BIAS INDICATORS\n%s\n\n", rule, rule)
	b.WriteString("These indicators help calibrate AI translation systems to your dog's personality:\n")
	for _, category := range biasCategories {
		fmt.Fprintf(&b, "\n%s:\n%s\n", category.Name, strings.Repeat("-", len(category.Name)))
		for _, key := range category.Indicators {
			value, ok := scores.Bias[key]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "  %s: %.3f (%s)\n", titleCase(key), value, biasLevel(value))
			fmt.Fprintf(&b, "    -> %s\n", BiasDescriptions[key])
		}
	}

	fmt.Fprintf(&b, "\n%s\nAI TRANSLATION RECOMMENDATIONS\n%s\n\n", rule, rule)
	b.WriteString("Based on this personality profile, AI translation systems should:\n\n")
	for _, rec := range ruleRecommendations(scores) {
		fmt.Fprintf(&b, "* %s\n", rec)
	}
	fmt.Fprintf(&b, "\n%s\n", rule)

	return b.String()
}
