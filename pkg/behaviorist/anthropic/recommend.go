package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dpq/pkg/behaviorist"
	"dpq/pkg/domain"
)

// recommendSystemPrompt frames the recommendation request; it is cached on
// the provider side.
const recommendSystemPrompt = `You are a professional dog behaviorist and trainer specializing in personalized dog care recommendations.

Based on Dog Personality Questionnaire (DPQ) results, provide specific, actionable recommendations. Always format your response as valid JSON with exactly these keys: training_tips, exercise_needs, socialization, daily_care, ai_communication.

Make recommendations specific to the individual dog's personality profile. Avoid generic advice.`

// keyIndicators are the bias indicators surfaced in the prompt, in order.
var keyIndicators = []string{
	"fearfulness_bias", "aggression_bias", "excitability_bias",
	"trainability_bias", "social_confidence", "activity_level",
}

func threeLevel(v, high, moderate float64) string {
	switch {
	case v >= high:
		return "High"
	case v >= moderate:
		return "Moderate"
	default:
		return "Low"
	}
}

func titleWords(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}

	return strings.Join(parts, " ")
}

// recommendPrompt renders the personality profile into the user prompt.
func recommendPrompt(profile behaviorist.Profile) string {
	name := profile.DogName
	if name == "" {
		name = "this dog"
	}
	breed := profile.Breed
	if breed == "" {
		breed = "Unknown breed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional dog behaviorist and trainer. Based on the Dog Personality Questionnaire (DPQ) results below, provide personalized recommendations for %s, a %s.\n\n", name, breed)
	b.WriteString("PERSONALITY ASSESSMENT RESULTS:\n\nDog Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n- Breed: %s\n", name, breed)
	if profile.Age != "" {
		fmt.Fprintf(&b, "- Age: %s\n", profile.Age)
	}

	b.WriteString("\nPersonality Factor Scores (1-7 scale, where 4 is neutral):\n")
	for factor, score := range profile.FactorScores {
		fmt.Fprintf(&b, "- %s: %.1f (%s)\n", factor, score, threeLevel(score, 5.5, 4.5))
	}

	b.WriteString("\nKey Behavioral Indicators (0-1 scale):\n")
	for _, indicator := range keyIndicators {
		value, ok := profile.BiasIndicators[indicator]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %.2f (%s)\n", titleWords(indicator), value, threeLevel(value, 0.7, 0.4))
	}

	b.WriteString(`
Please provide specific, actionable recommendations in the following categories. Format your response as JSON with these exact keys: training_tips, exercise_needs, socialization, daily_care, ai_communication. Each key maps to a list of strings.

Make recommendations specific to this dog's personality profile. Avoid generic advice - focus on what makes this dog unique based on the DPQ results.`)

	return b.String()
}

// Recommend generates categorized care recommendations for the profile. The
// model's JSON answer is decoded into domain.Recommendations; a missing
// category comes back empty rather than failing.
func (c *Client) Recommend(ctx context.Context, profile behaviorist.Profile) (*domain.Recommendations, behaviorist.RateLimitStatus, error) {
	text, rl, err := c.complete(ctx, recommendSystemPrompt, []contentBlock{
		{Type: "text", Text: recommendPrompt(profile)},
	})
	if err != nil {
		return nil, rl, err
	}

	payload, err := extractJSON(text)
	if err != nil {
		return nil, rl, err
	}
	var wire struct {
		TrainingTips    []string `json:"training_tips"`
		ExerciseNeeds   []string `json:"exercise_needs"`
		Socialization   []string `json:"socialization"`
		DailyCare       []string `json:"daily_care"`
		AICommunication []string `json:"ai_communication"`
	}
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, rl, fmt.Errorf("could not decode recommendations: %w", err)
	}

	return &domain.Recommendations{
		TrainingTips:    wire.TrainingTips,
		ExerciseNeeds:   wire.ExerciseNeeds,
		Socialization:   wire.Socialization,
		DailyCare:       wire.DailyCare,
		AICommunication: wire.AICommunication,
	}, rl, nil
}
