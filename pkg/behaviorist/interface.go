// Package behaviorist defines interfaces and data types used to obtain
// AI-generated care recommendations and video behavior analyses from a
// backing model provider.
package behaviorist

import (
	"context"
	"time"

	"dpq/pkg/domain"
)

// RateLimitStatus describes the current API rate-limit status returned by the
// underlying model provider.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Profile is the personality context handed to the model when generating
// recommendations.
type Profile struct {
	DogName string
	Breed   string
	Age     string
	// FactorScores are the five factor means on the 1-7 scale.
	FactorScores map[string]float64
	// BiasIndicators are the 0-1 calibration signals.
	BiasIndicators map[string]float64
}

// FrameImage is one extracted video frame to analyze, JPEG-encoded.
type FrameImage struct {
	Timestamp float64
	JPEG      []byte
}

// Client is the abstraction for AI behaviorists. Implementations generate
// personality-specific recommendations and analyze video frames.
//
//go:generate mockgen -package mockbehaviorist -source=interface.go -destination=mock/mockbehaviorist.go *
type Client interface {
	// Recommend generates categorized care recommendations for the profile,
	// returning them plus the current rate-limit status.
	Recommend(ctx context.Context, profile Profile) (*domain.Recommendations, RateLimitStatus, error)
	// AnalyzeFrames runs a behavioral analysis over ordered video frames,
	// returning the analysis plus the current rate-limit status.
	AnalyzeFrames(ctx context.Context, frames []FrameImage) (*domain.VideoAnalysis, RateLimitStatus, error)
}

// FallbackRecommendations are served when the model provider is unavailable
// or returns an unusable response.
func FallbackRecommendations() *domain.Recommendations {
	return &domain.Recommendations{
		TrainingTips: []string{
			"API temporarily unavailable - using basic recommendations",
			"Consult with a professional dog trainer for personalized advice",
		},
		ExerciseNeeds: []string{
			"Provide regular daily exercise appropriate for breed and age",
			"Include both physical and mental stimulation",
		},
		Socialization: []string{
			"Gradual exposure to new experiences",
			"Positive reinforcement for calm behavior",
		},
		DailyCare: []string{
			"Maintain consistent daily routines",
			"Monitor for signs of stress or anxiety",
		},
		AICommunication: []string{
			"Use calm, consistent communication patterns",
			"Adapt based on individual dog responses",
		},
	}
}
