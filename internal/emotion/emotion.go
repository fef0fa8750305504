// Package emotion maps classified emotions onto a 4-dimensional framework:
// positive/negative, extrinsic/intrinsic, stimulated/chill and
// unpredictable/predictable, each in [-1, 1].
package emotion

import (
	"math"

	"dpq/pkg/domain"
	"dpq/pkg/serrors"
)

// Weights for blending a primary/secondary emotion pair.
const (
	PrimaryWeight   = 0.7
	SecondaryWeight = 0.3
)

// coefficients is the fixed mapping from the 24-emotion vocabulary to the
// four dimensions.
var coefficients = map[string]domain.EmotionDimensions{
	"Contentment":    {PositiveNegative: 0.5, ExtrinsicIntrinsic: -0.7, StimulatedChill: -0.9, UnpredictablePredictable: -1.0},
	"Despair":        {PositiveNegative: -0.9, ExtrinsicIntrinsic: -0.8, StimulatedChill: -1.0, UnpredictablePredictable: -1.0},
	"Love":           {PositiveNegative: 0.9, ExtrinsicIntrinsic: -0.7, StimulatedChill: -0.2, UnpredictablePredictable: -1.0},
	"Hate":           {PositiveNegative: -0.9, ExtrinsicIntrinsic: -0.5, StimulatedChill: 0.8, UnpredictablePredictable: -0.9},
	"Pride":          {PositiveNegative: 0.4, ExtrinsicIntrinsic: -0.9, StimulatedChill: 0.3, UnpredictablePredictable: -0.9},
	"Compassion":     {PositiveNegative: 0.3, ExtrinsicIntrinsic: 0.3, StimulatedChill: -0.6, UnpredictablePredictable: -0.8},
	"Contempt":       {PositiveNegative: -0.4, ExtrinsicIntrinsic: -0.6, StimulatedChill: -0.1, UnpredictablePredictable: -0.8},
	"Sadness":        {PositiveNegative: -0.8, ExtrinsicIntrinsic: -0.5, StimulatedChill: -0.8, UnpredictablePredictable: -0.8},
	"Guilt":          {PositiveNegative: -0.5, ExtrinsicIntrinsic: -1.0, StimulatedChill: 0.1, UnpredictablePredictable: -0.7},
	"Pleasure":       {PositiveNegative: 0.6, ExtrinsicIntrinsic: 0.2, StimulatedChill: 0.4, UnpredictablePredictable: -0.7},
	"Hurt":           {PositiveNegative: -0.2, ExtrinsicIntrinsic: 0.9, StimulatedChill: -0.3, UnpredictablePredictable: -0.6},
	"Happiness":      {PositiveNegative: 0.7, ExtrinsicIntrinsic: -0.5, StimulatedChill: 0.2, UnpredictablePredictable: -0.5},
	"Disappointment": {PositiveNegative: -0.6, ExtrinsicIntrinsic: 0.7, StimulatedChill: -0.5, UnpredictablePredictable: 0.7},
	"Anxiety":        {PositiveNegative: -0.5, ExtrinsicIntrinsic: -0.2, StimulatedChill: 0.8, UnpredictablePredictable: 0.4},
	"Interest":       {PositiveNegative: 0.3, ExtrinsicIntrinsic: 0.7, StimulatedChill: 0.4, UnpredictablePredictable: 0.2},
	"Joy":            {PositiveNegative: 0.8, ExtrinsicIntrinsic: -0.4, StimulatedChill: 0.9, UnpredictablePredictable: 0.2},
	"Anger":          {PositiveNegative: -0.7, ExtrinsicIntrinsic: 0.6, StimulatedChill: 1.0, UnpredictablePredictable: 0.4},
	"Jealousy":       {PositiveNegative: -0.6, ExtrinsicIntrinsic: 0.4, StimulatedChill: 0.2, UnpredictablePredictable: 0.4},
	"Irritation":     {PositiveNegative: -0.1, ExtrinsicIntrinsic: 0.6, StimulatedChill: 0.3, UnpredictablePredictable: 0.5},
	"Stress":         {PositiveNegative: -0.3, ExtrinsicIntrinsic: -0.1, StimulatedChill: 0.7, UnpredictablePredictable: 0.3},
	"Disgust":        {PositiveNegative: -0.4, ExtrinsicIntrinsic: 0.7, StimulatedChill: 0.5, UnpredictablePredictable: 0.7},
	"Shame":          {PositiveNegative: -0.6, ExtrinsicIntrinsic: -0.8, StimulatedChill: -0.3, UnpredictablePredictable: 0.8},
	"Fear":           {PositiveNegative: -0.6, ExtrinsicIntrinsic: 0.6, StimulatedChill: 0.9, UnpredictablePredictable: 0.9},
	"Surprise":       {PositiveNegative: 0.0, ExtrinsicIntrinsic: 1.0, StimulatedChill: 1.0, UnpredictablePredictable: 1.0},
}

// Known reports whether the emotion name is part of the vocabulary.
func Known(emotion string) bool {
	_, ok := coefficients[emotion]

	return ok
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func blend(primary, secondary float64) float64 {
	return round2(primary*PrimaryWeight + secondary*SecondaryWeight)
}

// WeightedDimensions computes the blended dimensions for an emotion pair.
// With an empty secondary emotion the primary coefficients are returned as
// is. Unknown emotion names are rejected.
func WeightedDimensions(primary, secondary string) (domain.EmotionDimensions, error) {
	p, ok := coefficients[primary]
	if !ok {
		return domain.EmotionDimensions{}, serrors.With(serrors.ErrBadRequest, "unknown primary emotion: %q", primary)
	}
	if secondary == "" {
		return p, nil
	}
	s, ok := coefficients[secondary]
	if !ok {
		return domain.EmotionDimensions{}, serrors.With(serrors.ErrBadRequest, "unknown secondary emotion: %q", secondary)
	}

	return domain.EmotionDimensions{
		PositiveNegative:         blend(p.PositiveNegative, s.PositiveNegative),
		ExtrinsicIntrinsic:       blend(p.ExtrinsicIntrinsic, s.ExtrinsicIntrinsic),
		StimulatedChill:          blend(p.StimulatedChill, s.StimulatedChill),
		UnpredictablePredictable: blend(p.UnpredictablePredictable, s.UnpredictablePredictable),
	}, nil
}

// Annotate attaches dimensions to the video-level and per-frame emotion
// classifications of an analysis. A classification that fails to map is left
// without dimensions rather than failing the whole analysis; the first such
// error is returned for logging.
func Annotate(analysis *domain.VideoAnalysis) error {
	if analysis == nil {
		return nil
	}
	var firstErr error
	attach := func(c *domain.EmotionClassification) {
		if c.PrimaryEmotion == "" {
			return
		}
		dims, err := WeightedDimensions(c.PrimaryEmotion, c.SecondaryEmotion)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}

			return
		}
		c.Dimensions = &dims
	}

	attach(&analysis.VideoEmotion)
	for i := range analysis.Frames {
		attach(&analysis.Frames[i].Emotion)
	}

	return firstErr
}
