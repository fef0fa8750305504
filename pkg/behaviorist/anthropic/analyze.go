package anthropic

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"

	"dpq/pkg/behaviorist"
	"dpq/pkg/domain"
)

// analyzeSystemPrompt instructs the model to return the behavioral analysis
// as a fixed JSON structure; it is cached on the provider side.
const analyzeSystemPrompt = `You are an expert canine behaviorist and animal psychologist. Analyze the provided video frames of a dog and provide a comprehensive behavioral assessment.

Analysis Requirements:

Body Language Analysis: Examine posture, tail position, ear position, facial expressions, muscle tension, movement patterns, and overall body positioning. Note any subtle behavioral cues.

Behavior Description: Clearly describe what specific actions the dog is performing. Be precise about movements, interactions with environment/objects/people, and behavioral sequences.

Emotional State Assessment: Determine the dog's emotional condition based on observable behavioral indicators. Consider stress signals, comfort levels, arousal states, and overall well-being.

Behavioral Reasoning: Explain the likely motivations, instincts, or triggers behind the observed behavior. Consider evolutionary, physiological, and environmental factors.

Dog Quote: Based on the dog's behavior, body language, and emotional state, provide one sentence that captures what the dog would say if it could speak. This should reflect the dog's perspective, emotions, and intentions in that moment.

Emotion Classification Guidelines:

Select the most appropriate emotions from the following 24-emotion list:

EMOTIONS: Contentment, Despair, Love, Hate, Pride, Compassion, Contempt, Sadness, Guilt, Pleasure, Hurt, Happiness, Disappointment, Anxiety, Interest, Joy, Anger, Jealousy, Irritation, Stress, Disgust, Shame, Fear, Surprise

For each frame and the overall video, identify the primary (dominant) emotion and secondary (supporting) emotion that best represent the dog's emotional state. If only one emotion is clearly present, set secondary_emotion to null.

CRITICAL: You must return your analysis in EXACTLY this JSON format:

{
 "translation_results": {
  "body_language_analysis": "[Your detailed body language analysis here]",
  "behavior_description": "[Your behavior description here]",
  "emotional_state": "[Your emotional state assessment here]",
  "behavior_reason": "[Your behavioral reasoning here]",
  "dog_quote": "[One sentence representing what the dog would say if it could speak]"
 },
 "video_emotion_classification": {
  "primary_emotion": "[one of the 24 emotions]",
  "secondary_emotion": "[one of the 24 emotions]"
 },
 "frame_data": [
  {
   "timestamp": [float in seconds],
   "emotion_classification": {
    "primary_emotion": "[one of the 24 emotions]",
    "secondary_emotion": "[one of the 24 emotions]"
   }
  }
 ]
}

IMPORTANT:
- Use ONLY the 24 emotions listed above
- Primary emotion is the most dominant emotion observed
- Secondary emotion is the supporting/additional emotion (can be null if only one clear emotion)
- Return ONLY valid JSON - no additional text before or after
- Use exact field names as shown
- Include all required fields
- DO NOT wrap the response in markdown code blocks or backticks - return raw JSON only`

type wireEmotion struct {
	PrimaryEmotion   string  `json:"primary_emotion"`
	SecondaryEmotion *string `json:"secondary_emotion"`
}

func (w wireEmotion) toDomain() domain.EmotionClassification {
	out := domain.EmotionClassification{PrimaryEmotion: w.PrimaryEmotion}
	if w.SecondaryEmotion != nil {
		out.SecondaryEmotion = *w.SecondaryEmotion
	}

	return out
}

// AnalyzeFrames sends the frames, ordered by timestamp, to the model as
// base64 JPEG image blocks and decodes the structured behavioral analysis.
func (c *Client) AnalyzeFrames(ctx context.Context, frames []behaviorist.FrameImage) (*domain.VideoAnalysis, behaviorist.RateLimitStatus, error) {
	if len(frames) == 0 {
		return nil, behaviorist.RateLimitStatus{}, fmt.Errorf("no frames to analyze")
	}
	ordered := make([]behaviorist.FrameImage, len(frames))
	copy(ordered, frames)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Timestamp < ordered[j].Timestamp })

	content := make([]contentBlock, 0, len(ordered))
	for _, frame := range ordered {
		content = append(content, contentBlock{
			Type: "image",
			Source: &imageSource{
				Type:      "base64",
				MediaType: "image/jpeg",
				Data:      base64.StdEncoding.EncodeToString(frame.JPEG),
			},
		})
	}

	text, rl, err := c.complete(ctx, analyzeSystemPrompt, content)
	if err != nil {
		return nil, rl, err
	}

	payload, err := extractJSON(text)
	if err != nil {
		return nil, rl, err
	}
	var wire struct {
		TranslationResults struct {
			BodyLanguageAnalysis string `json:"body_language_analysis"`
			BehaviorDescription  string `json:"behavior_description"`
			EmotionalState       string `json:"emotional_state"`
			BehaviorReason       string `json:"behavior_reason"`
			DogQuote             string `json:"dog_quote"`
		} `json:"translation_results"`
		VideoEmotionClassification wireEmotion `json:"video_emotion_classification"`
		FrameData                  []struct {
			Timestamp             float64     `json:"timestamp"`
			EmotionClassification wireEmotion `json:"emotion_classification"`
		} `json:"frame_data"`
	}
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, rl, fmt.Errorf("could not decode analysis: %w", err)
	}

	out := &domain.VideoAnalysis{
		Translation: domain.TranslationResults{
			BodyLanguageAnalysis: wire.TranslationResults.BodyLanguageAnalysis,
			BehaviorDescription:  wire.TranslationResults.BehaviorDescription,
			EmotionalState:       wire.TranslationResults.EmotionalState,
			BehaviorReason:       wire.TranslationResults.BehaviorReason,
			DogQuote:             wire.TranslationResults.DogQuote,
		},
		VideoEmotion: wire.VideoEmotionClassification.toDomain(),
	}
	for _, frame := range wire.FrameData {
		out.Frames = append(out.Frames, domain.FrameEmotion{
			Timestamp: frame.Timestamp,
			Emotion:   frame.EmotionClassification.toDomain(),
		})
	}

	return out, rl, nil
}
