package domain

import "time"

// VideoStatus represents the lifecycle state of a video analysis.
type VideoStatus string

const (
	// VideoStatusPending indicates the upload is stored but not analyzed yet.
	VideoStatusPending VideoStatus = "PENDING"
	// VideoStatusCompleted indicates frame analysis finished successfully.
	VideoStatusCompleted VideoStatus = "COMPLETED"
	// VideoStatusFailed indicates analysis ended with an error.
	VideoStatusFailed VideoStatus = "FAILED"
)

// TranslationResults is the narrative part of a behavioral video analysis.
type TranslationResults struct {
	BodyLanguageAnalysis string `json:"bodyLanguageAnalysis"`
	BehaviorDescription  string `json:"behaviorDescription"`
	EmotionalState       string `json:"emotionalState"`
	BehaviorReason       string `json:"behaviorReason"`
	DogQuote             string `json:"dogQuote"`
}

// EmotionDimensions place an emotion pair in the 4-dimensional framework.
// All values are in [-1, 1].
type EmotionDimensions struct {
	PositiveNegative         float64 `json:"positiveNegative"`
	ExtrinsicIntrinsic       float64 `json:"extrinsicIntrinsic"`
	StimulatedChill          float64 `json:"stimulatedChill"`
	UnpredictablePredictable float64 `json:"unpredictablePredictable"`
}

// EmotionClassification is a primary/secondary emotion pair chosen from the
// fixed 24-emotion vocabulary. Secondary is empty when only one emotion is
// clearly present.
type EmotionClassification struct {
	PrimaryEmotion   string             `json:"primaryEmotion"`
	SecondaryEmotion string             `json:"secondaryEmotion,omitempty"`
	Dimensions       *EmotionDimensions `json:"emotionDimensions,omitempty"`
}

// FrameEmotion is the per-frame classification keyed by the frame's timestamp
// within the video.
type FrameEmotion struct {
	Timestamp float64               `json:"timestamp"`
	Emotion   EmotionClassification `json:"emotionClassification"`
}

// VideoAnalysis is the complete behavioral analysis of an uploaded video.
type VideoAnalysis struct {
	Translation  TranslationResults    `json:"translationResults"`
	VideoEmotion EmotionClassification `json:"videoEmotionClassification"`
	Frames       []FrameEmotion        `json:"frameData"`
}

// Video represents an uploaded video attached to an assessment and the state
// of its behavioral analysis.
type Video struct {
	// ID is the unique identifier of the video.
	ID VideoID `json:"id"`
	// UserID is the identifier of the uploading user.
	UserID UserID `json:"userId"`
	// AssessmentID is the assessment this video belongs to.
	AssessmentID AssessmentID `json:"assessmentId"`

	// Filename is the client-provided file name.
	Filename string `json:"filename"`
	// ContentType is the client-provided MIME type.
	ContentType string `json:"contentType"`
	// SizeBytes is the stored file size.
	SizeBytes int64 `json:"sizeBytes"`
	// Path is the server-side location of the stored file.
	Path string `json:"-"`

	// Status is the current lifecycle state of the analysis.
	Status VideoStatus `json:"status"`
	// Analysis is the behavioral analysis; nil until processing completes.
	Analysis *VideoAnalysis `json:"analysis,omitempty"`
	// DurationSeconds is the probed video duration, zero when unknown.
	DurationSeconds float64 `json:"durationSeconds,omitempty"`
	// FramesExtracted is how many scene-change frames were analyzed.
	FramesExtracted int `json:"framesExtracted,omitempty"`

	// Attempts is the number of times the system has tried to process this video.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent processing error message, if any.
	LastError string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}
