package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AssessmentID uniquely identifies a personality assessment.
// It wraps uuid.UUID to provide type safety at the domain layer.
type AssessmentID uuid.UUID

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// VideoID uniquely identifies an uploaded video.
type VideoID uuid.UUID

func (id AssessmentID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in canonical UUID form for JSON responses.
func (id AssessmentID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *AssessmentID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}

func (id UserID) String() string { return uuid.UUID(id).String() }

func (id UserID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *UserID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}

func (id VideoID) String() string { return uuid.UUID(id).String() }

func (id VideoID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *VideoID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}

// AssessmentStatus represents the lifecycle state of an assessment.
type AssessmentStatus string

const (
	// AssessmentStatusPending indicates the assessment has been stored but not scored yet.
	AssessmentStatusPending AssessmentStatus = "PENDING"
	// AssessmentStatusCompleted indicates scoring finished and a result is available.
	AssessmentStatusCompleted AssessmentStatus = "COMPLETED"
	// AssessmentStatusFailed indicates scoring ended with an error; see LastError and Attempts.
	AssessmentStatusFailed AssessmentStatus = "FAILED"
)

// Questionnaire constants for the DPQ short form.
const (
	// QuestionCount is the number of items in the questionnaire.
	QuestionCount = 45
	// ScaleMin and ScaleMax bound the 7-point agreement scale.
	ScaleMin = 1
	ScaleMax = 7
)

// Validation errors for assessment submissions.
var (
	ErrDogNameRequired = errors.New("dog name is required")
	ErrResponseCount   = errors.New("exactly 45 responses are required")
	ErrInvalidQuestion = errors.New("question number out of range")
	ErrInvalidResponse = errors.New("response value out of range")
)

// Responses maps question numbers (1-45) to 7-point scale answers (1-7).
type Responses map[int]int

// Validate checks that the response set is complete and every entry is in range.
func (r Responses) Validate() error {
	if len(r) != QuestionCount {
		return fmt.Errorf("%w: got %d", ErrResponseCount, len(r))
	}
	for q, v := range r {
		if q < 1 || q > QuestionCount {
			return fmt.Errorf("%w: %d", ErrInvalidQuestion, q)
		}
		if v < ScaleMin || v > ScaleMax {
			return fmt.Errorf("%w: %d for question %d", ErrInvalidResponse, v, q)
		}
	}

	return nil
}

// FactorAssessment is one personality factor of the scored result, formatted
// for clients: a score rounded to one decimal, a five-step level and a
// level-specific description.
type FactorAssessment struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
}

// Summary is the human-readable personality summary derived from the factor
// assessments.
type Summary struct {
	DominantTraits     []string `json:"dominantTraits"`
	PrimaryType        string   `json:"primaryType"`
	KeyCharacteristics []string `json:"keyCharacteristics"`
}

// ToneAdjustments tune how an AI translator should address the dog.
type ToneAdjustments struct {
	BaseEnergyLevel     string  `json:"baseEnergyLevel"`
	ExcitementThreshold float64 `json:"excitementThreshold"`
	CalmingNeeded       bool    `json:"calmingNeeded"`
	AuthorityResponse   string  `json:"authorityResponse"`
}

// ResponseModifications scale how strongly the translator rewrites output.
type ResponseModifications struct {
	IncreaseEnthusiasm    float64 `json:"increaseEnthusiasm"`
	AddTrainingCues       float64 `json:"addTrainingCues"`
	ReduceFearLanguage    float64 `json:"reduceFearLanguage"`
	EnhancePlayReferences float64 `json:"enhancePlayReferences"`
}

// TranslatorConfig calibrates AI translation to the dog's personality.
type TranslatorConfig struct {
	CommunicationStyle    string                `json:"communicationStyle"`
	ToneAdjustments       ToneAdjustments       `json:"toneAdjustments"`
	ResponseModifications ResponseModifications `json:"responseModifications"`
}

// Recommendations are the categorized care and training suggestions for a dog.
type Recommendations struct {
	TrainingTips    []string `json:"trainingTips"`
	ExerciseNeeds   []string `json:"exerciseNeeds"`
	Socialization   []string `json:"socialization"`
	DailyCare       []string `json:"dailyCare"`
	AICommunication []string `json:"aiCommunication"`
}

// QualityMetrics summarize how trustworthy the raw responses look.
type QualityMetrics struct {
	ReliabilityScore     float64 `json:"reliabilityScore"`
	ResponseConsistency  string  `json:"responseConsistency"`
	ExtremeResponseBias  bool    `json:"extremeResponseBias"`
	AllQuestionsAnswered bool    `json:"allQuestionsAnswered"`
}

// ResultMetadata identifies the questionnaire and scoring algorithm versions
// used to produce a result.
type ResultMetadata struct {
	AssessmentVersion string `json:"assessmentVersion"`
	ScoringAlgorithm  string `json:"scoringAlgorithm"`
}

// AssessmentResult is the complete scored outcome of an assessment as stored
// and returned to clients. Map keys for factors and facets are stable
// snake_case identifiers (e.g. "fearfulness", "fear_of_people").
type AssessmentResult struct {
	FactorScores    map[string]float64          `json:"factorScores"`
	FacetScores     map[string]float64          `json:"facetScores"`
	Factors         map[string]FactorAssessment `json:"factors"`
	BiasIndicators  map[string]float64          `json:"biasIndicators"`
	Summary         Summary                     `json:"summary"`
	Translator      TranslatorConfig            `json:"translatorConfig"`
	Recommendations *Recommendations            `json:"recommendations,omitempty"`
	Quality         QualityMetrics              `json:"qualityMetrics"`
	Metadata        ResultMetadata              `json:"metadata"`
}

// Assessment represents a single questionnaire submission and its current state.
type Assessment struct {
	// ID is the unique identifier of the assessment.
	ID AssessmentID `json:"id"`
	// UserID is the identifier of the user who submitted the assessment.
	UserID UserID `json:"userId"`

	// Dog is the dog being assessed.
	Dog Dog `json:"dog"`
	// Responses are the raw 45 questionnaire answers.
	Responses Responses `json:"responses"`
	// IncludeRecommendations controls whether AI recommendations are generated.
	IncludeRecommendations bool `json:"includeRecommendations"`

	// Status is the current lifecycle state of the assessment.
	Status AssessmentStatus `json:"status"`
	// Result is the scored outcome; nil until scoring completes.
	Result *AssessmentResult `json:"result,omitempty"`

	// Attempts is the number of times the system has tried to process this assessment.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent processing error message, if any.
	LastError string `json:"-"`

	// CreatedAt is when the assessment was submitted.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the assessment was last updated (status or result change).
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the assessment was soft-deleted; zero value means live.
	DeletedAt time.Time `json:"-"`
}
