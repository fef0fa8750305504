package assessor

import (
	"context"
	"io"

	"dpq/pkg/behaviorist"
	"dpq/pkg/domain"
)

// VideoUpload carries the metadata and content of an uploaded video file.
type VideoUpload struct {
	// Filename is the client-provided file name, used for extension checks.
	Filename string
	// ContentType is the client-provided MIME type.
	ContentType string
	// Size is the declared upload size in bytes.
	Size int64
	// Content streams the file body.
	Content io.Reader
}

//go:generate mockgen -package mockassessor -source=interface.go -destination=mock/mockassessor.go *
type Assessor interface {
	Submit(ctx context.Context,
		userID domain.UserID,
		dog domain.Dog,
		responses domain.Responses,
		includeRecommendations bool) (*domain.Assessment, error)
	UserAssessments(ctx context.Context,
		userID domain.UserID,
		status domain.AssessmentStatus,
		cursor string,
		limit uint) ([]domain.Assessment, string, error)
	Get(ctx context.Context, userID domain.UserID, assessmentID domain.AssessmentID) (*domain.Assessment, error)
	Result(ctx context.Context, userID domain.UserID, assessmentID domain.AssessmentID) (*domain.AssessmentResult, error)
	Delete(ctx context.Context, userID domain.UserID, assessmentID domain.AssessmentID) error
	AttachVideo(ctx context.Context,
		userID domain.UserID,
		assessmentID domain.AssessmentID,
		upload VideoUpload) (*domain.Video, error)
	Video(ctx context.Context, userID domain.UserID, videoID domain.VideoID) (*domain.Video, error)
	AssessmentVideos(ctx context.Context,
		userID domain.UserID,
		assessmentID domain.AssessmentID) ([]domain.Video, error)
	DeleteVideo(ctx context.Context, userID domain.UserID, videoID domain.VideoID) error

	// Process scores a pending assessment. It is called by the background
	// worker and returns the AI provider's rate-limit status alongside any
	// error so the worker can throttle itself.
	Process(ctx context.Context, assessmentID domain.AssessmentID) (behaviorist.RateLimitStatus, error)
	// ProcessVideo runs the frame extraction and behavioral analysis for a
	// pending video upload.
	ProcessVideo(ctx context.Context, videoID domain.VideoID) (behaviorist.RateLimitStatus, error)
}
