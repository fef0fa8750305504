package storage

import (
	"context"

	"dpq/pkg/domain"
)

// VideoUpdates describes a set of optional fields that can be applied to an
// existing video during an update. Only non-nil fields will be updated.
type VideoUpdates struct {
	// Status is the new status to set for the video.
	Status domain.VideoStatus
	// Analysis, when provided, replaces the stored behavioral analysis payload.
	Analysis *domain.VideoAnalysis
	// DurationSeconds, when provided, records the probed video duration.
	DurationSeconds *float64
	// FramesExtracted, when provided, records the number of analyzed frames.
	FramesExtracted *int
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts guards Failed transitions the same way as for assessments.
	MaxAttempts int
}

// VideoStorage defines CRUD and query operations related to uploaded videos.
type VideoStorage interface {
	// StoreVideos inserts one or more videos and returns the stored rows as
	// they exist in the database (including generated fields).
	StoreVideos(ctx context.Context, videos ...domain.Video) ([]domain.Video, error)
	// UpdateVideoByID updates a single video identified by its ID and returns
	// the updated row, or nil when not found. Attempts is incremented by 1 and
	// updated_at is set automatically.
	UpdateVideoByID(ctx context.Context, ID domain.VideoID, updates VideoUpdates) (*domain.Video, error)
	// UserVideoByID fetches a video by its ID for the given user, excluding
	// soft-deleted records. Returns nil when not found.
	UserVideoByID(ctx context.Context, userID domain.UserID, ID domain.VideoID) (*domain.Video, error)
	// VideoByID fetches a video by its ID regardless of owner, excluding
	// soft-deleted records. Returns nil when not found. It is used by
	// background workers which have no user context.
	VideoByID(ctx context.Context, ID domain.VideoID) (*domain.Video, error)
	// AssessmentVideos returns all videos attached to an assessment, newest
	// first, excluding soft-deleted records.
	AssessmentVideos(ctx context.Context, assessmentID domain.AssessmentID) ([]domain.Video, error)
	// DeleteVideo performs a soft delete for the given video ID and user.
	// Returns the deleted row, or nil when no live video matched.
	DeleteVideo(ctx context.Context, userID domain.UserID, ID domain.VideoID) (*domain.Video, error)
}
