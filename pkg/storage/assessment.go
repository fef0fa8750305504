package storage

import (
	"context"
	"time"

	"dpq/pkg/domain"
)

// AssessmentUpdates describes a set of optional fields that can be applied to
// an existing assessment during an update. Only non-nil fields will be updated.
type AssessmentUpdates struct {
	// Status is the new status to set for the assessment.
	Status domain.AssessmentStatus
	// Result, when provided, replaces the stored scored result payload.
	Result *domain.AssessmentResult
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed if the current attempts after increment would
	// exceed this threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// UserAssessments groups a page of assessments returned for a user together
// with an optional NextCursor used for pagination.
type UserAssessments struct {
	// Assessments contains the current page of assessment records.
	Assessments []domain.Assessment
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// AssessmentStorage defines CRUD and query operations related to assessments.
// Implementations should ensure idempotency and proper handling of
// soft-deletes where applicable.
type AssessmentStorage interface {
	// StoreAssessments inserts one or more assessments and returns the stored
	// rows as they exist in the database (including generated fields).
	StoreAssessments(ctx context.Context, assessments ...domain.Assessment) ([]domain.Assessment, error)
	// UpdateAssessmentByID updates a single assessment identified by its ID and
	// returns the updated row, or nil when not found.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Status is Failed and MaxAttempts > 0, status is only set to Failed
	//   when the attempts after increment would exceed MaxAttempts; otherwise
	//   status remains unchanged (i.e., stays Pending).
	UpdateAssessmentByID(ctx context.Context, ID domain.AssessmentID, updates AssessmentUpdates) (*domain.Assessment, error)
	// DeleteAssessment performs a soft delete for the given assessment ID and
	// user ID and returns the deleted assessment, or nil if it was not found.
	DeleteAssessment(ctx context.Context, userID domain.UserID, ID domain.AssessmentID) (*domain.Assessment, error)
	// UserAssessments returns a page of assessments for a user created before
	// the optional cursor time, limited by the given limit. If status is
	// non-empty, results are filtered to records with the given status.
	UserAssessments(ctx context.Context,
		userID domain.UserID,
		status domain.AssessmentStatus,
		cursor time.Time,
		limit uint) (UserAssessments, error)
	// UserAssessmentByID fetches an assessment by its ID for the given user,
	// excluding soft-deleted records. Returns nil when not found.
	UserAssessmentByID(ctx context.Context, userID domain.UserID, ID domain.AssessmentID) (*domain.Assessment, error)
	// AssessmentByID fetches an assessment by its ID regardless of owner,
	// excluding soft-deleted records. Returns nil when not found. It is used by
	// background workers which have no user context.
	AssessmentByID(ctx context.Context, ID domain.AssessmentID) (*domain.Assessment, error)
}
