package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"dpq/internal/assessor"
	"dpq/pkg/domain"
	"dpq/pkg/logger"
	"dpq/pkg/serrors"
)

// AssessmentWorker is a River worker that scores submitted questionnaires
// using the provided assessor.Assessor implementation. Scoring itself is pure
// arithmetic; the rate limiter only matters for submissions that request AI
// recommendations, which share the provider budget with video analysis jobs
// through the limiter passed at construction.
//
// Error handling: a conflict from the assessor cancels the job (the
// assessment is deleted or already scored). A rate-limited error snoozes the
// job until the provider window resets. Other errors are logged and returned
// so River retries.
type AssessmentWorker struct {
	river.WorkerDefaults[assessor.AssessmentJobArgs]

	assessor assessor.Assessor
	limiter  *RateLimiter
}

// NewAssessmentWorker constructs an AssessmentWorker sharing the given rate
// limiter with the other provider-bound workers.
func NewAssessmentWorker(assessor assessor.Assessor, limiter *RateLimiter) *AssessmentWorker {
	return &AssessmentWorker{
		assessor: assessor,
		limiter:  limiter,
	}
}

// Work executes a single scoring job while respecting provider rate limits.
func (w *AssessmentWorker) Work(ctx context.Context, job *river.Job[assessor.AssessmentJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("assessmentID", job.Args.AssessmentID.String()))

	if err := w.limiter.reserve(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	rlStatus, err := w.assessor.Process(ctx, domain.AssessmentID(job.Args.AssessmentID))
	w.limiter.finished(ctx, rlStatus)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error scoring assessment", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			dur := time.Until(rlStatus.ResetAt)
			if dur < 0 {
				dur = 0
			}

			return river.JobSnooze(dur) //nolint: wrapcheck
		}

		return fmt.Errorf("could not score assessment: %w", err)
	}

	logger.Info(ctx, "assessment scored successfully")

	return nil
}
