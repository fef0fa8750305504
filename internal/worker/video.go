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

// VideoWorker is a River worker that analyzes uploaded videos using the
// provided assessor.Assessor implementation. Every job sends extracted frames
// to the AI provider, so the shared rate limiter is reserved for the whole
// analysis. Error mapping follows the same rules as AssessmentWorker.
type VideoWorker struct {
	river.WorkerDefaults[assessor.VideoJobArgs]

	assessor assessor.Assessor
	limiter  *RateLimiter
}

// NewVideoWorker constructs a VideoWorker sharing the given rate limiter with
// the other provider-bound workers.
func NewVideoWorker(assessor assessor.Assessor, limiter *RateLimiter) *VideoWorker {
	return &VideoWorker{
		assessor: assessor,
		limiter:  limiter,
	}
}

// Work executes a single video analysis job while respecting provider rate
// limits.
func (w *VideoWorker) Work(ctx context.Context, job *river.Job[assessor.VideoJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("videoID", job.Args.VideoID.String()))

	if err := w.limiter.reserve(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	rlStatus, err := w.assessor.ProcessVideo(ctx, domain.VideoID(job.Args.VideoID))
	w.limiter.finished(ctx, rlStatus)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error analyzing video", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			dur := time.Until(rlStatus.ResetAt)
			if dur < 0 {
				dur = 0
			}

			return river.JobSnooze(dur) //nolint: wrapcheck
		}

		return fmt.Errorf("could not analyze video: %w", err)
	}

	logger.Info(ctx, "video analyzed successfully")

	return nil
}
