package worker

import (
	"context"
	"fmt"
	"log/slog"

	"dpq/internal/assessor"
	"dpq/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Start registers the assessment and video workers on a new River client and
// starts it. Both workers share one rate limiter because they draw from the
// same AI provider budget.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	assessor assessor.Assessor,
	maxWorkers int) (*river.Client[pgx.Tx], error) {
	limiter := NewRateLimiter()

	workers := river.NewWorkers()
	river.AddWorker(workers, NewAssessmentWorker(assessor, limiter))
	river.AddWorker(workers, NewVideoWorker(assessor, limiter))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
