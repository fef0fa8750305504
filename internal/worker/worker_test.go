package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dpq/internal/assessor"
	mockassessor "dpq/internal/assessor/mock"
	"dpq/internal/worker"
	"dpq/pkg/behaviorist"
	"dpq/pkg/domain"
	"dpq/pkg/logger"
	"dpq/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeAssessmentJob(id int64, assessmentID domain.AssessmentID) *river.Job[assessor.AssessmentJobArgs] {
	return &river.Job[assessor.AssessmentJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   assessor.AssessmentJobArgs{AssessmentID: uuid.UUID(assessmentID)},
	}
}

func makeVideoJob(id int64, videoID domain.VideoID) *river.Job[assessor.VideoJobArgs] {
	return &river.Job[assessor.VideoJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   assessor.VideoJobArgs{VideoID: uuid.UUID(videoID)},
	}
}

func TestAssessmentWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockassessor.NewMockAssessor(ctrl)
	w := worker.NewAssessmentWorker(mock, worker.NewRateLimiter())

	id := domain.AssessmentID(uuid.New())

	// Return some RL status that should be adopted on first success
	rl := behaviorist.RateLimitStatus{Limit: 50, Remaining: 49, ResetAt: time.Now().Add(time.Minute)}
	mock.EXPECT().Process(gomock.Any(), id).Return(rl, nil)

	require.NoError(t, w.Work(context.Background(), makeAssessmentJob(1, id)))
}

func TestAssessmentWorker_Work_ConflictCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockassessor.NewMockAssessor(ctrl)
	w := worker.NewAssessmentWorker(mock, worker.NewRateLimiter())

	id := domain.AssessmentID(uuid.New())

	rl := behaviorist.RateLimitStatus{Limit: 50, Remaining: 50, ResetAt: time.Now().Add(time.Minute)}
	mock.EXPECT().Process(gomock.Any(), id).Return(rl, serrors.With(serrors.ErrConflict, "already scored"))

	err := w.Work(context.Background(), makeAssessmentJob(2, id))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestAssessmentWorker_Work_RateLimitedSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockassessor.NewMockAssessor(ctrl)
	w := worker.NewAssessmentWorker(mock, worker.NewRateLimiter())

	id := domain.AssessmentID(uuid.New())

	resetAt := time.Now().Add(1500 * time.Millisecond)
	rl := behaviorist.RateLimitStatus{Limit: 50, Remaining: 0, ResetAt: resetAt}
	mock.EXPECT().Process(gomock.Any(), id).Return(rl, serrors.With(serrors.ErrRateLimited, "provider rl"))

	err := w.Work(context.Background(), makeAssessmentJob(3, id))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	// Duration should be around time.Until(resetAt)
	require.GreaterOrEqual(t, snoozeErr.Duration, 1200*time.Millisecond)
	require.LessOrEqual(t, snoozeErr.Duration, 2*time.Second)
}

func TestAssessmentWorker_Work_GenericErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockassessor.NewMockAssessor(ctrl)
	w := worker.NewAssessmentWorker(mock, worker.NewRateLimiter())

	id := domain.AssessmentID(uuid.New())

	rl := behaviorist.RateLimitStatus{Limit: 50, Remaining: 50, ResetAt: time.Now().Add(time.Minute)}
	processErr := errors.New("boom")
	mock.EXPECT().Process(gomock.Any(), id).Return(rl, processErr)

	err := w.Work(context.Background(), makeAssessmentJob(4, id))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}

func TestVideoWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockassessor.NewMockAssessor(ctrl)
	w := worker.NewVideoWorker(mock, worker.NewRateLimiter())

	id := domain.VideoID(uuid.New())

	rl := behaviorist.RateLimitStatus{Limit: 50, Remaining: 49, ResetAt: time.Now().Add(time.Minute)}
	mock.EXPECT().ProcessVideo(gomock.Any(), id).Return(rl, nil)

	require.NoError(t, w.Work(context.Background(), makeVideoJob(5, id)))
}

func TestVideoWorker_Work_ConflictCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockassessor.NewMockAssessor(ctrl)
	w := worker.NewVideoWorker(mock, worker.NewRateLimiter())

	id := domain.VideoID(uuid.New())

	rl := behaviorist.RateLimitStatus{Limit: 50, Remaining: 50, ResetAt: time.Now().Add(time.Minute)}
	mock.EXPECT().ProcessVideo(gomock.Any(), id).Return(rl, serrors.With(serrors.ErrConflict, "video deleted"))

	err := w.Work(context.Background(), makeVideoJob(6, id))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestCooperativeRateLimit_BlocksSecondUntilFirstFinishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockassessor.NewMockAssessor(ctrl)
	w := worker.NewAssessmentWorker(mock, worker.NewRateLimiter())

	firstID := domain.AssessmentID(uuid.New())
	secondID := domain.AssessmentID(uuid.New())

	firstProcessStart := make(chan struct{})
	allowFirstToFinish := make(chan struct{})
	secondProcessStarted := make(chan struct{})

	// First Process blocks until we allow it to finish.
	mock.EXPECT().Process(gomock.Any(), firstID).
		DoAndReturn(func(ctx context.Context, _ domain.AssessmentID) (behaviorist.RateLimitStatus, error) {
			close(firstProcessStart)
			<-allowFirstToFinish

			return behaviorist.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, nil
		})
	// Second Process should not be called until the first finishes and wakes it.
	mock.EXPECT().Process(gomock.Any(), secondID).
		DoAndReturn(func(ctx context.Context, _ domain.AssessmentID) (behaviorist.RateLimitStatus, error) {
			close(secondProcessStarted)

			return behaviorist.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// Start first work which should proceed immediately.
	go func() { _ = w.Work(ctx, makeAssessmentJob(10, firstID)) }()
	// Wait until first Process has started.
	<-firstProcessStart

	// Start second work, which should block before Process due to RL.
	go func() { _ = w.Work(ctx, makeAssessmentJob(11, secondID)) }()

	// Ensure second Process does NOT start within 100ms while first is still running.
	select {
	case <-secondProcessStarted:
		t.Fatal("second process started before first finished; RL not enforced")
	case <-time.After(100 * time.Millisecond):
		// expected: still blocked
	}

	// Now let the first Process finish; this should wake the waiter and allow second to start.
	close(allowFirstToFinish)

	select {
	case <-secondProcessStarted:
		// success
	case <-time.After(2 * time.Second):
		t.Fatal("second process did not start after first finished")
	}
}

func TestCooperativeRateLimit_SharedAcrossWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockassessor.NewMockAssessor(ctrl)
	limiter := worker.NewRateLimiter()
	aw := worker.NewAssessmentWorker(mock, limiter)
	vw := worker.NewVideoWorker(mock, limiter)

	assessmentID := domain.AssessmentID(uuid.New())
	videoID := domain.VideoID(uuid.New())

	processStarted := make(chan struct{})
	allowProcessToFinish := make(chan struct{})
	videoStarted := make(chan struct{})

	// A single budget slot is shared, so the video job must wait for the
	// assessment job to finish.
	mock.EXPECT().Process(gomock.Any(), assessmentID).
		DoAndReturn(func(ctx context.Context, _ domain.AssessmentID) (behaviorist.RateLimitStatus, error) {
			close(processStarted)
			<-allowProcessToFinish

			return behaviorist.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, nil
		})
	mock.EXPECT().ProcessVideo(gomock.Any(), videoID).
		DoAndReturn(func(ctx context.Context, _ domain.VideoID) (behaviorist.RateLimitStatus, error) {
			close(videoStarted)

			return behaviorist.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() { _ = aw.Work(ctx, makeAssessmentJob(12, assessmentID)) }()
	<-processStarted

	go func() { _ = vw.Work(ctx, makeVideoJob(13, videoID)) }()

	select {
	case <-videoStarted:
		t.Fatal("video analysis started while assessment job held the budget")
	case <-time.After(100 * time.Millisecond):
		// expected: still blocked
	}

	close(allowProcessToFinish)

	select {
	case <-videoStarted:
		// success
	case <-time.After(2 * time.Second):
		t.Fatal("video analysis did not start after assessment job finished")
	}
}

func TestRateLimit_AllowsUpToRemainingConcurrent_ThenBlocksExtra(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockassessor.NewMockAssessor(ctrl)
	w := worker.NewAssessmentWorker(mock, worker.NewRateLimiter())

	primeID := domain.AssessmentID(uuid.New())
	bID := domain.AssessmentID(uuid.New())
	cID := domain.AssessmentID(uuid.New())
	dID := domain.AssessmentID(uuid.New())

	// Prime the limiter with RL Remaining=2 so two in-flight can start immediately.
	rlPrime := behaviorist.RateLimitStatus{Limit: 2, Remaining: 2, ResetAt: time.Now().Add(time.Minute)}
	mock.EXPECT().Process(gomock.Any(), primeID).Return(rlPrime, nil)

	require.NoError(t, w.Work(context.Background(), makeAssessmentJob(20, primeID)))

	bStarted := make(chan struct{})
	cStarted := make(chan struct{})
	dStarted := make(chan struct{})
	finishB := make(chan struct{})
	finishC := make(chan struct{})

	// B and C should both be able to start concurrently under Remaining=2.
	mock.EXPECT().Process(gomock.Any(), bID).
		DoAndReturn(func(ctx context.Context, _ domain.AssessmentID) (behaviorist.RateLimitStatus, error) {
			close(bStarted)
			<-finishB

			// Return Remaining=2 so after B finishes, remaining - inFlight (1) > 0 allowing D to start.
			return behaviorist.RateLimitStatus{Limit: 2, Remaining: 2, ResetAt: time.Now().Add(time.Minute)}, nil
		})
	mock.EXPECT().Process(gomock.Any(), cID).
		DoAndReturn(func(ctx context.Context, _ domain.AssessmentID) (behaviorist.RateLimitStatus, error) {
			close(cStarted)
			<-finishC

			return behaviorist.RateLimitStatus{Limit: 2, Remaining: 0, ResetAt: time.Now().Add(time.Minute)}, nil
		})
	// D should be blocked until either B or C finishes and wakes a waiter.
	mock.EXPECT().Process(gomock.Any(), dID).
		DoAndReturn(func(ctx context.Context, _ domain.AssessmentID) (behaviorist.RateLimitStatus, error) {
			close(dStarted)

			return behaviorist.RateLimitStatus{Limit: 2, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() { _ = w.Work(ctx, makeAssessmentJob(21, bID)) }()
	go func() { _ = w.Work(ctx, makeAssessmentJob(22, cID)) }()

	// Wait until both B and C are in-flight.
	select {
	case <-bStarted:
	case <-time.After(time.Second):
		t.Fatal("b did not start in time")
	}
	select {
	case <-cStarted:
	case <-time.After(time.Second):
		t.Fatal("c did not start in time")
	}

	// Start D, which should block before Process until one finishes.
	go func() { _ = w.Work(ctx, makeAssessmentJob(23, dID)) }()

	select {
	case <-dStarted:
		t.Fatal("d started before any in-flight finished; RL not enforced for Remaining=2")
	case <-time.After(150 * time.Millisecond):
		// expected: still blocked
	}

	// Unblock one (B), which should allow D to start.
	close(finishB)

	select {
	case <-dStarted:
		// success
	case <-time.After(2 * time.Second):
		t.Fatal("d did not start after one request finished")
	}

	// Let C finish to avoid goroutine leaks.
	close(finishC)
}

func TestRateLimit_WaitsForReset_WhenRemainingZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockassessor.NewMockAssessor(ctrl)
	w := worker.NewAssessmentWorker(mock, worker.NewRateLimiter())

	aID := domain.AssessmentID(uuid.New())
	bID := domain.AssessmentID(uuid.New())

	// First call returns Remaining=0 with a short ResetAt in the future.
	resetDelay := 300 * time.Millisecond
	resetAt := time.Now().Add(resetDelay)
	rlZero := behaviorist.RateLimitStatus{Limit: 5, Remaining: 0, ResetAt: resetAt}
	mock.EXPECT().Process(gomock.Any(), aID).Return(rlZero, nil)
	require.NoError(t, w.Work(context.Background(), makeAssessmentJob(30, aID)))

	started := make(chan struct{})
	start := time.Now()
	mock.EXPECT().Process(gomock.Any(), bID).
		DoAndReturn(func(ctx context.Context, _ domain.AssessmentID) (behaviorist.RateLimitStatus, error) {
			close(started)
			// Return any RL status; here we simulate a reset having happened.
			return behaviorist.RateLimitStatus{Limit: 5, Remaining: 4, ResetAt: time.Now().Add(time.Minute)}, nil
		})

	// Start B; it should not invoke Process until roughly after resetDelay.
	go func() { _ = w.Work(context.Background(), makeAssessmentJob(31, bID)) }()

	select {
	case <-started:
		elapsed := time.Since(start)
		require.GreaterOrEqual(t,
			elapsed,
			resetDelay-75*time.Millisecond,
			"Process started too early before reset window elapsed")
	case <-time.After(2 * time.Second):
		t.Fatal("b did not start after reset window elapsed")
	}
}
