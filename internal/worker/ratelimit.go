package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"dpq/pkg/behaviorist"
	"dpq/pkg/logger"
)

// RateLimiter implements cooperative rate limiting against the AI provider,
// shared by every worker that talks to it. It tracks the last known upstream
// rate-limit status (lastStatus) and the number of requests currently in
// flight (inFlight). Before starting a provider call, reserve is called to
// take a slot from the current budget. The effective remaining budget is:
//
//	remaining := lastStatus.Remaining
//	if now > lastStatus.ResetAt { remaining = lastStatus.Limit }
//
// A request may start while remaining - inFlight > 0, which allows concurrent
// requests as long as they do not exceed the Remaining budget. When no budget
// is left, reserve waits until either the ResetAt time is reached (budget
// replenishes to Limit) or another in-flight request finishes and signals
// finishedChan.
//
// After a request completes, finished is called with the server-provided
// behaviorist.RateLimitStatus parsed from the response headers. It decrements
// the inFlight counter, wakes any goroutine waiting in reserve and updates
// lastStatus. The update prefers the freshest ResetAt and the lowest
// Remaining so concurrent requests reporting slightly different views of the
// budget cannot inflate it.
//
// Bootstrap behavior: before any API call has returned a rate-limit status,
// lastStatus is initialized to a synthetic status with Limit=1, Remaining=1
// and a far-future ResetAt. This permits exactly one request to go through so
// real rate-limit headers can be observed; subsequent requests use actual data.
//
// All mutable state is guarded by mu. finishedChan carries wake-up signals
// without accumulating backpressure; sends are non-blocking and dropped when
// no one is waiting.
type RateLimiter struct {
	mu sync.Mutex
	// inFlight counts how many provider calls are currently running. It is used
	// together with lastStatus.Remaining to decide if another call may start.
	inFlight int
	// lastStatus stores the most recent view of the upstream rate-limit headers.
	lastStatus *behaviorist.RateLimitStatus
	// finishedChan wakes goroutines waiting in reserve when any in-flight
	// request completes.
	finishedChan chan struct{}
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		finishedChan: make(chan struct{}),
	}
}

// reserve takes one unit from the rate-limit budget or blocks until a unit
// becomes available:
//  1. On first use, initialize a synthetic state allowing a single probe
//     request to gather real headers.
//  2. Compute the effective remaining budget; past ResetAt, Remaining is
//     treated as Limit.
//  3. If remaining - inFlight > 0, increment inFlight and return.
//  4. Otherwise wait until either ResetAt elapses or any in-flight request
//     completes, then retry.
//
// If ctx is canceled while waiting, an error is returned.
func (r *RateLimiter) reserve(ctx context.Context) error {
	for {
		r.mu.Lock()

		if r.lastStatus == nil {
			// At startup allow one request to get feedback from the API.
			r.lastStatus = &behaviorist.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				// Far-future reset so the first reservation doesn't
				// unblock due to a timer; real headers replace this soon.
				ResetAt: time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := r.lastStatus.Remaining
		// If the reset time has passed, treat the full limit as remaining.
		if time.Now().UTC().After(r.lastStatus.ResetAt) {
			remaining = r.lastStatus.Limit
		}

		// If budget remains once we account for in-flight requests, reserve and go.
		if remaining-r.inFlight > 0 {
			logger.Debug(ctx, "reserved rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", r.lastStatus.Limit),
				zap.Time("resetAt", r.lastStatus.ResetAt),
				zap.Int("inFlight", r.inFlight))
			r.inFlight++
			r.mu.Unlock()

			return nil
		}

		// Otherwise, wait for either the reset time (if in the future) or for any
		// request to finish, then retry.
		resetAt := r.lastStatus.ResetAt
		r.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", r.inFlight))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-r.finishedChan:
			// loop to re-evaluate
			continue
		case <-time.After(time.Until(resetAt)):
			// Reset window elapsed; loop and try again.
			continue
		}
	}
}

// finished is called after every provider call. It decrements the in-flight
// counter, wakes any goroutine waiting to reserve and updates the last known
// rate-limit status using a conservative merge to avoid races between
// concurrent requests.
func (r *RateLimiter) finished(ctx context.Context, newStatus behaviorist.RateLimitStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inFlight > 0 {
		r.inFlight--
	} else {
		r.inFlight = 0
	}

	// If other goroutines are blocked in reserve, try to wake exactly one
	// without blocking this goroutine. If no one is waiting the signal is dropped.
	select {
	case r.finishedChan <- struct{}{}:
	default:
	}

	// If the call didn't return any RL info, don't change our view.
	if newStatus.ResetAt.IsZero() {
		return
	}

	log := func() {
		logger.Debug(ctx, "received rate limit status",
			zap.Int("limit", newStatus.Limit),
			zap.Int("remaining", newStatus.Remaining),
			zap.Time("resetAt", newStatus.ResetAt),
			zap.Int("inFlight", r.inFlight))
	}

	// First observation: adopt it unconditionally.
	if r.lastStatus == nil {
		r.lastStatus = &newStatus
		log()

		return
	}

	// If ResetAt changed, always adopt the new window.
	if !r.lastStatus.ResetAt.Equal(newStatus.ResetAt) {
		r.lastStatus = &newStatus
		log()

		return
	}

	// Otherwise prefer the lower Remaining to stay conservative under concurrency.
	if newStatus.Remaining < r.lastStatus.Remaining {
		r.lastStatus = &newStatus
		log()
	}
}
