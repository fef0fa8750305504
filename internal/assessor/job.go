package assessor

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// activeJobStates are the states during which a second job with the same
// arguments is considered a duplicate.
var activeJobStates = []rivertype.JobState{
	rivertype.JobStateAvailable,
	rivertype.JobStatePending,
	rivertype.JobStateRunning,
	rivertype.JobStateRetryable,
	rivertype.JobStateScheduled,
}

// AssessmentJobArgs contains the arguments for a scoring job submitted to
// River. The assessment ID is the unique key so a submission is scored at
// most once at a time.
type AssessmentJobArgs struct {
	// AssessmentID identifies the assessment to score.
	AssessmentID uuid.UUID `json:"assessmentId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the scoring worker.
func (args AssessmentJobArgs) Kind() string { return "ScoreAssessmentJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate in-flight jobs for the same assessment.
func (args AssessmentJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: activeJobStates,
		},
	}
}

// VideoJobArgs contains the arguments for a video analysis job submitted to
// River.
type VideoJobArgs struct {
	// VideoID identifies the uploaded video to analyze.
	VideoID uuid.UUID `json:"videoId" river:"unique"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the video worker.
func (args VideoJobArgs) Kind() string { return "AnalyzeVideoJob" }

// InsertOpts returns the River options controlling enqueueing of video
// analysis jobs. Uniqueness prevents duplicate in-flight jobs per video.
func (args VideoJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: activeJobStates,
		},
	}
}
