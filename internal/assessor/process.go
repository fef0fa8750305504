package assessor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"dpq/internal/dpq"
	"dpq/internal/emotion"
	"dpq/internal/video"
	"dpq/pkg/behaviorist"
	"dpq/pkg/domain"
	"dpq/pkg/logger"
	"dpq/pkg/serrors"
	"dpq/pkg/storage"
)

// Process scores a pending assessment: it computes the personality result
// from the stored responses and, when requested, asks the behaviorist for
// care recommendations. The returned rate-limit status reflects the provider
// headers of that call and is zero when no call was made.
//
// Conflict errors signal that the job should be cancelled (the assessment is
// gone or already scored). A rate-limited error is returned without touching
// the record so the caller can defer the retry until the window resets.
func (a assessor) Process(ctx context.Context,
	assessmentID domain.AssessmentID) (behaviorist.RateLimitStatus, error) {
	var rl behaviorist.RateLimitStatus

	assessment, err := a.storage.AssessmentByID(ctx, assessmentID)
	if err != nil {
		return rl, fmt.Errorf("could not load assessment: %w", err)
	}
	if assessment == nil {
		return rl, serrors.With(serrors.ErrConflict, "assessment no longer exists")
	}
	if assessment.Status == domain.AssessmentStatusCompleted {
		return rl, serrors.With(serrors.ErrConflict, "assessment already scored")
	}

	scores := dpq.Score(assessment.Responses)
	result := dpq.Result(scores, assessment.Responses)

	if assessment.IncludeRecommendations {
		recommendations, status, err := a.behaviorist.Recommend(ctx, behaviorist.Profile{
			DogName:        assessment.Dog.Name,
			Breed:          assessment.Dog.Breed,
			Age:            assessment.Dog.Age,
			FactorScores:   scores.Factors,
			BiasIndicators: scores.Bias,
		})
		rl = status
		switch {
		case err == nil:
			result.Recommendations = recommendations
		case errors.Is(err, serrors.ErrRateLimited):
			return rl, fmt.Errorf("could not get recommendations: %w", err)
		default:
			// the questionnaire result is still useful without the model
			logger.Warn(ctx, "recommendation request failed, using fallback", zap.Error(err))
			result.Recommendations = behaviorist.FallbackRecommendations()
		}
	}

	empty := ""
	updated, err := a.storage.UpdateAssessmentByID(ctx, assessmentID, storage.AssessmentUpdates{
		Status:    domain.AssessmentStatusCompleted,
		Result:    result,
		LastError: &empty,
	})
	if err != nil {
		a.recordAssessmentFailure(ctx, assessmentID, err)

		return rl, fmt.Errorf("could not store result: %w", err)
	}
	if updated == nil {
		return rl, serrors.With(serrors.ErrConflict, "assessment no longer exists")
	}

	return rl, nil
}

// ProcessVideo runs the analysis pipeline for a pending upload: scene-change
// frames are extracted with ffmpeg, sent to the behaviorist and the resulting
// classification is enriched with emotion dimensions before being stored.
func (a assessor) ProcessVideo(ctx context.Context,
	videoID domain.VideoID) (behaviorist.RateLimitStatus, error) {
	var rl behaviorist.RateLimitStatus

	vid, err := a.storage.VideoByID(ctx, videoID)
	if err != nil {
		return rl, fmt.Errorf("could not load video: %w", err)
	}
	if vid == nil {
		return rl, serrors.With(serrors.ErrConflict, "video no longer exists")
	}
	if vid.Status == domain.VideoStatusCompleted {
		return rl, serrors.With(serrors.ErrConflict, "video already analyzed")
	}

	framesDir := strings.TrimSuffix(vid.Path, filepath.Ext(vid.Path)) + "_frames"
	defer video.Cleanup(ctx, framesDir)

	frames, err := a.pipeline.ExtractFrames(ctx, vid.Path, framesDir)
	if err != nil {
		a.recordVideoFailure(ctx, videoID, err)

		return rl, fmt.Errorf("could not extract frames: %w", err)
	}

	images := make([]behaviorist.FrameImage, 0, len(frames))
	for _, frame := range frames {
		jpeg, err := os.ReadFile(frame.Path)
		if err != nil {
			a.recordVideoFailure(ctx, videoID, err)

			return rl, fmt.Errorf("could not read frame: %w", err)
		}
		images = append(images, behaviorist.FrameImage{Timestamp: frame.Timestamp, JPEG: jpeg})
	}

	analysis, rl, err := a.behaviorist.AnalyzeFrames(ctx, images)
	if err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			return rl, fmt.Errorf("could not analyze frames: %w", err)
		}
		a.recordVideoFailure(ctx, videoID, err)

		return rl, fmt.Errorf("could not analyze frames: %w", err)
	}

	// emotion mapping failures degrade the payload, not the job
	if err := emotion.Annotate(analysis); err != nil {
		logger.Warn(ctx, "could not map emotion dimensions", zap.Error(err))
	}

	updates := storage.VideoUpdates{
		Status:   domain.VideoStatusCompleted,
		Analysis: analysis,
	}
	framesCount := len(frames)
	updates.FramesExtracted = &framesCount
	if duration, err := a.pipeline.Duration(ctx, vid.Path); err != nil {
		logger.Warn(ctx, "could not probe video duration", zap.Error(err))
	} else {
		updates.DurationSeconds = &duration
	}
	empty := ""
	updates.LastError = &empty

	updated, err := a.storage.UpdateVideoByID(ctx, videoID, updates)
	if err != nil {
		a.recordVideoFailure(ctx, videoID, err)

		return rl, fmt.Errorf("could not store analysis: %w", err)
	}
	if updated == nil {
		return rl, serrors.With(serrors.ErrConflict, "video no longer exists")
	}

	return rl, nil
}

// recordAssessmentFailure writes the attempt and error text back to the
// assessment. The status only flips to Failed once MaxAttempts is exhausted.
func (a assessor) recordAssessmentFailure(ctx context.Context, id domain.AssessmentID, cause error) {
	msg := cause.Error()
	if _, err := a.storage.UpdateAssessmentByID(ctx, id, storage.AssessmentUpdates{
		Status:      domain.AssessmentStatusFailed,
		LastError:   &msg,
		MaxAttempts: a.options.MaxAttempts,
	}); err != nil {
		logger.Error(ctx, "could not record assessment failure", zap.Error(err))
	}
}

func (a assessor) recordVideoFailure(ctx context.Context, id domain.VideoID, cause error) {
	msg := cause.Error()
	if _, err := a.storage.UpdateVideoByID(ctx, id, storage.VideoUpdates{
		Status:      domain.VideoStatusFailed,
		LastError:   &msg,
		MaxAttempts: a.options.MaxAttempts,
	}); err != nil {
		logger.Error(ctx, "could not record video failure", zap.Error(err))
	}
}
