package assessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"dpq/internal/config"
	"dpq/internal/video"
	"dpq/pkg/behaviorist"
	"dpq/pkg/domain"
	"dpq/pkg/serrors"
	"dpq/pkg/storage"
)

// Options configure how assessment and video jobs are enqueued and where
// uploaded files are stored. These settings are typically derived from
// application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background workers
	// should make when processing a job before marking the record failed.
	MaxAttempts int
	// UploadDir is the directory uploaded video files are stored in.
	UploadDir string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Assessor.MaxAttempts,
		UploadDir:   cfg.Video.UploadDir,
	}
}

// assessor is the concrete implementation of the Assessor interface.
// It coordinates persistence with the storage layer, job enqueueing and the
// AI behaviorist used during background processing.
type assessor struct {
	options Options
	storage storage.Storage
	// behaviorist generates recommendations and analyzes video frames.
	behaviorist behaviorist.Client
	// pipeline extracts scene-change frames from uploaded videos.
	pipeline *video.Pipeline
}

// Submit validates and stores a new questionnaire submission and enqueues a
// background job to score it.
func (a assessor) Submit(ctx context.Context,
	userID domain.UserID,
	dog domain.Dog,
	responses domain.Responses,
	includeRecommendations bool) (*domain.Assessment, error) {
	if err := dog.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid dog")
	}
	if err := responses.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid responses")
	}

	var assessment *domain.Assessment
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreAssessments(ctx, domain.Assessment{
			UserID:                 userID,
			Dog:                    dog,
			Responses:              responses,
			IncludeRecommendations: includeRecommendations,
			Status:                 domain.AssessmentStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store assessment: %w", err)
		}
		assessment = &res[0]

		// every assessment gets a fresh ID, so the unique constraint on the job
		// arguments can only trip on a retried transaction
		if _, err := tx.AddJob(ctx, AssessmentJobArgs{
			AssessmentID: uuid.UUID(assessment.ID),
			maxAttempts:  a.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit assessment: %w", err)
	}

	return assessment, nil
}

// UserAssessments returns a page of assessments for the given user filtered
// by status. It supports cursor-based pagination using an RFC3339 timestamp
// string and returns the next cursor when more results are available.
func (a assessor) UserAssessments(ctx context.Context,
	userID domain.UserID,
	status domain.AssessmentStatus,
	cursor string,
	limit uint) ([]domain.Assessment, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := a.storage.UserAssessments(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user assessments: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Assessments, next, nil
}

// Get fetches a single assessment by ID for the given user. It returns a
// not-found error when no matching assessment exists.
func (a assessor) Get(ctx context.Context,
	userID domain.UserID,
	assessmentID domain.AssessmentID) (*domain.Assessment, error) {
	res, err := a.storage.UserAssessmentByID(ctx, userID, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("could not get assessment: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "assessment not found")
	}

	return res, nil
}

// Result fetches the scored result of an assessment. It returns a not-found
// error when the assessment does not exist and a conflict error while scoring
// has not completed yet.
func (a assessor) Result(ctx context.Context,
	userID domain.UserID,
	assessmentID domain.AssessmentID) (*domain.AssessmentResult, error) {
	res, err := a.Get(ctx, userID, assessmentID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.AssessmentStatusCompleted || res.Result == nil {
		return nil, serrors.With(serrors.ErrConflict, "assessment is not completed: status is %s", res.Status)
	}

	return res.Result, nil
}

// Delete removes an assessment belonging to the given user. If the assessment
// does not exist, a not-found error is returned. A pending scoring job is not
// cancelled here; the worker skips deleted assessments.
func (a assessor) Delete(ctx context.Context, userID domain.UserID, assessmentID domain.AssessmentID) error {
	res, err := a.storage.DeleteAssessment(ctx, userID, assessmentID)
	if err != nil {
		return fmt.Errorf("could not delete assessment: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "assessment not found")
	}

	return nil
}

// AttachVideo validates and stores an uploaded video for an assessment and
// enqueues a background job to analyze it. The file is written to the upload
// directory before the database records are created; it is removed again when
// the transaction fails.
func (a assessor) AttachVideo(ctx context.Context,
	userID domain.UserID,
	assessmentID domain.AssessmentID,
	upload VideoUpload) (*domain.Video, error) {
	if err := video.ValidateUpload(upload.Filename, upload.ContentType, upload.Size); err != nil {
		return nil, err
	}

	// ownership check before touching the disk
	if _, err := a.Get(ctx, userID, assessmentID); err != nil {
		return nil, err
	}

	path, written, err := a.saveUpload(upload)
	if err != nil {
		return nil, err
	}

	var vid *domain.Video
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreVideos(ctx, domain.Video{
			UserID:       userID,
			AssessmentID: assessmentID,
			Filename:     upload.Filename,
			ContentType:  upload.ContentType,
			SizeBytes:    written,
			Path:         path,
			Status:       domain.VideoStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store video: %w", err)
		}
		vid = &res[0]

		if _, err := tx.AddJob(ctx, VideoJobArgs{
			VideoID:     uuid.UUID(vid.ID),
			maxAttempts: a.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		_ = os.Remove(path)

		return nil, fmt.Errorf("could not attach video: %w", err)
	}

	return vid, nil
}

// Video fetches a single uploaded video by ID for the given user. It returns
// a not-found error when no matching video exists.
func (a assessor) Video(ctx context.Context, userID domain.UserID, videoID domain.VideoID) (*domain.Video, error) {
	res, err := a.storage.UserVideoByID(ctx, userID, videoID)
	if err != nil {
		return nil, fmt.Errorf("could not get video: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "video not found")
	}

	return res, nil
}

// AssessmentVideos lists the videos attached to an assessment, newest first.
// The assessment is fetched first so a missing or foreign assessment yields a
// not-found error instead of an empty list.
func (a assessor) AssessmentVideos(ctx context.Context,
	userID domain.UserID,
	assessmentID domain.AssessmentID) ([]domain.Video, error) {
	if _, err := a.Get(ctx, userID, assessmentID); err != nil {
		return nil, err
	}

	videos, err := a.storage.AssessmentVideos(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("could not get assessment videos: %w", err)
	}

	return videos, nil
}

// DeleteVideo removes an uploaded video belonging to the given user. If the
// video does not exist, a not-found error is returned. The file on disk is
// kept; a pending analysis job skips deleted videos.
func (a assessor) DeleteVideo(ctx context.Context, userID domain.UserID, videoID domain.VideoID) error {
	res, err := a.storage.DeleteVideo(ctx, userID, videoID)
	if err != nil {
		return fmt.Errorf("could not delete video: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "video not found")
	}

	return nil
}

// saveUpload streams the upload body into the upload directory under a fresh
// name derived from the original extension. MaxUploadSize is enforced on the
// actual bytes read, not just the declared size.
func (a assessor) saveUpload(upload VideoUpload) (string, int64, error) {
	if err := os.MkdirAll(a.options.UploadDir, 0o750); err != nil {
		return "", 0, fmt.Errorf("could not create upload dir: %w", err)
	}

	path := filepath.Join(a.options.UploadDir, uuid.NewString()+filepath.Ext(upload.Filename))
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("could not create upload file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(upload.Content, video.MaxUploadSize+1))
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil && written > video.MaxUploadSize {
		err = serrors.With(serrors.ErrBadRequest, "video exceeds the maximum upload size")
	}
	if err != nil {
		_ = os.Remove(path)

		return "", 0, fmt.Errorf("could not save upload: %w", err)
	}

	return path, written, nil
}

// New creates a new Assessor instance backed by the provided storage,
// behaviorist client and frame pipeline, configured with the given options.
func New(storage storage.Storage,
	behaviorist behaviorist.Client,
	pipeline *video.Pipeline,
	options Options) Assessor {
	return &assessor{
		options:     options,
		storage:     storage,
		behaviorist: behaviorist,
		pipeline:    pipeline,
	}
}
