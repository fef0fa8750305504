package assessor_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dpq/internal/assessor"

	mockstorage "dpq/pkg/storage/mock"

	"go.uber.org/mock/gomock"

	"dpq/pkg/domain"
	"dpq/pkg/serrors"
	"dpq/pkg/storage"
)

func validResponses() domain.Responses {
	r := make(domain.Responses, domain.QuestionCount)
	for q := 1; q <= domain.QuestionCount; q++ {
		r[q] = 4
	}

	return r
}

func newTestAssessor(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, assessor.Assessor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	a := assessor.New(st, nil, nil, assessor.Options{MaxAttempts: 3, UploadDir: t.TempDir()})

	return ctrl, st, a
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestAssessor_Submit(t *testing.T) {
	ctrl, st, a := newTestAssessor(t)

	userID := domain.UserID{}
	dog := domain.Dog{Name: "Buddy"}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreAssessments(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, assessments ...domain.Assessment) ([]domain.Assessment, error) {
				if len(assessments) != 1 {
					t.Fatalf("expected one assessment input")
				}

				return assessments, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	res, err := a.Submit(context.Background(), userID, dog, validResponses(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil {
		t.Fatalf("expected assessment, got nil")
	}
	if res.Dog.Name != "Buddy" {
		t.Fatalf("expected dog name Buddy, got %q", res.Dog.Name)
	}
	if res.Status != domain.AssessmentStatusPending {
		t.Fatalf("expected status PENDING, got %s", res.Status)
	}
	if !res.IncludeRecommendations {
		t.Fatalf("expected recommendations flag to survive")
	}
}

func TestAssessor_Submit_Invalid(t *testing.T) {
	_, st, a := newTestAssessor(t)
	// No storage calls expected
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

	// blank dog name
	_, err := a.Submit(context.Background(), domain.UserID{}, domain.Dog{}, validResponses(), false)
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	// incomplete responses
	r := validResponses()
	delete(r, 45)
	_, err = a.Submit(context.Background(), domain.UserID{}, domain.Dog{Name: "Buddy"}, r, false)
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	// out of range answer
	r = validResponses()
	r[1] = 9
	_, err = a.Submit(context.Background(), domain.UserID{}, domain.Dog{Name: "Buddy"}, r, false)
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestAssessor_Submit_PropagatesErrors(t *testing.T) {
	ctrl, st, a := newTestAssessor(t)
	userID := domain.UserID{}
	dog := domain.Dog{Name: "Buddy"}

	// error from StoreAssessments
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreAssessments(gomock.Any(), gomock.Any()).Return(nil, errors.New("store err"))
	})
	if _, err := a.Submit(context.Background(), userID, dog, validResponses(), false); err == nil {
		t.Fatalf("expected error from StoreAssessments")
	}

	// error from AddJob
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreAssessments(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, assessments ...domain.Assessment) ([]domain.Assessment, error) {
				return assessments, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("add err"))
	})
	if _, err := a.Submit(context.Background(), userID, dog, validResponses(), false); err == nil {
		t.Fatalf("expected error from AddJob")
	}
}

func TestAssessor_UserAssessments_SuccessAndPagination(t *testing.T) {
	_, st, a := newTestAssessor(t)
	userID := domain.UserID{}
	status := domain.AssessmentStatusPending
	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	cursor := cursorTime.Format(time.RFC3339)

	page := storage.UserAssessments{
		Assessments: []domain.Assessment{{Dog: domain.Dog{Name: "Buddy"}}},
		NextCursor: func() *time.Time {
			t := cursorTime.Add(-time.Minute)

			return &t
		}(),
	}

	st.EXPECT().UserAssessments(gomock.Any(), userID, status, cursorTime, uint(10)).Return(page, nil)

	assessments, next, err := a.UserAssessments(context.Background(), userID, status, cursor, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assessments) != 1 || assessments[0].Dog.Name != "Buddy" {
		t.Fatalf("unexpected assessments: %+v", assessments)
	}
	if next == "" {
		t.Fatalf("expected next cursor, got empty")
	}
}

func TestAssessor_UserAssessments_InvalidCursor(t *testing.T) {
	_, _, a := newTestAssessor(t)
	_, _, err := a.UserAssessments(context.Background(), domain.UserID{}, "", "not-a-time", 5)
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestAssessor_Get(t *testing.T) {
	_, st, a := newTestAssessor(t)
	userID := domain.UserID{}
	id := domain.AssessmentID{}

	// found
	st.EXPECT().UserAssessmentByID(gomock.Any(), userID, id).Return(&domain.Assessment{Dog: domain.Dog{Name: "Buddy"}}, nil)
	res, err := a.Get(context.Background(), userID, id)
	if err != nil || res == nil || res.Dog.Name != "Buddy" {
		t.Fatalf("unexpected: res=%+v err=%v", res, err)
	}

	// not found
	st.EXPECT().UserAssessmentByID(gomock.Any(), userID, id).Return(nil, nil)
	_, err = a.Get(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// storage error
	st.EXPECT().UserAssessmentByID(gomock.Any(), userID, id).Return(nil, errors.New("boom"))
	_, err = a.Get(context.Background(), userID, id)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestAssessor_Result(t *testing.T) {
	_, st, a := newTestAssessor(t)
	userID := domain.UserID{}
	id := domain.AssessmentID{}

	// completed
	st.EXPECT().UserAssessmentByID(gomock.Any(), userID, id).Return(&domain.Assessment{
		Status: domain.AssessmentStatusCompleted,
		Result: &domain.AssessmentResult{FactorScores: map[string]float64{"fearfulness": 4}},
	}, nil)
	res, err := a.Result(context.Background(), userID, id)
	if err != nil || res == nil {
		t.Fatalf("unexpected: res=%+v err=%v", res, err)
	}

	// still pending
	st.EXPECT().UserAssessmentByID(gomock.Any(), userID, id).Return(&domain.Assessment{
		Status: domain.AssessmentStatusPending,
	}, nil)
	_, err = a.Result(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// not found
	st.EXPECT().UserAssessmentByID(gomock.Any(), userID, id).Return(nil, nil)
	_, err = a.Result(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssessor_Delete(t *testing.T) {
	_, st, a := newTestAssessor(t)
	userID := domain.UserID{}
	id := domain.AssessmentID{}

	// success
	st.EXPECT().DeleteAssessment(gomock.Any(), userID, id).Return(&domain.Assessment{}, nil)
	if err := a.Delete(context.Background(), userID, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// not found
	st.EXPECT().DeleteAssessment(gomock.Any(), userID, id).Return(nil, nil)
	err := a.Delete(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// storage error
	st.EXPECT().DeleteAssessment(gomock.Any(), userID, id).Return(nil, errors.New("boom"))
	if err := a.Delete(context.Background(), userID, id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestAssessor_AttachVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	uploadDir := t.TempDir()
	a := assessor.New(st, nil, nil, assessor.Options{MaxAttempts: 3, UploadDir: uploadDir})

	userID := domain.UserID{}
	id := domain.AssessmentID{}

	st.EXPECT().UserAssessmentByID(gomock.Any(), userID, id).Return(&domain.Assessment{ID: id}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreVideos(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, videos ...domain.Video) ([]domain.Video, error) {
				if len(videos) != 1 {
					t.Fatalf("expected one video input")
				}
				if videos[0].SizeBytes != 9 {
					t.Fatalf("expected actual written size 9, got %d", videos[0].SizeBytes)
				}

				return videos, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	vid, err := a.AttachVideo(context.Background(), userID, id, assessor.VideoUpload{
		Filename:    "buddy.mp4",
		ContentType: "video/mp4",
		Size:        9,
		Content:     strings.NewReader("fake mp4!"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vid == nil || vid.Filename != "buddy.mp4" {
		t.Fatalf("unexpected video: %+v", vid)
	}
	if filepath.Ext(vid.Path) != ".mp4" {
		t.Fatalf("expected stored file to keep extension, got %q", vid.Path)
	}
	if _, err := os.Stat(vid.Path); err != nil {
		t.Fatalf("expected uploaded file on disk: %v", err)
	}
}

func TestAssessor_AttachVideo_BadUpload(t *testing.T) {
	_, st, a := newTestAssessor(t)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

	// non-video content type
	_, err := a.AttachVideo(context.Background(), domain.UserID{}, domain.AssessmentID{}, assessor.VideoUpload{
		Filename:    "buddy.mp4",
		ContentType: "text/plain",
		Size:        10,
		Content:     strings.NewReader("x"),
	})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	// unsupported extension
	_, err = a.AttachVideo(context.Background(), domain.UserID{}, domain.AssessmentID{}, assessor.VideoUpload{
		Filename:    "buddy.gif",
		ContentType: "video/mp4",
		Size:        10,
		Content:     strings.NewReader("x"),
	})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	// oversized declared upload
	_, err = a.AttachVideo(context.Background(), domain.UserID{}, domain.AssessmentID{}, assessor.VideoUpload{
		Filename:    "buddy.mp4",
		ContentType: "video/mp4",
		Size:        200 * 1024 * 1024,
		Content:     strings.NewReader("x"),
	})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestAssessor_AttachVideo_RemovesFileOnTxFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	uploadDir := t.TempDir()
	a := assessor.New(st, nil, nil, assessor.Options{MaxAttempts: 3, UploadDir: uploadDir})

	userID := domain.UserID{}
	id := domain.AssessmentID{}

	st.EXPECT().UserAssessmentByID(gomock.Any(), userID, id).Return(&domain.Assessment{ID: id}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreVideos(gomock.Any(), gomock.Any()).Return(nil, errors.New("store err"))
	})

	_, err := a.AttachVideo(context.Background(), userID, id, assessor.VideoUpload{
		Filename:    "buddy.mp4",
		ContentType: "video/mp4",
		Size:        9,
		Content:     strings.NewReader("fake mp4!"),
	})
	if err == nil {
		t.Fatalf("expected error from StoreVideos")
	}

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		t.Fatalf("could not read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected upload to be removed, found %d entries", len(entries))
	}
}

func TestAssessor_Video(t *testing.T) {
	_, st, a := newTestAssessor(t)
	userID := domain.UserID{}
	id := domain.VideoID{}

	// found
	st.EXPECT().UserVideoByID(gomock.Any(), userID, id).Return(&domain.Video{Filename: "buddy.mp4"}, nil)
	vid, err := a.Video(context.Background(), userID, id)
	if err != nil || vid == nil || vid.Filename != "buddy.mp4" {
		t.Fatalf("unexpected: vid=%+v err=%v", vid, err)
	}

	// not found
	st.EXPECT().UserVideoByID(gomock.Any(), userID, id).Return(nil, nil)
	_, err = a.Video(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssessor_AssessmentVideos(t *testing.T) {
	_, st, a := newTestAssessor(t)
	userID := domain.UserID{}
	id := domain.AssessmentID{}

	// success
	st.EXPECT().UserAssessmentByID(gomock.Any(), userID, id).Return(&domain.Assessment{ID: id}, nil)
	st.EXPECT().AssessmentVideos(gomock.Any(), id).Return([]domain.Video{
		{Filename: "buddy.mp4"},
		{Filename: "rex.mov"},
	}, nil)
	videos, err := a.AssessmentVideos(context.Background(), userID, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(videos) != 2 || videos[0].Filename != "buddy.mp4" {
		t.Fatalf("unexpected videos: %+v", videos)
	}

	// assessment not found, videos are never queried
	st.EXPECT().UserAssessmentByID(gomock.Any(), userID, id).Return(nil, nil)
	st.EXPECT().AssessmentVideos(gomock.Any(), gomock.Any()).Times(0)
	_, err = a.AssessmentVideos(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssessor_DeleteVideo(t *testing.T) {
	_, st, a := newTestAssessor(t)
	userID := domain.UserID{}
	id := domain.VideoID{}

	// success
	st.EXPECT().DeleteVideo(gomock.Any(), userID, id).Return(&domain.Video{}, nil)
	if err := a.DeleteVideo(context.Background(), userID, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// not found
	st.EXPECT().DeleteVideo(gomock.Any(), userID, id).Return(nil, nil)
	err := a.DeleteVideo(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// storage error
	st.EXPECT().DeleteVideo(gomock.Any(), userID, id).Return(nil, errors.New("boom"))
	if err := a.DeleteVideo(context.Background(), userID, id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
