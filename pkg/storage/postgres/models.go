package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dpq/pkg/domain"
)

type PgAssessment struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Dog                    json.RawMessage `db:"dog"`
	Responses              json.RawMessage `db:"responses"`
	IncludeRecommendations bool            `db:"include_recommendations"`

	Status string          `db:"status"`
	Result json.RawMessage `db:"result" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgAssessment) ToDomain() (*domain.Assessment, error) {
	var dog domain.Dog
	if err := json.Unmarshal(p.Dog, &dog); err != nil {
		return nil, fmt.Errorf("could not unmarshal dog: %w", err)
	}
	var responses domain.Responses
	if err := json.Unmarshal(p.Responses, &responses); err != nil {
		return nil, fmt.Errorf("could not unmarshal responses: %w", err)
	}
	var result *domain.AssessmentResult
	if len(p.Result) > 0 {
		result = &domain.AssessmentResult{}
		if err := json.Unmarshal(p.Result, result); err != nil {
			return nil, fmt.Errorf("could not unmarshal assessment result: %w", err)
		}
	}

	return &domain.Assessment{
		ID:                     domain.AssessmentID(p.ID),
		UserID:                 domain.UserID(p.UserID),
		Dog:                    dog,
		Responses:              responses,
		IncludeRecommendations: p.IncludeRecommendations,
		Status:                 domain.AssessmentStatus(p.Status),
		Result:                 result,
		Attempts:               p.Attempts,
		LastError:              p.LastError.String,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt.Time,
		DeletedAt:              p.DeletedAt.Time,
	}, nil
}

func (p *PgAssessment) FromDomain(assessment domain.Assessment) error {
	dog, err := json.Marshal(assessment.Dog)
	if err != nil {
		return fmt.Errorf("could not marshal dog: %w", err)
	}
	responses, err := json.Marshal(assessment.Responses)
	if err != nil {
		return fmt.Errorf("could not marshal responses: %w", err)
	}
	var result json.RawMessage
	if assessment.Result != nil {
		result, err = json.Marshal(assessment.Result)
		if err != nil {
			return fmt.Errorf("could not marshal assessment result: %w", err)
		}
	}

	*p = PgAssessment{
		ID:                     uuid.UUID(assessment.ID),
		UserID:                 uuid.UUID(assessment.UserID),
		Dog:                    dog,
		Responses:              responses,
		IncludeRecommendations: assessment.IncludeRecommendations,
		Status:                 string(assessment.Status),
		Result:                 result,
		Attempts:               assessment.Attempts,
		LastError: sql.NullString{
			String: assessment.LastError,
			Valid:  assessment.LastError != "",
		},
		CreatedAt: assessment.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  assessment.UpdatedAt,
			Valid: !assessment.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  assessment.DeletedAt,
			Valid: !assessment.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainAssessmentsToPg(assessments []domain.Assessment) ([]PgAssessment, error) {
	out := make([]PgAssessment, len(assessments))
	for i := range out {
		if err := out[i].FromDomain(assessments[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgAssessmentsToDomain(assessments []PgAssessment) ([]domain.Assessment, error) {
	out := make([]domain.Assessment, 0, len(assessments))
	for _, assessment := range assessments {
		d, err := assessment.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgVideo struct {
	ID           uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID       uuid.UUID `db:"user_id"`
	AssessmentID uuid.UUID `db:"assessment_id"`

	Filename    string `db:"filename"`
	ContentType string `db:"content_type"`
	SizeBytes   int64  `db:"size_bytes"`
	Path        string `db:"path"`

	Status          string          `db:"status"`
	Analysis        json.RawMessage `db:"analysis"         goqu:"skipinsert"`
	DurationSeconds sql.NullFloat64 `db:"duration_seconds" goqu:"skipinsert"`
	FramesExtracted sql.NullInt64   `db:"frames_extracted" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgVideo) ToDomain() (*domain.Video, error) {
	var analysis *domain.VideoAnalysis
	if len(p.Analysis) > 0 {
		analysis = &domain.VideoAnalysis{}
		if err := json.Unmarshal(p.Analysis, analysis); err != nil {
			return nil, fmt.Errorf("could not unmarshal video analysis: %w", err)
		}
	}

	return &domain.Video{
		ID:              domain.VideoID(p.ID),
		UserID:          domain.UserID(p.UserID),
		AssessmentID:    domain.AssessmentID(p.AssessmentID),
		Filename:        p.Filename,
		ContentType:     p.ContentType,
		SizeBytes:       p.SizeBytes,
		Path:            p.Path,
		Status:          domain.VideoStatus(p.Status),
		Analysis:        analysis,
		DurationSeconds: p.DurationSeconds.Float64,
		FramesExtracted: int(p.FramesExtracted.Int64),
		Attempts:        p.Attempts,
		LastError:       p.LastError.String,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
		DeletedAt:       p.DeletedAt.Time,
	}, nil
}

func (p *PgVideo) FromDomain(video domain.Video) error {
	var analysis json.RawMessage
	if video.Analysis != nil {
		b, err := json.Marshal(video.Analysis)
		if err != nil {
			return fmt.Errorf("could not marshal video analysis: %w", err)
		}
		analysis = b
	}

	*p = PgVideo{
		ID:           uuid.UUID(video.ID),
		UserID:       uuid.UUID(video.UserID),
		AssessmentID: uuid.UUID(video.AssessmentID),
		Filename:     video.Filename,
		ContentType:  video.ContentType,
		SizeBytes:    video.SizeBytes,
		Path:         video.Path,
		Status:       string(video.Status),
		Analysis:     analysis,
		DurationSeconds: sql.NullFloat64{
			Float64: video.DurationSeconds,
			Valid:   video.DurationSeconds > 0,
		},
		FramesExtracted: sql.NullInt64{
			Int64: int64(video.FramesExtracted),
			Valid: video.FramesExtracted > 0,
		},
		Attempts: video.Attempts,
		LastError: sql.NullString{
			String: video.LastError,
			Valid:  video.LastError != "",
		},
		CreatedAt: video.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  video.UpdatedAt,
			Valid: !video.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  video.DeletedAt,
			Valid: !video.DeletedAt.IsZero(),
		},
	}

	return nil
}

func pgVideosToDomain(videos []PgVideo) ([]domain.Video, error) {
	out := make([]domain.Video, 0, len(videos))
	for _, video := range videos {
		d, err := video.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
