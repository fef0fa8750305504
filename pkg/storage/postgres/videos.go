package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"dpq/pkg/domain"
	"dpq/pkg/storage"
)

const (
	videosTable = "videos"
)

func (p *PgSQL) StoreVideos(ctx context.Context, videos ...domain.Video) ([]domain.Video, error) {
	if len(videos) == 0 {
		return nil, nil
	}

	pgVideos := make([]PgVideo, len(videos))
	for i := range pgVideos {
		if err := pgVideos[i].FromDomain(videos[i]); err != nil {
			return nil, err
		}
	}

	var result []PgVideo
	if err := p.Builder.Insert(videosTable).
		Rows(pgVideos).
		Returning(&PgVideo{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store videos into pg: %w", err)
	}

	return pgVideosToDomain(result)
}

// UpdateVideoByID updates a single video by ID, ignoring soft-deleted rows,
// and returns the updated row. Attempts is incremented and updated_at
// refreshed on every update; the Failed status honors the MaxAttempts guard
// the same way assessments do.
func (p *PgSQL) UpdateVideoByID(ctx context.Context,
	id domain.VideoID,
	updates storage.VideoUpdates) (*domain.Video, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}
	if updates.Status == domain.VideoStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.VideoStatusFailed))
	} else {
		rec["status"] = updates.Status
	}
	if updates.Analysis != nil {
		b, err := json.Marshal(updates.Analysis)
		if err != nil {
			return nil, fmt.Errorf("could not marshal analysis: %w", err)
		}

		rec["analysis"] = b
	}
	if updates.DurationSeconds != nil {
		rec["duration_seconds"] = *updates.DurationSeconds
	}
	if updates.FramesExtracted != nil {
		rec["frames_extracted"] = *updates.FramesExtracted
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgVideo
	found, err := p.Builder.Update(videosTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgVideo{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update video by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserVideoByID returns a video by its ID for the given user, excluding
// soft-deleted rows.
func (p *PgSQL) UserVideoByID(ctx context.Context,
	userID domain.UserID,
	id domain.VideoID) (*domain.Video, error) {
	var row PgVideo
	found, err := p.Builder.From(videosTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch video by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// VideoByID returns a video by its ID regardless of owner, excluding
// soft-deleted rows. Used by background workers.
func (p *PgSQL) VideoByID(ctx context.Context, id domain.VideoID) (*domain.Video, error) {
	var row PgVideo
	found, err := p.Builder.From(videosTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch video by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// AssessmentVideos returns all live videos attached to an assessment, newest
// first.
func (p *PgSQL) AssessmentVideos(ctx context.Context,
	assessmentID domain.AssessmentID) ([]domain.Video, error) {
	var rows []PgVideo
	if err := p.Builder.From(videosTable).
		Where(
			goqu.I("assessment_id").Eq(uuid.UUID(assessmentID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch assessment videos from pg: %w", err)
	}

	return pgVideosToDomain(rows)
}

// DeleteVideo performs a soft delete by setting deleted_at timestamp
// instead of removing the record.
func (p *PgSQL) DeleteVideo(ctx context.Context,
	userID domain.UserID,
	id domain.VideoID) (*domain.Video, error) {
	var row PgVideo
	found, err := p.Builder.Update(videosTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgVideo{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete video in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
