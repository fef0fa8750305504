package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"dpq/pkg/domain"
	"dpq/pkg/storage"
)

const (
	assessmentsTable = "assessments"
)

func (p *PgSQL) StoreAssessments(ctx context.Context, assessments ...domain.Assessment) ([]domain.Assessment, error) {
	if len(assessments) == 0 {
		return nil, nil
	}

	pgAssessments, err := domainAssessmentsToPg(assessments)
	if err != nil {
		return nil, err
	}

	var result []PgAssessment
	if err := p.Builder.Insert(assessmentsTable).
		Rows(pgAssessments).
		Returning(&PgAssessment{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store assessments into pg: %w", err)
	}

	return pgAssessmentsToDomain(result)
}

// assessmentUpdateRecord builds the goqu record for an assessment update.
// Attempts is incremented and updated_at refreshed on every update. When the
// target status is Failed and MaxAttempts > 0, the status only flips once the
// incremented attempts reach MaxAttempts, otherwise it stays Pending for the
// next retry.
func assessmentUpdateRecord(updates storage.AssessmentUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}
	if updates.Status == domain.AssessmentStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.AssessmentStatusFailed))
	} else {
		rec["status"] = updates.Status
	}
	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

// UpdateAssessmentByID updates a single assessment by ID, ignoring
// soft-deleted rows, and returns the updated row.
func (p *PgSQL) UpdateAssessmentByID(ctx context.Context,
	id domain.AssessmentID,
	updates storage.AssessmentUpdates) (*domain.Assessment, error) {
	rec, err := assessmentUpdateRecord(updates)
	if err != nil {
		return nil, err
	}

	var row PgAssessment
	found, err := p.Builder.Update(assessmentsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgAssessment{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update assessment by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteAssessment performs a soft delete by setting deleted_at timestamp
// for a given assessment id and user, returning the deleted record.
func (p *PgSQL) DeleteAssessment(ctx context.Context,
	userID domain.UserID,
	id domain.AssessmentID) (*domain.Assessment, error) {
	var row PgAssessment
	found, err := p.Builder.Update(assessmentsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgAssessment{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete assessment in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserAssessments returns a page of assessments for a user filtered by
// optional status and cursor, limited by limit. Results are ordered by
// created_at DESC, id DESC. Returns the next cursor for pagination.
func (p *PgSQL) UserAssessments(ctx context.Context,
	userID domain.UserID,
	status domain.AssessmentStatus,
	cursor time.Time,
	limit uint) (storage.UserAssessments, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(assessmentsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgAssessment
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserAssessments{}, fmt.Errorf("could not fetch user assessments from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgAssessmentsToDomain(rows)
	if err != nil {
		return storage.UserAssessments{}, err
	}

	return storage.UserAssessments{
		Assessments: domainRows,
		NextCursor:  nextCursor,
	}, nil
}

// UserAssessmentByID returns an assessment by its ID for the given user,
// excluding soft-deleted rows.
func (p *PgSQL) UserAssessmentByID(ctx context.Context,
	userID domain.UserID,
	id domain.AssessmentID) (*domain.Assessment, error) {
	var row PgAssessment
	found, err := p.Builder.From(assessmentsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch assessment by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// AssessmentByID returns an assessment by its ID regardless of owner,
// excluding soft-deleted rows. Used by background workers.
func (p *PgSQL) AssessmentByID(ctx context.Context, id domain.AssessmentID) (*domain.Assessment, error) {
	var row PgAssessment
	found, err := p.Builder.From(assessmentsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch assessment by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
