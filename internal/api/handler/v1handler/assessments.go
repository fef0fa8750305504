package v1handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"dpq/pkg/domain"
	"dpq/pkg/serrors"
)

// DefaultLimit is the page size used when the client does not provide one.
const DefaultLimit = 20

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// CreateAssessmentRequest is the payload for submitting a questionnaire.
type CreateAssessmentRequest struct {
	Dog                    domain.Dog       `json:"dog"`
	Responses              domain.Responses `json:"responses"`
	IncludeRecommendations bool             `json:"includeRecommendations"`
}

// AssessmentList is a single page of a user's assessments.
type AssessmentList struct {
	Items      []domain.Assessment `json:"items"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

// CreateAssessment submits a questionnaire and schedules it for scoring.
func (h Handler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	a, err := h.deps.Assessor.Submit(ctx, GetUserIDFromContext(ctx), req.Dog, req.Responses, req.IncludeRecommendations)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, a)
}

// ListAssessments returns a paginated list of the caller's assessments,
// optionally filtered by status.
func (h Handler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	limit := uint(DefaultLimit)
	if raw := q.Get("limit"); raw != "" {
		parsed, err := parseLimit(raw)
		if err != nil {
			h.writeError(ctx, w, err)

			return
		}
		limit = parsed
	}

	items, nextCursor, err := h.deps.Assessor.UserAssessments(ctx,
		GetUserIDFromContext(ctx),
		domain.AssessmentStatus(q.Get("status")),
		q.Get("cursor"),
		limit)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	if items == nil {
		items = []domain.Assessment{}
	}

	writeJSON(ctx, w, http.StatusOK, AssessmentList{
		Items:      items,
		NextCursor: nextCursor,
	})
}

// GetAssessment returns a single assessment by ID.
func (h Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathAssessmentID(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	a, err := h.deps.Assessor.Get(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, a)
}

// GetAssessmentResult returns the scored result of a completed assessment.
func (h Handler) GetAssessmentResult(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathAssessmentID(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Assessor.Result(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, res)
}

// DeleteAssessment removes an assessment by ID.
func (h Handler) DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathAssessmentID(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	if err := h.deps.Assessor.Delete(ctx, GetUserIDFromContext(ctx), id); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathAssessmentID(r *http.Request) (domain.AssessmentID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.AssessmentID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid assessment id")
	}

	return domain.AssessmentID(id), nil
}

func parseLimit(raw string) (uint, error) {
	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit: %q", raw)
	}
	if limit == 0 || limit > MaxLimit {
		return 0, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit)
	}

	return uint(limit), nil
}
