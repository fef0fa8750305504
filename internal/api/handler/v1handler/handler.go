// Package v1handler implements the version 1 HTTP API on top of the assessor
// service. Handlers decode requests, delegate to the service and translate
// semantic errors into HTTP status codes with a JSON error envelope.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"dpq/internal/assessor"
	"dpq/pkg/logger"
	"dpq/pkg/serrors"
)

// Deps holds the dependencies required by the v1 handlers.
type Deps struct {
	Assessor assessor.Assessor
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the JSON error envelope returned by every failing v1
// endpoint. Code is a stable machine-readable error kind; Message is
// human-readable.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an HTTP status with its error envelope.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// kindStatus maps semantic error kinds to HTTP status codes.
var kindStatus = map[serrors.Kind]int{
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrConflict:     http.StatusConflict,
	serrors.ErrRateLimited:  http.StatusTooManyRequests,
	serrors.ErrTimeout:      http.StatusGatewayTimeout,
	serrors.ErrUnavailable:  http.StatusServiceUnavailable,
	serrors.ErrInternal:     http.StatusInternalServerError,
}

// kindMessage provides fallback messages when the error carries none of its
// own. Internal causes are never leaked to clients.
var kindMessage = map[serrors.Kind]string{
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
	serrors.ErrRateLimited:  "rate limited",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrUnavailable:  "service unavailable",
	serrors.ErrInternal:     "internal error",
}

// NewError converts any error into an HTTP status and JSON envelope. Unknown
// errors map to 500 with a generic message.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	logger.Error(ctx, err.Error())

	k := serrors.ErrInternal
	for candidate := range kindStatus {
		if errors.Is(err, candidate) {
			k = candidate

			break
		}
	}

	msg := kindMessage[k]
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		msg = serr.Message()
	}

	return &ErrorStatusCode{
		StatusCode: kindStatus[k],
		Response: ErrorResponse{
			Code:    k.Error(),
			Message: msg,
		},
	}
}

func (h Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	sc := h.NewError(ctx, err)
	writeJSON(ctx, w, sc.StatusCode, sc.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// Register mounts all v1 routes on the given mux. Every route requires a
// valid bearer token; sec wraps each handler with authentication.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	authed := func(fn http.HandlerFunc) http.Handler {
		return sec.Middleware(fn)
	}

	mux.Handle("POST /v1/assessments", authed(h.CreateAssessment))
	mux.Handle("GET /v1/assessments", authed(h.ListAssessments))
	mux.Handle("GET /v1/assessments/{id}", authed(h.GetAssessment))
	mux.Handle("GET /v1/assessments/{id}/result", authed(h.GetAssessmentResult))
	mux.Handle("DELETE /v1/assessments/{id}", authed(h.DeleteAssessment))
	mux.Handle("POST /v1/assessments/{id}/videos", authed(h.UploadVideo))
	mux.Handle("GET /v1/assessments/{id}/videos", authed(h.ListAssessmentVideos))
	mux.Handle("GET /v1/videos/{id}", authed(h.GetVideo))
	mux.Handle("DELETE /v1/videos/{id}", authed(h.DeleteVideo))
}
