package v1handler

import (
	"net/http"

	"github.com/google/uuid"

	"dpq/internal/assessor"
	"dpq/internal/video"
	"dpq/pkg/domain"
	"dpq/pkg/serrors"
)

// multipartMemoryLimit is how much of a multipart body is buffered in memory
// before spilling to disk. The video itself streams from the temp file.
const multipartMemoryLimit = 8 * 1024 * 1024

// UploadVideo attaches a video to an assessment and schedules it for
// behavioral analysis. The video is sent as the "video" part of a multipart
// form.
func (h Handler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assessmentID, err := pathAssessmentID(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, video.MaxUploadSize+multipartMemoryLimit)
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart body"))

		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "missing video file"))

		return
	}
	defer func() { _ = file.Close() }()

	v, err := h.deps.Assessor.AttachVideo(ctx, GetUserIDFromContext(ctx), assessmentID, assessor.VideoUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, v)
}

// VideoList is the response body of the assessment video listing.
type VideoList struct {
	Items []domain.Video `json:"items"`
}

// ListAssessmentVideos returns all videos attached to an assessment, newest
// first.
func (h Handler) ListAssessmentVideos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assessmentID, err := pathAssessmentID(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	videos, err := h.deps.Assessor.AssessmentVideos(ctx, GetUserIDFromContext(ctx), assessmentID)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}
	if videos == nil {
		videos = []domain.Video{}
	}

	writeJSON(ctx, w, http.StatusOK, VideoList{Items: videos})
}

// GetVideo returns an uploaded video and its analysis state by ID.
func (h Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathVideoID(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	v, err := h.deps.Assessor.Video(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, v)
}

// DeleteVideo soft-deletes an uploaded video by ID.
func (h Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathVideoID(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	if err := h.deps.Assessor.DeleteVideo(ctx, GetUserIDFromContext(ctx), id); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathVideoID(r *http.Request) (domain.VideoID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.VideoID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid video id")
	}

	return domain.VideoID(id), nil
}
