package photojob

import (
	"net/http"

	"github.com/matteocalo/photodesk/internal/transport"
)

type ServiceAPI interface {
	CreateJob(userID int64, dto CreatePhotoJobDTO) (*View, error)
	GetJob(id, callerID int64) (*View, error)
	ListJobs(callerID int64) ([]*View, error)
	UpdateJob(id, callerID int64, dto UpdatePhotoJobDTO) (*View, error)
	DeleteJob(id, callerID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// ListJobs handles GET /photo-jobs
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}

	jobs, err := h.Service.ListJobs(userID)
	if err != nil {
		h.Logger.Error("ListJobs: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, jobs)
}

// CreateJob handles POST /photo-jobs
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}

	var dto CreatePhotoJobDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	job, err := h.Service.CreateJob(userID, dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, job)
}

// GetJob handles GET /photo-jobs/{id}
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	id, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}

	job, err := h.Service.GetJob(id, userID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, job)
}

// UpdateJob handles PATCH /photo-jobs/{id}
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	id, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}

	var dto UpdatePhotoJobDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	job, err := h.Service.UpdateJob(id, userID, dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, job)
}

// DeleteJob handles DELETE /photo-jobs/{id}
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	id, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.Service.DeleteJob(id, userID); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
