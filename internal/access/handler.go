package access

import (
	"net/http"

	"github.com/matteocalo/photodesk/internal/comment"
	"github.com/matteocalo/photodesk/internal/transport"
)

// PasswordHeader carries the portal password on GET requests.
const PasswordHeader = "X-Portal-Password"

type ServiceAPI interface {
	VerifyPortalPassword(jobID int64, supplied string) (bool, error)
	GetPortalView(jobID int64, supplied *string) (*PortalView, error)
	ListPortalComments(jobID int64, supplied *string) ([]*comment.Comment, error)
	PostClientComment(jobID int64, content string, supplied *string) (*comment.Comment, error)
	PostOwnerComment(jobID int64, content string, callerID int64) (*comment.Comment, error)
	ListOwnerComments(jobID, callerID int64) ([]*comment.Comment, error)
	UpdateComment(commentID, callerID int64, dto UpdateCommentDTO) (*comment.Comment, error)
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

// VerifyPassword handles POST /photo-jobs/{id}/verify-password
func (h *Handler) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}
	var dto VerifyPasswordDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	valid, err := h.Service.VerifyPortalPassword(jobID, dto.Password)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, VerifyPasswordResponse{Valid: valid})
}

// GetPortalView handles GET /client-portal/{jobId}
func (h *Handler) GetPortalView(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.IDParam(w, r, "jobId")
	if !ok {
		return
	}

	view, err := h.Service.GetPortalView(jobID, passwordFromHeader(r))
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, view)
}

// ListPortalComments handles GET /client-portal/{jobId}/comments
func (h *Handler) ListPortalComments(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.IDParam(w, r, "jobId")
	if !ok {
		return
	}

	comments, err := h.Service.ListPortalComments(jobID, passwordFromHeader(r))
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, comments)
}

// PostClientComment handles POST /client-portal/{jobId}/comments
func (h *Handler) PostClientComment(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.IDParam(w, r, "jobId")
	if !ok {
		return
	}
	var dto CommentDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	supplied := dto.Password
	if supplied == nil {
		supplied = passwordFromHeader(r)
	}

	c, err := h.Service.PostClientComment(jobID, dto.Content, supplied)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, c)
}

// ListOwnerComments handles GET /photo-jobs/{id}/comments
func (h *Handler) ListOwnerComments(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	jobID, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.Service.ListOwnerComments(jobID, userID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, comments)
}

// PostOwnerComment handles POST /photo-jobs/{id}/comments
func (h *Handler) PostOwnerComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	jobID, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}
	var dto CommentDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	c, err := h.Service.PostOwnerComment(jobID, dto.Content, userID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, c)
}

// UpdateComment handles PATCH /comments/{id}
func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	commentID, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}
	var dto UpdateCommentDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	c, err := h.Service.UpdateComment(commentID, userID, dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, c)
}

func passwordFromHeader(r *http.Request) *string {
	v := r.Header.Get(PasswordHeader)
	if v == "" {
		return nil
	}
	return &v
}
