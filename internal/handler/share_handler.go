package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cloudbox/internal/domain"
	"cloudbox/internal/service"
)

type ShareHandler struct {
	shareService *service.ShareService
}

func NewShareHandler(shareService *service.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

func (h *ShareHandler) ShareFile(w http.ResponseWriter, r *http.Request) {
	var req domain.ShareRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Invalid request body", err)
		return
	}

	rec, err := h.shareService.ShareFile(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, "Failed to share file", err)
		return
	}

	writeJSON(w, http.StatusOK, toFileResponse(*rec))
}

func (h *ShareHandler) Unshare(w http.ResponseWriter, r *http.Request) {
	rec, err := h.shareService.Unshare(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "Failed to unshare file", err)
		return
	}

	writeJSON(w, http.StatusOK, toFileResponse(*rec))
}
