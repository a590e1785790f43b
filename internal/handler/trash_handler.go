package handler

import (
	"context"
	"net/http"

	"cloudbox/internal/service"
)

type TrashHandler struct {
	trashService *service.TrashService
}

func NewTrashHandler(trashService *service.TrashService) *TrashHandler {
	return &TrashHandler{trashService: trashService}
}

type trashItemResponse struct {
	fileResponse
	ExpiresIn string `json:"expires_in,omitempty"`
}

// GetTrashItems обрабатывает запрос на получение содержимого корзины
func (h *TrashHandler) GetTrashItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.trashService.GetTrashItems(r.Context())
	if err != nil {
		writeError(w, r, "Failed to get trash items", err)
		return
	}

	resp := make([]trashItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, trashItemResponse{
			fileResponse: toFileResponse(item.FileRecord),
			ExpiresIn:    item.ExpiresIn,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// MoveToTrash обрабатывает запрос на перемещение элементов в корзину
func (h *TrashHandler) MoveToTrash(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, "Failed to move items to trash", h.trashService.MoveToTrash)
}

// RestoreItems обрабатывает запрос на восстановление элементов из корзины
func (h *TrashHandler) RestoreItems(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, "Failed to restore items", h.trashService.RestoreFromTrash)
}

// DeletePermanently обрабатывает запрос на окончательное удаление элементов
func (h *TrashHandler) DeletePermanently(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, "Failed to delete items", h.trashService.DeletePermanently)
}

// EmptyTrash обрабатывает запрос на очистку корзины
func (h *TrashHandler) EmptyTrash(w http.ResponseWriter, r *http.Request) {
	n, err := h.trashService.EmptyTrash(r.Context())
	if err != nil {
		writeError(w, r, "Failed to empty trash", err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Affected: n})
}

// GetSettings обрабатывает запрос на получение настроек корзины
func (h *TrashHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.trashService.GetSettings(r.Context())
	if err != nil {
		writeError(w, r, "Failed to get settings", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings обрабатывает запрос на обновление настроек корзины
func (h *TrashHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RetentionPeriod string `json:"retention_period"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Invalid request body", err)
		return
	}

	settings, err := h.trashService.UpdateRetentionPeriod(r.Context(), req.RetentionPeriod)
	if err != nil {
		writeError(w, r, "Failed to update settings", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *TrashHandler) bulk(w http.ResponseWriter, r *http.Request, msg string, op func(ctx context.Context, ids []string) (int, error)) {
	var req idsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Invalid request body", err)
		return
	}

	n, err := op(r.Context(), req.IDs)
	if err != nil {
		writeError(w, r, msg, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Affected: n})
}
