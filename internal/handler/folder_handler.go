package handler

import (
	"net/http"

	"cloudbox/internal/domain"
	"cloudbox/internal/service"
)

type FolderHandler struct {
	fileService *service.FileService
}

func NewFolderHandler(fileService *service.FileService) *FolderHandler {
	return &FolderHandler{fileService: fileService}
}

// CreateFolder обрабатывает запрос на создание папки
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateFolderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Invalid request body", err)
		return
	}

	folder, err := h.fileService.CreateFolder(r.Context(), req)
	if err != nil {
		writeError(w, r, "Failed to create folder", err)
		return
	}

	writeJSON(w, http.StatusCreated, toFileResponse(*folder))
}
