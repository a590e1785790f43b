package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cloudbox/internal/domain"
	"cloudbox/internal/service"
)

type FileHandler struct {
	fileService *service.FileService
}

func NewFileHandler(fileService *service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

type folderContentResponse struct {
	Path        string              `json:"path"`
	Search      string              `json:"search,omitempty"`
	Sort        domain.SortKey      `json:"sort"`
	Breadcrumbs []domain.Breadcrumb `json:"breadcrumbs"`
	Items       []fileResponse      `json:"items"`
	Count       int                 `json:"count"`
}

// ListFiles возвращает отфильтрованный и отсортированный список для текущего пути
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sortKey, err := domain.ParseSortKey(query.Get("sort"))
	if err != nil {
		writeError(w, r, "Invalid sort key", err)
		return
	}

	content, err := h.fileService.ListFiles(r.Context(), service.ListParams{
		Path:   query.Get("path"),
		Search: query.Get("q"),
		Sort:   sortKey,
	})
	if err != nil {
		writeError(w, r, "Failed to list files", err)
		return
	}

	writeJSON(w, http.StatusOK, folderContentResponse{
		Path:        content.Path,
		Search:      content.Search,
		Sort:        content.Sort,
		Breadcrumbs: content.Breadcrumbs,
		Items:       toFileResponses(content.Items),
		Count:       len(content.Items),
	})
}

func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	rec, err := h.fileService.GetFile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "Failed to get file", err)
		return
	}
	writeJSON(w, http.StatusOK, toFileResponse(*rec))
}

func (h *FileHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	rec, err := h.fileService.ToggleFavorite(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "Failed to toggle favorite", err)
		return
	}
	writeJSON(w, http.StatusOK, toFileResponse(*rec))
}

func (h *FileHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	sortKey, err := domain.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, "Invalid sort key", err)
		return
	}
	writeJSON(w, http.StatusOK, toFileResponses(h.fileService.Favorites(r.Context(), sortKey)))
}

func (h *FileHandler) GetShared(w http.ResponseWriter, r *http.Request) {
	sortKey, err := domain.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, "Invalid sort key", err)
		return
	}
	writeJSON(w, http.StatusOK, toFileResponses(h.fileService.Shared(r.Context(), sortKey)))
}

func (h *FileHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeMessage(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, toFileResponses(h.fileService.Recent(r.Context(), limit)))
}
