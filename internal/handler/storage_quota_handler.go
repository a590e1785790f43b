package handler

import (
	"net/http"

	"github.com/dustin/go-humanize"

	"cloudbox/internal/domain"
	"cloudbox/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

type statsResponse struct {
	Total      int                    `json:"total"`
	Files      int                    `json:"files"`
	Folders    int                    `json:"folders"`
	Shared     int                    `json:"shared"`
	Favorites  int                    `json:"favorites"`
	Trashed    int                    `json:"trashed"`
	UsedBytes  int64                  `json:"used_bytes"`
	UsedLabel  string                 `json:"used_label"`
	Recent     []fileResponse         `json:"recent"`
	Largest    []fileResponse         `json:"largest"`
	Categories []domain.CategoryUsage `json:"categories"`
}

func (h *AnalyticsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	agg := h.analyticsService.GetStats(r.Context())

	writeJSON(w, http.StatusOK, statsResponse{
		Total:      agg.Total,
		Files:      agg.Files,
		Folders:    agg.Folders,
		Shared:     agg.Shared,
		Favorites:  agg.Favorites,
		Trashed:    agg.Trashed,
		UsedBytes:  agg.UsedBytes,
		UsedLabel:  humanize.IBytes(uint64(agg.UsedBytes)),
		Recent:     toFileResponses(agg.Recent),
		Largest:    toFileResponses(agg.Largest),
		Categories: agg.Categories,
	})
}

func (h *AnalyticsHandler) GetQuotaInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.analyticsService.GetQuotaInfo(r.Context()))
}
