package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"cloudbox/internal/domain"
	"cloudbox/internal/logging"
	"cloudbox/internal/projection"
)

type errorResponse struct {
	Error string `json:"error"`
}

// fileResponse дополняет запись полями для отображения
type fileResponse struct {
	domain.FileRecord
	SizeLabel string          `json:"size_label"`
	Category  domain.Category `json:"category"`
}

func toFileResponse(rec domain.FileRecord) fileResponse {
	return fileResponse{
		FileRecord: rec,
		SizeLabel:  projection.FormatSize(rec.Size),
		Category:   projection.Categorize(rec.MIMEType, rec.Kind),
	}
}

func toFileResponses(records []domain.FileRecord) []fileResponse {
	out := make([]fileResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toFileResponse(rec))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.L().Warn("failed to encode response", zap.Error(err))
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError отображает ошибки домена в HTTP статусы
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidSortKey),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidShare),
		errors.Is(err, domain.ErrInvalidTheme),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	}

	logger := logging.WithContext(r.Context())
	if status == http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
		writeMessage(w, status, msg)
		return
	}

	logger.Debug(msg, zap.Error(err), zap.Int("status", status))
	writeMessage(w, status, err.Error())
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(domain.ErrInvalidRequest, err)
	}
	return nil
}

// idsRequest - тело запросов с массовыми операциями над записями
type idsRequest struct {
	IDs []string `json:"ids"`
}

type countResponse struct {
	Affected int `json:"affected"`
}
