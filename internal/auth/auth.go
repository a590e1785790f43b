package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"cloudbox/internal/logging"
)

// SessionChecker сообщает, активна ли сессия
type SessionChecker interface {
	IsAuthenticated(ctx context.Context) (bool, error)
}

// RequireSession пропускает запрос только при активной сессии.
// Это демонстрационная проверка флага, а не аутентификация.
func RequireSession(sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := sessions.IsAuthenticated(r.Context())
			if err != nil {
				logging.WithContext(r.Context()).Error("failed to check session", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "failed to check session")
				return
			}
			if !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
