package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubChecker struct {
	ok  bool
	err error
}

func (s stubChecker) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.ok, s.err
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name       string
		checker    stubChecker
		wantStatus int
	}{
		{"active session", stubChecker{ok: true}, http.StatusOK},
		{"no session", stubChecker{}, http.StatusUnauthorized},
		{"store failure", stubChecker{err: errors.New("db down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			RequireSession(tt.checker)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/files", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
