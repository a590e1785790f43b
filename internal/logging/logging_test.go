package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddlewareStoresRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Replace(zap.New(core))
	t.Cleanup(func() { Replace(zap.NewNop()) })

	var fromCtx *zap.Logger
	handler := middleware.RequestID(Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = WithContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/files", nil))

	if fromCtx == nil || fromCtx == L() {
		t.Error("handler did not receive a request-scoped logger")
	}

	entries := logs.FilterMessage("request completed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("status field = %v", fields["status"])
	}
	if fields["request_id"] == "" {
		t.Error("request_id is empty")
	}
}

func TestWithContextFallsBackToGlobal(t *testing.T) {
	logger := zap.NewNop()
	Replace(logger)
	if got := WithContext(context.Background()); got != logger {
		t.Error("WithContext did not return the global logger")
	}
}

func TestInitWritesRotatedFile(t *testing.T) {
	file := t.TempDir() + "/cloudbox.log"
	if err := Init(Config{Level: "debug", Format: "console", File: file, MaxSizeMB: 1}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Replace(zap.NewNop()) })

	L().Debug("hello")
	if !L().Core().Enabled(zap.DebugLevel) {
		t.Error("debug level is not enabled")
	}
	SetLevel("error")
	if L().Core().Enabled(zap.InfoLevel) {
		t.Error("SetLevel did not raise the level")
	}
}
