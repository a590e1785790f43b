package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/v1/files/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/v1/files/{id}", "404"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/files/42", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/v1/files/{id}", "404"))

	if after-before != 1 {
		t.Errorf("counter delta = %v, want 1", after-before)
	}
}

func TestCollectionGauges(t *testing.T) {
	SetCollectionSize(7, 2)
	if got := testutil.ToFloat64(collectionSize.WithLabelValues("active")); got != 7 {
		t.Errorf("active = %v", got)
	}
	if got := testutil.ToFloat64(collectionSize.WithLabelValues("trashed")); got != 2 {
		t.Errorf("trashed = %v", got)
	}

	before := testutil.ToFloat64(trashPurgedTotal)
	RecordTrashPurge(3)
	if got := testutil.ToFloat64(trashPurgedTotal) - before; got != 3 {
		t.Errorf("purged delta = %v", got)
	}
}
