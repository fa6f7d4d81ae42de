package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestOpsRouter(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "hrdash_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	ready := false
	router := NewOpsRouter(func() bool { return ready }, reg)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	if rec := get("/healthz"); rec.Code != http.StatusOK {
		t.Fatalf("expected healthz 200, got %d", rec.Code)
	}
	if rec := get("/readyz"); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected readyz 503 before load, got %d", rec.Code)
	}

	ready = true
	if rec := get("/readyz"); rec.Code != http.StatusOK {
		t.Fatalf("expected readyz 200 after load, got %d", rec.Code)
	}

	rec := get("/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected metrics 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "hrdash_test_total 1") {
		t.Fatalf("metrics output missing counter: %s", rec.Body.String())
	}
}

func TestOpsRouter_NilReadiness(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewOpsRouter(nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
