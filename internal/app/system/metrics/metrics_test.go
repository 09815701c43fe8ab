package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
)

func testRouter() http.Handler {
	users := chi.NewRouter()
	users.Get("/", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	users.Delete("/", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) })

	r := chi.NewRouter()
	r.Use(Instrument)
	r.Mount("/users", users)
	r.Handle("/metrics", Handler())
	return r
}

func TestInstrument_LabelsByRoutePattern(t *testing.T) {
	h := testRouter()
	before := promtest.ToFloat64(httpRequests.WithLabelValues("GET", "/users", "200"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	after := promtest.ToFloat64(httpRequests.WithLabelValues("GET", "/users", "200"))
	if after-before != 1 {
		t.Errorf("requests_total{GET,/users,200}: delta %v, want 1", after-before)
	}
}

func TestInstrument_RecordsFailureStatus(t *testing.T) {
	h := testRouter()
	before := promtest.ToFloat64(httpRequests.WithLabelValues("DELETE", "/users", "500"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users", nil))

	after := promtest.ToFloat64(httpRequests.WithLabelValues("DELETE", "/users", "500"))
	if after-before != 1 {
		t.Errorf("requests_total{DELETE,/users,500}: delta %v, want 1", after-before)
	}
}

func TestRecordInserted_IgnoresEmptyBatches(t *testing.T) {
	before := promtest.ToFloat64(recordsWritten.WithLabelValues("stations", "insert"))
	RecordInserted("stations", 0)
	RecordInserted("stations", 3)
	after := promtest.ToFloat64(recordsWritten.WithLabelValues("stations", "insert"))
	if after-before != 3 {
		t.Errorf("records_written{stations,insert}: delta %v, want 3", after-before)
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordDeleted("users", 1)

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "railops_records_written_total") {
		t.Error("expected railops_records_written_total in exposition")
	}
}
