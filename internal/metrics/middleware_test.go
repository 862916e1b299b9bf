package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/materials/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/materials/{id}", "404"))

	for _, id := range []string{"wood", "steel"} {
		req := httptest.NewRequest(http.MethodGet, "/materials/"+id, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/materials/{id}", "404"))
	assert.Equal(t, float64(2), after-before)
}

func TestRecordReload(t *testing.T) {
	before := testutil.ToFloat64(RegistryReloads.WithLabelValues(OutcomeFailure))
	RecordReload(assert.AnError)
	assert.Equal(t, float64(1), testutil.ToFloat64(RegistryReloads.WithLabelValues(OutcomeFailure))-before)
}
