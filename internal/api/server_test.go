package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/fee-tracker-api/internal/config"
	"github.com/vfg2006/fee-tracker-api/pkg/log"
	"github.com/vfg2006/fee-tracker-api/pkg/metrics"
)

func TestNewHandler(t *testing.T) {
	log.SetupTestLogger()

	cfg := &config.Config{
		Server:  config.Server{AllowedOrigins: []string{"http://localhost:5173"}},
		Metrics: config.Metrics{Enabled: true},
	}
	m := metrics.New(prometheus.NewRegistry())
	h := NewHandler(cfg, Services{Metrics: m})

	req := httptest.NewRequest(http.MethodGet, "/v1/calculations/variance?actual_fee=1000&expected_fee=1000", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fee_tracker_http_requests_total{method="GET",route="/v1/calculations/variance",status="200"} 1`)
}

func TestNewHandler_MetricsDisabled(t *testing.T) {
	log.SetupTestLogger()

	h := NewHandler(&config.Config{}, Services{Metrics: metrics.New(prometheus.NewRegistry())})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
