package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/mutker/motormon/internal/api"
	"codeberg.org/mutker/motormon/internal/config"
	"codeberg.org/mutker/motormon/internal/machine"
	"codeberg.org/mutker/motormon/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *api.Server {
	t.Helper()

	cfg := &config.Config{
		Listen:           ":0",
		Interval:         1,
		LogLevel:         "error",
		Seed:             1,
		BootDuration:     10.0,
		DwellInterval:    60.0,
		FaultProbability: 0.30,
		Gain:             config.Gains{RMS: 0.05, Kurtosis: 0.05, Temp: 0.02, FanSpeed: 0.05},
	}

	target := sim.TargetFor(sim.ModeHealthy)
	m, err := machine.New(cfg,
		machine.WithClock(func() time.Duration { return 20 * time.Second }),
		machine.WithObserved(sim.Observed{
			RMS:      target.RMS,
			Kurtosis: target.Kurtosis,
			Temp:     target.Temp,
			FanSpeed: target.FanSpeed,
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })

	return api.NewServer(m)
}

func TestHealthRoute(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestTelemetryRoute(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/telemetry", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Timestamp      string  `json:"timestamp"`
		RMS            float64 `json:"rms"`
		Kurtosis       float64 `json:"kurtosis"`
		Temp           float64 `json:"temp"`
		Speed          int     `json:"speed"`
		Status         string  `json:"status"`
		StatusCode     int     `json:"status_code"`
		Recommendation string  `json:"recommendation"`
		Mode           string  `json:"mode"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, "HEALTHY", body.Mode)
	assert.Equal(t, "OPTIMAL", body.Status)
	assert.Equal(t, 0, body.StatusCode)
	assert.InDelta(t, 0.05, body.RMS, 1e-9)
	assert.Equal(t, 1800, body.Speed)
	assert.NotEmpty(t, body.Recommendation)
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, body.Timestamp)
}

func TestTelemetryRouteAdvancesSimulation(t *testing.T) {
	server := testServer(t)

	// Two requests against one shared instance must not corrupt state;
	// both return well-formed records.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/telemetry", nil)
		rec := httptest.NewRecorder()
		server.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
