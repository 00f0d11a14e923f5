package api

import (
	"encoding/json"
	"net/http"
	"time"

	"codeberg.org/mutker/motormon/internal/logger"
	"codeberg.org/mutker/motormon/internal/machine"
	"codeberg.org/mutker/motormon/internal/telemetry"
	"github.com/gorilla/mux"
)

// Server exposes the simulated machine over HTTP. Each request to the
// telemetry route drives exactly one tick.
type Server struct {
	machine *machine.Machine
	router  *mux.Router
}

func NewServer(m *machine.Machine) *Server {
	s := &Server{
		machine: m,
		router:  mux.NewRouter(),
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/api/telemetry", s.handleTelemetry).Methods("GET")

	s.router.Use(loggingMiddleware)
	s.router.Use(jsonMiddleware)
}

// Router returns the configured router
func (s *Server) Router() *mux.Router {
	return s.router
}

// telemetryResponse is the wire format: display timestamp plus the
// rounded values from the assembled record.
type telemetryResponse struct {
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

func toResponse(record telemetry.Record) telemetryResponse {
	return telemetryResponse{
		Timestamp:      record.Timestamp.Format("15:04:05"),
		RMS:            record.RMS,
		Kurtosis:       record.Kurtosis,
		Temp:           record.Temp,
		Speed:          record.FanSpeed,
		Status:         record.Status,
		StatusCode:     record.StatusCode,
		Recommendation: record.Recommendation,
		Mode:           record.Mode,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleTelemetry(w http.ResponseWriter, r *http.Request) {
	record, err := s.machine.Tick(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Tick failed")
		respondError(w, http.StatusInternalServerError, "telemetry unavailable")

		return
	}

	respondJSON(w, http.StatusOK, toResponse(record))
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Middleware
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("")
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
