package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/spec"
)

// HealthzResponse is the liveness body.
type HealthzResponse struct {
	Status string `json:"status"`
}

// HealthResponse reports what the running instance can do.
type HealthResponse struct {
	Status    string   `json:"status"`
	AIPowered bool     `json:"ai_powered"`
	Features  []string `json:"features"`
}

// GetHealthz handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthzResponse{Status: "ok"})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		AIPowered: s.status.AIPowered,
		Features:  s.status.Features,
	})
}

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
