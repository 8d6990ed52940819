// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, plan.go, destination.go) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Planner defines the business operation the plan handler depends on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the catalog or the planner.
type Planner interface {
	Plan(ctx context.Context, req domain.PlanRequest) (domain.Itinerary, error)
}

// CatalogBrowser defines the read operations of the destination handlers.
type CatalogBrowser interface {
	List(ctx context.Context, f domain.DestinationFilter, p domain.PaginationParams) ([]domain.DestinationDetail, int, error)
	Get(ctx context.Context, id uuid.UUID) (domain.DestinationDetail, error)
}

// Status describes the capabilities reported by GET /health.
type Status struct {
	AIPowered bool
	Features  []string
}

// Server serves every API endpoint.
type Server struct {
	plans   Planner
	catalog CatalogBrowser
	status  Status
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(plans Planner, catalog CatalogBrowser, status Status, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	if status.Features == nil {
		status.Features = []string{}
	}
	return &Server{plans: plans, catalog: catalog, status: status, log: log}
}

// Register adds the API routes to r. Global middleware is the caller's
// concern and must be installed on r before Register is called.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.GetHealthz)
	r.Get("/health", s.GetHealth)
	r.Post("/plan-trip", s.PlanTrip)
	r.Get("/destinations", s.ListDestinations)
	r.Get("/destinations/{id}", s.GetDestination)
	r.Get("/openapi.yaml", s.GetOpenAPI)
}

// Routes returns a router serving only the API routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}
