package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Destination is one catalog entry as returned by the browse endpoints.
type Destination struct {
	ID          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Country     string             `json:"country"`
	Description string             `json:"description"`
	Keywords    []string           `json:"keywords"`
	Region      string             `json:"region"`
	Activities  []string           `json:"activities"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// DestinationList is the body of GET /destinations.
type DestinationList struct {
	Data       []Destination `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// ListDestinations handles GET /destinations.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100) and the
// optional ?country= and ?keyword= filters.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		page, limit      *int
		country, keyword *string
	)
	for _, p := range []struct {
		name string
		dest any
	}{
		{"page", &page},
		{"limit", &limit},
		{"country", &country},
		{"keyword", &keyword},
	} {
		if err := runtime.BindQueryParameter("form", true, false, p.name, q, p.dest); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid query parameter "+p.name)
			return
		}
	}

	params := domain.NewPaginationParams(page, limit)
	filter := domain.DestinationFilter{Country: deref(country), Keyword: deref(keyword)}
	dests, total, err := s.catalog.List(r.Context(), filter, params)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	data := make([]Destination, len(dests))
	for i, d := range dests {
		data[i] = destinationToResponse(d)
	}
	writeJSON(w, http.StatusOK, DestinationList{
		Data:       data,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetDestination handles GET /destinations/{id}.
func (s *Server) GetDestination(w http.ResponseWriter, r *http.Request) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "id must be a UUID")
		return
	}

	d, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, destinationToResponse(d))
}

func destinationToResponse(d domain.DestinationDetail) Destination {
	return Destination{
		ID:          d.ID,
		Name:        d.Name,
		Country:     d.Country,
		Description: d.Description,
		Keywords:    nonNil(d.Keywords),
		Region:      d.Region,
		Activities:  domain.ActivityLabels(d.Activities),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
