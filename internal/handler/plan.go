package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// PlanTripRequest is the body of POST /plan-trip. Days defaults to
// domain.DefaultTripDays when omitted.
type PlanTripRequest struct {
	UserInput string `json:"user_input"`
	Days      *int   `json:"days"`
}

// PlanTripResponse is the body of a successful POST /plan-trip.
// MatchedInterests and ActivityInterestMap are positionally aligned with
// Itinerary.
type PlanTripResponse struct {
	Interests           []string              `json:"interests"`
	Itinerary           []ItineraryStop       `json:"itinerary"`
	MatchedInterests    [][]string            `json:"matched_interests"`
	ActivityInterestMap []map[string][]string `json:"activity_interest_map"`
	Explanations        []string              `json:"explanations"`
}

// ItineraryStop is one stop of the itinerary.
type ItineraryStop struct {
	DestinationID       uuid.UUID           `json:"destination_id"`
	Destination         string              `json:"destination"`
	Country             string              `json:"country"`
	Description         string              `json:"description"`
	Activities          []string            `json:"activities"`
	Score               int                 `json:"score"`
	Days                int                 `json:"days"`
	ItinerarySuggestion *string             `json:"itinerary_suggestion"`
	Region              string              `json:"region"`
	Matched             []string            `json:"matched"`
	ActivityMatches     map[string][]string `json:"activity_matches"`
}

// PlanTrip handles POST /plan-trip.
func (s *Server) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var body PlanTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", "request body must be a JSON object")
		return
	}

	req := domain.PlanRequest{UserInput: body.UserInput, Days: domain.DefaultTripDays}
	if body.Days != nil {
		req.Days = *body.Days
	}

	it, err := s.plans.Plan(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, itineraryToResponse(it))
}

func itineraryToResponse(it domain.Itinerary) PlanTripResponse {
	resp := PlanTripResponse{
		Interests:           nonNil(it.Interests),
		Itinerary:           make([]ItineraryStop, len(it.Stops)),
		MatchedInterests:    make([][]string, len(it.Stops)),
		ActivityInterestMap: make([]map[string][]string, len(it.Stops)),
		Explanations:        nonNil(it.Explanations),
	}
	for i, st := range it.Stops {
		stop := stopToResponse(st)
		resp.Itinerary[i] = stop
		resp.MatchedInterests[i] = stop.Matched
		resp.ActivityInterestMap[i] = stop.ActivityMatches
	}
	return resp
}

func stopToResponse(st domain.PlannedStop) ItineraryStop {
	out := ItineraryStop{
		DestinationID:   st.ID,
		Destination:     st.Name,
		Country:         st.Country,
		Description:     st.Description,
		Activities:      domain.ActivityLabels(st.Activities),
		Score:           st.Score,
		Days:            st.Days,
		Region:          st.Region,
		Matched:         nonNil(st.Matched),
		ActivityMatches: st.ActivityMatches,
	}
	if out.ActivityMatches == nil {
		out.ActivityMatches = map[string][]string{}
	}
	if st.Suggestion != "" {
		text := st.Suggestion
		out.ItinerarySuggestion = &text
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
