package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/middleware"
)

func itineraryFixture() domain.Itinerary {
	tokyo := domain.PlannedStop{
		ScoredCandidate: domain.ScoredCandidate{
			Destination:     domain.Destination{ID: uuid.New(), Name: "Tokyo", Country: "Japan", Description: "Neon and temples"},
			Activities:      []domain.Activity{{Label: "Sushi making class"}, {Label: "Daikoku car meet"}},
			Score:           72,
			Matched:         []string{"sushi", "cars"},
			ActivityMatches: map[string][]string{"sushi": {"Sushi making class"}},
		},
		Days:       4,
		Region:     "East Asia",
		Suggestion: "Day 1: Tsukiji",
	}
	queenstown := domain.PlannedStop{
		ScoredCandidate: domain.ScoredCandidate{
			Destination: domain.Destination{ID: uuid.New(), Name: "Queenstown", Country: "New Zealand"},
			Score:       40,
			Matched:     []string{"hiking"},
		},
		Days:   1,
		Region: "Oceania",
	}
	return domain.Itinerary{
		Interests:    []string{"sushi", "hiking", "cars"},
		Stops:        []domain.PlannedStop{tokyo, queenstown},
		Explanations: []string{"Tokyo, Japan is a great match", "Queenstown, New Zealand is a good match"},
	}
}

func TestPlanTrip_returns200WithItinerary(t *testing.T) {
	var got domain.PlanRequest
	p := &mockPlanner{plan: func(_ context.Context, req domain.PlanRequest) (domain.Itinerary, error) {
		got = req
		return itineraryFixture(), nil
	}}

	rec := serve(t, newHTTPHandler(p, nil), http.MethodPost, "/plan-trip",
		[]byte(`{"user_input":"I like sushi, hiking, and cars","days":5}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PlanRequest{UserInput: "I like sushi, hiking, and cars", Days: 5}, got)

	var body handler.PlanTripResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []string{"sushi", "hiking", "cars"}, body.Interests)
	require.Len(t, body.Itinerary, 2)

	first := body.Itinerary[0]
	assert.Equal(t, "Tokyo", first.Destination)
	assert.Equal(t, []string{"Sushi making class", "Daikoku car meet"}, first.Activities)
	assert.Equal(t, 4, first.Days)
	assert.Equal(t, "East Asia", first.Region)
	require.NotNil(t, first.ItinerarySuggestion)
	assert.Equal(t, "Day 1: Tsukiji", *first.ItinerarySuggestion)

	second := body.Itinerary[1]
	assert.Nil(t, second.ItinerarySuggestion)
	assert.Equal(t, []string{}, second.Activities)
	assert.Equal(t, map[string][]string{}, second.ActivityMatches)

	assert.Equal(t, [][]string{{"sushi", "cars"}, {"hiking"}}, body.MatchedInterests)
	assert.Equal(t, map[string][]string{"sushi": {"Sushi making class"}}, body.ActivityInterestMap[0])
	assert.Len(t, body.Explanations, 2)
}

func TestPlanTrip_suggestionIsJSONNull(t *testing.T) {
	p := &mockPlanner{plan: func(context.Context, domain.PlanRequest) (domain.Itinerary, error) {
		return itineraryFixture(), nil
	}}

	rec := serve(t, newHTTPHandler(p, nil), http.MethodPost, "/plan-trip", []byte(`{"user_input":"x"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"itinerary_suggestion":null`)
}

func TestPlanTrip_defaultsToThreeDays(t *testing.T) {
	var got domain.PlanRequest
	p := &mockPlanner{plan: func(_ context.Context, req domain.PlanRequest) (domain.Itinerary, error) {
		got = req
		return domain.Itinerary{}, nil
	}}

	rec := serve(t, newHTTPHandler(p, nil), http.MethodPost, "/plan-trip", []byte(`{"user_input":"beaches"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultTripDays, got.Days)
	assert.JSONEq(t,
		`{"interests":[],"itinerary":[],"matched_interests":[],"activity_interest_map":[],"explanations":[]}`,
		rec.Body.String())
}

func TestPlanTrip_malformedJSON_returns400(t *testing.T) {
	p := &mockPlanner{plan: func(context.Context, domain.PlanRequest) (domain.Itinerary, error) {
		t.Fatal("planner must not be called")
		return domain.Itinerary{}, nil
	}}

	for _, body := range []string{`{"user_input":`, `[]`, `{"days":"five"}`} {
		rec := serve(t, newHTTPHandler(p, nil), http.MethodPost, "/plan-trip", []byte(body))
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "bad_request", decodeError(t, rec).Code)
	}
}

func TestPlanTrip_validationError_returns422(t *testing.T) {
	p := &mockPlanner{plan: func(_ context.Context, req domain.PlanRequest) (domain.Itinerary, error) {
		return domain.Itinerary{}, fmt.Errorf("service.PlanService.Plan: %w", req.Validate())
	}}

	rec := serve(t, newHTTPHandler(p, nil), http.MethodPost, "/plan-trip", []byte(`{"user_input":"x","days":31}`))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "validation_error", detail.Code)
	assert.Equal(t, "days must be between 1 and 30, got 31", detail.Message)
}

func TestPlanTrip_emptyCatalog_returns503(t *testing.T) {
	p := &mockPlanner{plan: func(context.Context, domain.PlanRequest) (domain.Itinerary, error) {
		return domain.Itinerary{}, fmt.Errorf("service.PlanService.Plan: %w", domain.ErrEmptyCatalog)
	}}

	rec := serve(t, newHTTPHandler(p, nil), http.MethodPost, "/plan-trip", []byte(`{}`))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "catalog_empty", decodeError(t, rec).Code)
}

func TestPlanTrip_unexpectedError_returns500WithoutDetails(t *testing.T) {
	p := &mockPlanner{plan: func(context.Context, domain.PlanRequest) (domain.Itinerary, error) {
		return domain.Itinerary{}, errors.New("pq: password authentication failed")
	}}

	rec := serve(t, newHTTPHandler(p, nil), http.MethodPost, "/plan-trip", []byte(`{}`))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "internal_error", detail.Code)
	assert.NotContains(t, detail.Message, "password")
}

func TestPlanTrip_bodyTooLarge_returns413(t *testing.T) {
	p := &mockPlanner{plan: func(context.Context, domain.PlanRequest) (domain.Itinerary, error) {
		t.Fatal("planner must not be called")
		return domain.Itinerary{}, nil
	}}
	h := middleware.NewMaxBodySizeHandler(64)(newHTTPHandler(p, nil))

	body := `{"user_input":"` + strings.Repeat("beach ", 50) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/plan-trip", strings.NewReader(body))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "request_too_large", decodeError(t, rec).Code)
}
