package domain

import "fmt"

// Trip length bounds accepted by the planner, inclusive.
const (
	MinTripDays     = 1
	MaxTripDays     = 30
	DefaultTripDays = 3
)

// PlanRequest is the inbound planning request after transport decoding.
type PlanRequest struct {
	UserInput string
	Days      int
}

// Itinerary is the result of one planning request.
// Stops are in travel order; Explanations is positionally aligned with Stops.
type Itinerary struct {
	Interests    []string
	Stops        []PlannedStop
	Explanations []string
}

// TotalDays returns the sum of day counts across all stops.
func (it Itinerary) TotalDays() int {
	total := 0
	for _, s := range it.Stops {
		total += s.Days
	}
	return total
}

// Validate checks the trip length. Errors wrap ErrValidation.
func (r PlanRequest) Validate() error {
	if r.Days < MinTripDays || r.Days > MaxTripDays {
		return fmt.Errorf("days must be between %d and %d, got %d: %w", MinTripDays, MaxTripDays, r.Days, ErrValidation)
	}
	return nil
}
