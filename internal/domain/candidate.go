package domain

// ScoredCandidate pairs a Destination with its relevance for one request.
//
// Score is always within [0,100]. Matched is a subset of the request's
// interest tokens with duplicates collapsed, kept in request order.
// Raw is the pre-normalization accumulator, used only for tie-breaking.
// ActivityMatches maps an interest token to the activity labels it matched.
type ScoredCandidate struct {
	Destination
	Activities      []Activity
	Score           int
	Matched         []string
	Raw             int
	ActivityMatches map[string][]string
}

// PlannedStop is a ScoredCandidate that has been placed on the route and
// given a share of the trip. Days is always >= 1.
// Suggestion is empty for one-day stops.
type PlannedStop struct {
	ScoredCandidate
	Days       int
	Region     string
	Suggestion string
}
