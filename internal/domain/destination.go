// Package domain contains the core data types for the trip planner.
// This package has no dependencies on other internal packages and is
// imported by every layer (repo, planner, service, handler).
package domain

import "github.com/google/uuid"

// Destination is a single city in the catalog.
// Keywords are normalized (lower-case, trimmed); their order carries no meaning.
// A Destination is read-only for the lifetime of a planning request.
type Destination struct {
	ID          uuid.UUID
	Name        string
	Country     string
	Description string
	Keywords    []string
}

// Activity is something to do at a destination.
// It belongs to exactly one Destination and is listed in catalog order.
type Activity struct {
	ID            uuid.UUID
	DestinationID uuid.UUID
	Label         string
	Keywords      []string
}

// ActivityLabels returns the labels of acts in order.
// Always returns a non-nil slice.
func ActivityLabels(acts []Activity) []string {
	out := make([]string, 0, len(acts))
	for _, a := range acts {
		out = append(out, a.Label)
	}
	return out
}

// DestinationFilter narrows a catalog listing. Empty fields match everything.
// Country matches case-insensitively; Keyword must equal one of the
// destination's keywords.
type DestinationFilter struct {
	Country string
	Keyword string
}

// DestinationDetail is a Destination with its activities and region, as
// shown by the catalog browse endpoints.
type DestinationDetail struct {
	Destination
	Activities []Activity
	Region     string
}
