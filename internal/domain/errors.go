package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the catalog.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when request fields are malformed or out of range
// (e.g. days outside [1,30]). Handlers should map this to HTTP 422.
var ErrValidation = errors.New("validation error")

// ErrExternalService wraps failures, timeouts and unparsable replies from
// the fallback scorer, the interest expander or the narrative generator.
// It never reaches an HTTP client: callers substitute a documented default.
var ErrExternalService = errors.New("external service error")

// ErrConfiguration is returned when a collaborator is used without the
// credentials or settings it needs.
var ErrConfiguration = errors.New("configuration error")

// ErrEmptyCatalog is returned when the catalog holds no destinations, so no
// itinerary can be produced. Handlers should map this to HTTP 503.
var ErrEmptyCatalog = errors.New("catalog is empty")
