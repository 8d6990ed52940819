package repo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// MemoryCatalog is an immutable in-memory CatalogRepo. It is safe for
// concurrent use. The server uses it to hold a snapshot of the Postgres
// catalog; tests use it as a fixture.
type MemoryCatalog struct {
	dests []domain.Destination
	byID  map[uuid.UUID]int
	acts  map[uuid.UUID][]domain.Activity
}

// NewMemoryCatalog copies dests and acts into a new catalog. Destinations are
// ordered by name, then country. Each Activity's DestinationID is set from the
// map key.
func NewMemoryCatalog(dests []domain.Destination, acts map[uuid.UUID][]domain.Activity) *MemoryCatalog {
	c := &MemoryCatalog{
		dests: make([]domain.Destination, len(dests)),
		byID:  make(map[uuid.UUID]int, len(dests)),
		acts:  make(map[uuid.UUID][]domain.Activity, len(acts)),
	}
	for i, d := range dests {
		d.Keywords = slices.Clone(d.Keywords)
		c.dests[i] = d
	}
	slices.SortStableFunc(c.dests, func(a, b domain.Destination) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Country, b.Country))
	})
	for i, d := range c.dests {
		c.byID[d.ID] = i
	}
	for id, as := range acts {
		cp := make([]domain.Activity, len(as))
		for i, a := range as {
			a.DestinationID = id
			a.Keywords = slices.Clone(a.Keywords)
			cp[i] = a
		}
		c.acts[id] = cp
	}
	return c
}

// Snapshot loads the whole of src into a MemoryCatalog.
func Snapshot(ctx context.Context, src CatalogRepo) (*MemoryCatalog, error) {
	dests, err := src.ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.Snapshot: %w", err)
	}
	acts := make(map[uuid.UUID][]domain.Activity, len(dests))
	for _, d := range dests {
		as, err := src.ListActivities(ctx, d.ID)
		if err != nil {
			return nil, fmt.Errorf("repo.Snapshot: %w", err)
		}
		acts[d.ID] = as
	}
	return NewMemoryCatalog(dests, acts), nil
}

// ListDestinations implements CatalogRepo. The result, including each
// Keywords slice, is a copy the caller may modify.
func (c *MemoryCatalog) ListDestinations(_ context.Context) ([]domain.Destination, error) {
	out := make([]domain.Destination, len(c.dests))
	for i, d := range c.dests {
		out[i] = cloneDestination(d)
	}
	return out, nil
}

// ListActivities implements CatalogRepo. Unknown ids yield an empty slice.
func (c *MemoryCatalog) ListActivities(_ context.Context, destinationID uuid.UUID) ([]domain.Activity, error) {
	as := c.acts[destinationID]
	out := make([]domain.Activity, len(as))
	for i, a := range as {
		a.Keywords = slices.Clone(a.Keywords)
		out[i] = a
	}
	return out, nil
}

// GetDestination implements CatalogRepo.
func (c *MemoryCatalog) GetDestination(_ context.Context, id uuid.UUID) (domain.Destination, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Destination{}, fmt.Errorf("repo.MemoryCatalog.GetDestination: %w", domain.ErrNotFound)
	}
	return cloneDestination(c.dests[i]), nil
}

// SearchDestinations implements CatalogRepo with the same filter semantics
// as the Postgres catalog: exact case-insensitive country, exact keyword.
func (c *MemoryCatalog) SearchDestinations(_ context.Context, f domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int, error) {
	var matched []domain.Destination
	for _, d := range c.dests {
		if f.Country != "" && !strings.EqualFold(d.Country, f.Country) {
			continue
		}
		if f.Keyword != "" && !slices.Contains(d.Keywords, f.Keyword) {
			continue
		}
		matched = append(matched, d)
	}
	start := min(p.Offset(), len(matched))
	end := min(start+p.Limit, len(matched))
	page := make([]domain.Destination, 0, end-start)
	for _, d := range matched[start:end] {
		page = append(page, cloneDestination(d))
	}
	return page, len(matched), nil
}

func cloneDestination(d domain.Destination) domain.Destination {
	d.Keywords = slices.Clone(d.Keywords)
	return d
}

// Len returns the number of destinations.
func (c *MemoryCatalog) Len() int { return len(c.dests) }
