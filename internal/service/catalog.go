package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/planner"
	"github.com/pkordes/trip-planner/internal/repo"
)

// CatalogService serves the read-only destination browse endpoints.
type CatalogService struct {
	repo    repo.CatalogRepo
	regions *planner.RegionTable
}

// NewCatalogService constructs a CatalogService. A nil regions table means
// planner.DefaultRegionTable.
func NewCatalogService(r repo.CatalogRepo, regions *planner.RegionTable) *CatalogService {
	if regions == nil {
		regions = planner.DefaultRegionTable()
	}
	return &CatalogService{repo: r, regions: regions}
}

// List returns one page of destinations matching f with their activities
// and region, plus the total match count.
func (s *CatalogService) List(ctx context.Context, f domain.DestinationFilter, p domain.PaginationParams) ([]domain.DestinationDetail, int, error) {
	dests, total, err := s.repo.SearchDestinations(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.CatalogService.List: %w", err)
	}
	out := make([]domain.DestinationDetail, 0, len(dests))
	for _, d := range dests {
		detail, err := s.detail(ctx, d)
		if err != nil {
			return nil, 0, fmt.Errorf("service.CatalogService.List: %w", err)
		}
		out = append(out, detail)
	}
	return out, total, nil
}

// Get returns one destination. Returns domain.ErrNotFound for an unknown id.
func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (domain.DestinationDetail, error) {
	d, err := s.repo.GetDestination(ctx, id)
	if err != nil {
		return domain.DestinationDetail{}, fmt.Errorf("service.CatalogService.Get: %w", err)
	}
	detail, err := s.detail(ctx, d)
	if err != nil {
		return domain.DestinationDetail{}, fmt.Errorf("service.CatalogService.Get: %w", err)
	}
	return detail, nil
}

func (s *CatalogService) detail(ctx context.Context, d domain.Destination) (domain.DestinationDetail, error) {
	acts, err := s.repo.ListActivities(ctx, d.ID)
	if err != nil {
		return domain.DestinationDetail{}, err
	}
	return domain.DestinationDetail{Destination: d, Activities: acts, Region: s.regions.Region(d.Country)}, nil
}
