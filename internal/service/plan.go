// Package service contains the business logic of the trip planner API.
// Services validate inputs and orchestrate the catalog, the interest
// extractor and the planner. No SQL lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/metrics"
	"github.com/pkordes/trip-planner/internal/narrative"
	"github.com/pkordes/trip-planner/internal/planner"
	"github.com/pkordes/trip-planner/internal/repo"
)

// DefaultPathScore is the score given to stops picked at random when the
// request names no recognisable interest.
const DefaultPathScore = 60

// InterestExtractor turns free text into at most seven interest tokens.
// *interest.Resolver satisfies it.
type InterestExtractor interface {
	Extract(ctx context.Context, raw string) []string
}

// PlanService builds itineraries.
type PlanService struct {
	catalog   repo.CatalogRepo
	extractor InterestExtractor
	ranker    *planner.Ranker
	sequencer *planner.Sequencer
	narrator  *narrative.Narrator
	shuffle   func(n int, swap func(i, j int))
	log       *slog.Logger
}

// PlanOption customises a PlanService.
type PlanOption func(*PlanService)

// WithShuffle replaces the shuffle used by the random default path.
func WithShuffle(fn func(n int, swap func(i, j int))) PlanOption {
	return func(s *PlanService) { s.shuffle = fn }
}

// NewPlanService constructs a PlanService. The ranker must read activities
// from the same catalog.
func NewPlanService(
	catalog repo.CatalogRepo,
	extractor InterestExtractor,
	ranker *planner.Ranker,
	sequencer *planner.Sequencer,
	narrator *narrative.Narrator,
	log *slog.Logger,
	opts ...PlanOption,
) *PlanService {
	if log == nil {
		log = slog.Default()
	}
	s := &PlanService{
		catalog:   catalog,
		extractor: extractor,
		ranker:    ranker,
		sequencer: sequencer,
		narrator:  narrator,
		shuffle:   rand.Shuffle,
		log:       log,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Plan validates req and returns an itinerary whose stop days sum to
// req.Days. With no recognisable interests the stops are chosen at random.
//
// Errors: domain.ErrValidation for an out-of-range trip length,
// domain.ErrEmptyCatalog when there is nothing to choose from, and any
// catalog failure. Fallback scorer and narrative failures never surface.
func (s *PlanService) Plan(ctx context.Context, req domain.PlanRequest) (domain.Itinerary, error) {
	if err := req.Validate(); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.PlanService.Plan: %w", err)
	}
	start := time.Now()

	interests := s.extractor.Extract(ctx, req.UserInput)
	_, numCities := planner.PlanCities(req.Days)

	dests, err := s.catalog.ListDestinations(ctx)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.PlanService.Plan: %w", err)
	}
	if len(dests) == 0 {
		return domain.Itinerary{}, fmt.Errorf("service.PlanService.Plan: %w", domain.ErrEmptyCatalog)
	}

	var (
		selected []domain.ScoredCandidate
		path     string
	)
	if len(interests) == 0 {
		path = "default"
		selected, err = s.pickRandom(ctx, dests, numCities)
	} else {
		path = "matched"
		selected, err = s.pickMatched(ctx, dests, interests, numCities)
	}
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.PlanService.Plan: %w", err)
	}

	stops := planner.Distribute(s.sequencer.Sequence(selected), req.Days)
	s.narrator.Annotate(ctx, stops, interests)

	uncovered := planner.Uncovered(selected, interests)
	metrics.RecordPlan(path, len(stops), len(uncovered))
	s.log.InfoContext(ctx, "itinerary planned",
		"path", path,
		"days", req.Days,
		"interests", interests,
		"stops", len(stops),
		"uncovered", uncovered,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return domain.Itinerary{
		Interests:    interests,
		Stops:        stops,
		Explanations: narrative.Explain(stops),
	}, nil
}

func (s *PlanService) pickMatched(ctx context.Context, dests []domain.Destination, interests []string, n int) ([]domain.ScoredCandidate, error) {
	ranked, err := s.ranker.Rank(ctx, dests, interests, n)
	if err != nil {
		return nil, err
	}
	return planner.SelectCoverage(ranked, interests, n), nil
}

// pickRandom returns n distinct destinations in random order, each scored
// DefaultPathScore with no matched interests.
func (s *PlanService) pickRandom(ctx context.Context, dests []domain.Destination, n int) ([]domain.ScoredCandidate, error) {
	pool := make([]domain.Destination, len(dests))
	copy(pool, dests)
	s.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	out := make([]domain.ScoredCandidate, 0, min(n, len(pool)))
	for _, d := range pool[:min(n, len(pool))] {
		acts, err := s.catalog.ListActivities(ctx, d.ID)
		if err != nil {
			return nil, fmt.Errorf("activities for %s: %w", d.Name, err)
		}
		out = append(out, domain.ScoredCandidate{
			Destination:     d,
			Activities:      acts,
			Score:           DefaultPathScore,
			Matched:         []string{},
			ActivityMatches: map[string][]string{},
		})
	}
	return out, nil
}
