package planner

import "github.com/pkordes/trip-planner/internal/domain"

// Sequencer orders selected candidates so consecutive stops stay in the same
// or a neighbouring region where possible.
type Sequencer struct {
	regions *RegionTable
}

// NewSequencer returns a Sequencer over regions. A nil table means
// DefaultRegionTable.
func NewSequencer(regions *RegionTable) *Sequencer {
	if regions == nil {
		regions = DefaultRegionTable()
	}
	return &Sequencer{regions: regions}
}

// Regions returns the table the sequencer routes over.
func (s *Sequencer) Regions() *RegionTable { return s.regions }

// Sequence returns a permutation of cands as planned stops with Region set and
// Days left zero. The first stop is the highest scored. Each next stop is the
// highest scored remaining one in the current region, else in a neighbouring
// region, else anywhere. Equal scores keep input order.
//
// This is a one-hop greedy walk: it can bounce between two regions.
func (s *Sequencer) Sequence(cands []domain.ScoredCandidate) []domain.PlannedStop {
	out := make([]domain.PlannedStop, 0, len(cands))
	if len(cands) == 0 {
		return out
	}

	region := make([]string, len(cands))
	for i, c := range cands {
		region[i] = s.regions.Region(c.Country)
	}
	placed := make([]bool, len(cands))

	place := func(i int) {
		placed[i] = true
		out = append(out, domain.PlannedStop{ScoredCandidate: cands[i], Region: region[i]})
	}

	place(s.best(cands, placed, func(int) bool { return true }))
	for len(out) < len(cands) {
		cur := out[len(out)-1].Region
		next := s.best(cands, placed, func(i int) bool { return region[i] == cur })
		if next < 0 {
			next = s.best(cands, placed, func(i int) bool { return s.regions.IsAdjacent(cur, region[i]) })
		}
		if next < 0 {
			next = s.best(cands, placed, func(int) bool { return true })
		}
		place(next)
	}
	return out
}

// best returns the index of the first highest-scored unplaced candidate that
// satisfies ok, or -1.
func (s *Sequencer) best(cands []domain.ScoredCandidate, placed []bool, ok func(int) bool) int {
	best := -1
	for i, c := range cands {
		if placed[i] || !ok(i) {
			continue
		}
		if best < 0 || c.Score > cands[best].Score {
			best = i
		}
	}
	return best
}
