package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/planner"
)

func stopNames(ps []domain.PlannedStop) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestSequencer_GroupsRegions(t *testing.T) {
	s := planner.NewSequencer(nil)
	cands := []domain.ScoredCandidate{
		cand("Paris", "France", 70),
		cand("Tokyo", "Japan", 95),
		cand("Berlin", "Germany", 60),
		cand("Kyoto", "Japan", 50),
		cand("Bangkok", "Thailand", 80),
	}

	got := s.Sequence(cands)

	assert.Equal(t, []string{"Tokyo", "Kyoto", "Bangkok", "Paris", "Berlin"}, stopNames(got))
	assert.Equal(t, []string{"East Asia", "East Asia", "Southeast Asia", "Western Europe", "Central Europe"},
		[]string{got[0].Region, got[1].Region, got[2].Region, got[3].Region, got[4].Region})
	for _, p := range got {
		assert.Zero(t, p.Days)
	}
}

func TestSequencer_UnknownCountryIsLastResort(t *testing.T) {
	s := planner.NewSequencer(nil)
	cands := []domain.ScoredCandidate{
		cand("Nowhere", "Atlantis", 99),
		cand("Lisbon", "Portugal", 40),
		cand("Madrid", "Spain", 30),
	}

	got := s.Sequence(cands)

	// Other only wins the first slot on score, then has no neighbours.
	assert.Equal(t, []string{"Nowhere", "Lisbon", "Madrid"}, stopNames(got))
	assert.Equal(t, planner.OtherRegion, got[0].Region)
}

func TestSequencer_EqualScoresKeepInputOrder(t *testing.T) {
	s := planner.NewSequencer(nil)
	cands := []domain.ScoredCandidate{
		cand("Rome", "Italy", 50),
		cand("Athens", "Greece", 50),
		cand("Split", "Croatia", 50),
	}

	assert.Equal(t, []string{"Rome", "Athens", "Split"}, stopNames(s.Sequence(cands)))
}

// The walk only looks one hop ahead: from East Asia it jumps to South Asia
// on score, then has to come back through Southeast Asia.
func TestSequencer_OneHopGreedyCanBacktrack(t *testing.T) {
	s := planner.NewSequencer(nil)
	cands := []domain.ScoredCandidate{
		cand("Tokyo", "Japan", 90),
		cand("Delhi", "India", 80),
		cand("Hanoi", "Vietnam", 70),
	}

	got := s.Sequence(cands)

	assert.Equal(t, []string{"Tokyo", "Delhi", "Hanoi"}, stopNames(got))
}

func TestSequencer_IsPermutation(t *testing.T) {
	s := planner.NewSequencer(nil)
	countries := []string{"Japan", "France", "Peru", "Kenya", "Atlantis", "Canada", "Japan", "Italy"}

	for n := 1; n <= len(countries); n++ {
		var cands []domain.ScoredCandidate
		for i := range n {
			cands = append(cands, cand(countries[i]+string(rune('A'+i)), countries[i], (i*37)%100))
		}

		got := s.Sequence(cands)

		require.Len(t, got, n)
		assert.ElementsMatch(t, names(cands), stopNames(got))
	}
}

func TestSequencer_Empty(t *testing.T) {
	assert.Empty(t, planner.NewSequencer(nil).Sequence(nil))
}
