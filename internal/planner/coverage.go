package planner

import "github.com/pkordes/trip-planner/internal/domain"

// SelectCoverage picks at most target candidates, preferring those that cover
// interests no earlier pick covered.
//
// Phase 1 repeatedly takes the candidate matching the most still-uncovered
// tokens, ties going to the higher score and then to input order. It stops
// when target is reached, nothing new can be covered, or tokens is empty.
// Phase 2 fills the remaining slots with the highest-scored leftovers.
//
// The result is in pick order and never shorter than min(target, len(cands)).
func SelectCoverage(cands []domain.ScoredCandidate, tokens []string, target int) []domain.ScoredCandidate {
	if target <= 0 || len(cands) == 0 {
		return []domain.ScoredCandidate{}
	}

	taken := make([]bool, len(cands))
	covered := make(map[string]bool, len(tokens))
	selected := make([]domain.ScoredCandidate, 0, min(target, len(cands)))

	for len(selected) < target && len(tokens) > 0 {
		best, bestNew := -1, 0
		for i, c := range cands {
			if taken[i] {
				continue
			}
			n := newCoverage(c.Matched, covered)
			switch {
			case n > bestNew:
				best, bestNew = i, n
			case n == bestNew && n > 0 && c.Score > cands[best].Score:
				best = i
			}
		}
		if best < 0 {
			break
		}
		taken[best] = true
		selected = append(selected, cands[best])
		for _, m := range cands[best].Matched {
			covered[m] = true
		}
	}

	for len(selected) < target {
		best := -1
		for i, c := range cands {
			if taken[i] {
				continue
			}
			if best < 0 || c.Score > cands[best].Score {
				best = i
			}
		}
		if best < 0 {
			break
		}
		taken[best] = true
		selected = append(selected, cands[best])
	}
	return selected
}

// Uncovered returns the tokens no candidate in sel matches, in token order.
func Uncovered(sel []domain.ScoredCandidate, tokens []string) []string {
	covered := map[string]bool{}
	for _, c := range sel {
		for _, m := range c.Matched {
			covered[m] = true
		}
	}
	var out []string
	for _, t := range tokens {
		if !covered[t] {
			out = append(out, t)
		}
	}
	return out
}

// newCoverage counts distinct entries of matched not yet in covered.
func newCoverage(matched []string, covered map[string]bool) int {
	n := 0
	seen := make(map[string]bool, len(matched))
	for _, m := range matched {
		if covered[m] || seen[m] {
			continue
		}
		seen[m] = true
		n++
	}
	return n
}
