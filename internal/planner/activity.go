package planner

import (
	"slices"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
)

const (
	// ActivityBoostPerMatch is added for every (activity, interest) hit.
	ActivityBoostPerMatch = 3
	// ActivityBoostCap bounds the total activity boost.
	ActivityBoostCap = 20
)

// MatchActivities returns the activity boost for tokens and, per token, the
// labels of the activities it matched. A token matches an activity when it
// is one of the activity's keywords or appears in its label
// (case-insensitive). The returned map is never nil.
func MatchActivities(acts []domain.Activity, tokens []string) (int, map[string][]string) {
	matches := map[string][]string{}
	acc := 0
	for _, act := range acts {
		label := strings.ToLower(act.Label)
		for _, tok := range tokens {
			t := normalize(tok)
			if t == "" {
				continue
			}
			if slices.ContainsFunc(act.Keywords, func(kw string) bool { return normalize(kw) == t }) ||
				strings.Contains(label, t) {
				acc += ActivityBoostPerMatch
				matches[tok] = append(matches[tok], act.Label)
			}
		}
	}
	return min(ActivityBoostCap, acc), matches
}

// applyBoost adds boost to score and caps the sum at 100.
func applyBoost(score, boost int) int {
	return min(100, max(0, score)+boost)
}
