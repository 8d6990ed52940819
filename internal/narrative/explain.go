package narrative

import (
	"fmt"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Explain returns one sentence per stop saying why it was chosen, worded by
// score band and naming up to three matched interests.
func Explain(stops []domain.PlannedStop) []string {
	out := make([]string, len(stops))
	for i, s := range stops {
		out[i] = explain(s.Name, s.Country, s.Matched, s.Score)
	}
	return out
}

func explain(name, country string, matched []string, score int) string {
	place := name + ", " + country
	if len(matched) == 0 {
		return place + " is a highly-rated destination that offers diverse experiences for travelers."
	}
	interests := strings.Join(matched[:min(3, len(matched))], ", ")
	switch {
	case score >= 80:
		return fmt.Sprintf("%s is an excellent match (%d%% confidence) for your interests in %s.", place, score, interests)
	case score >= 60:
		return fmt.Sprintf("%s is a great match (%d%% confidence) based on your interests in %s.", place, score, interests)
	case score >= 40:
		return fmt.Sprintf("%s is a good match (%d%% confidence) for %s.", place, score, interests)
	default:
		return fmt.Sprintf("%s was selected as a popular destination (%d%% confidence).", place, score)
	}
}
