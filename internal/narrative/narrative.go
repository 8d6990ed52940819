// Package narrative writes the human-readable parts of an itinerary: the
// day-by-day plan for multi-day stops and a one-line explanation per stop.
package narrative

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Generator writes a day plan for one stop. The AI client satisfies it.
type Generator interface {
	Suggest(ctx context.Context, stop domain.PlannedStop, interests []string) (string, error)
}

// Narrator fills in itinerary suggestions, falling back to canned text.
type Narrator struct {
	gen Generator
	log *slog.Logger
}

// NewNarrator returns a Narrator. gen may be nil, in which case every
// multi-day stop gets the canned plan for its length.
func NewNarrator(gen Generator, log *slog.Logger) *Narrator {
	if log == nil {
		log = slog.Default()
	}
	return &Narrator{gen: gen, log: log}
}

// Annotate sets Suggestion on every stop of two or more days, in place.
// One-day stops are left empty. Generator failures are logged and
// replaced with CannedPlan; Annotate itself never fails. Stops are handled
// one after another so each call sees the remaining request deadline.
func (n *Narrator) Annotate(ctx context.Context, stops []domain.PlannedStop, interests []string) {
	for i := range stops {
		s := &stops[i]
		if s.Days < 2 {
			s.Suggestion = ""
			continue
		}
		s.Suggestion = n.suggest(ctx, *s, interests)
	}
}

func (n *Narrator) suggest(ctx context.Context, s domain.PlannedStop, interests []string) string {
	if n.gen == nil {
		return CannedPlan(s.Name, s.Days)
	}
	text, err := n.gen.Suggest(ctx, s, interests)
	if err != nil {
		n.log.WarnContext(ctx, "day plan generation failed, using canned plan",
			"destination", s.Name, "days", s.Days, "error", err)
		return CannedPlan(s.Name, s.Days)
	}
	return text
}

// CannedPlan returns the fixed plan text for a stay of days at destination.
// It returns "" for stays shorter than two days.
func CannedPlan(destination string, days int) string {
	switch {
	case days < 2:
		return ""
	case days == 2:
		return "Day 1: Explore major attractions and landmarks. Day 2: Experience local culture and cuisine."
	case days == 3:
		return "Day 1: Visit top sights. Day 2: Focus on your interests. Day 3: Discover hidden gems."
	case days == 4:
		return "Day 1: Main attractions. Day 2: Cultural experiences. Day 3: Your interests. Day 4: Relaxation and local neighborhoods."
	case days == 5:
		return "Day 1: Iconic landmarks. Day 2: Museums and culture. Day 3: Your favorite activities. Day 4: Day trip or nature. Day 5: Shopping and farewell."
	default:
		return fmt.Sprintf("Spend %d days exploring %s: Mix major sights (Days 1-2), your interests (Days 3-4), and local experiences (remaining days).", days, destination)
	}
}
