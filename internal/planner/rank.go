package planner

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// FallbackScorer estimates relevance for destinations the keyword scorer
// ranks weakly. ScoreBatch returns one 0-100 score per summary, in order.
// Implementations may return fewer scores than summaries; missing entries
// are filled with Thresholds.DefaultFallbackScore.
type FallbackScorer interface {
	ScoreBatch(ctx context.Context, summaries []string, interests []string) ([]int, error)
}

// ActivityLister loads the activities of one destination.
// The catalog repo satisfies it.
type ActivityLister interface {
	ListActivities(ctx context.Context, destinationID uuid.UUID) ([]domain.Activity, error)
}

// Ranker turns a catalog and a list of interests into scored candidates.
type Ranker struct {
	activities ActivityLister
	fallback   FallbackScorer
	th         Thresholds
	log        *slog.Logger
}

// NewRanker constructs a Ranker. fallback may be nil, in which case weak
// destinations are omitted rather than given a fabricated score.
// Zero fields in th are filled from DefaultThresholds.
func NewRanker(activities ActivityLister, fallback FallbackScorer, th Thresholds, log *slog.Logger) *Ranker {
	if log == nil {
		log = slog.Default()
	}
	return &Ranker{activities: activities, fallback: fallback, th: th.withDefaults(), log: log}
}

// Thresholds returns the effective thresholds.
func (r *Ranker) Thresholds() Thresholds {
	return r.th
}

// preScored is a destination with its keyword relevance, before activities.
type preScored struct {
	dest domain.Destination
	rel  Relevance
}

// Rank scores every destination and returns the accepted candidates ordered
// by score then matched-interest count, both descending. When no candidate
// survives the thresholds it falls back to the best keyword matches so the
// result is never empty for a non-empty catalog. numCities bounds only that
// fallback path.
//
// Errors come from the ActivityLister only; fallback scorer failures are
// logged and replaced with the default score.
func (r *Ranker) Rank(ctx context.Context, dests []domain.Destination, tokens []string, numCities int) ([]domain.ScoredCandidate, error) {
	pre := make([]preScored, 0, len(dests))
	for _, d := range dests {
		pre = append(pre, preScored{dest: d, rel: ScoreRelevance(tokens, d)})
	}
	slices.SortStableFunc(pre, func(a, b preScored) int {
		if c := cmp.Compare(b.rel.Score, a.rel.Score); c != 0 {
			return c
		}
		return cmp.Compare(b.rel.Raw, a.rel.Raw)
	})

	var strong, weak []preScored
	for _, p := range pre {
		if p.rel.Score >= r.th.StrongMatch {
			strong = append(strong, p)
		} else {
			weak = append(weak, p)
		}
	}
	r.log.DebugContext(ctx, "keyword ranking", "destinations", len(pre), "strong", len(strong), "weak", len(weak))

	final := make([]domain.ScoredCandidate, 0, len(strong))
	for _, p := range strong[:min(len(strong), r.th.StrongLimit)] {
		c, err := r.finalize(ctx, p, p.rel.Score, p.rel.Matched, tokens)
		if err != nil {
			return nil, err
		}
		final = append(final, c)
	}

	if len(weak) > 0 && r.fallback != nil {
		scored, err := r.scoreWeak(ctx, weak[:min(len(weak), r.th.WeakLimit)], tokens)
		if err != nil {
			return nil, err
		}
		final = append(final, scored...)
	}

	slices.SortStableFunc(final, func(a, b domain.ScoredCandidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(len(b.Matched), len(a.Matched))
	})
	final = slices.DeleteFunc(final, func(c domain.ScoredCandidate) bool {
		return c.Score < r.th.FinalFloor
	})
	if len(final) > 0 {
		return final, nil
	}

	src := strong
	if len(src) == 0 {
		src = pre
	}
	src = src[:min(len(src), max(0, numCities))]
	r.log.WarnContext(ctx, "no candidates passed thresholds, using best keyword matches",
		"fallback_count", len(src))

	out := make([]domain.ScoredCandidate, 0, len(src))
	for _, p := range src {
		c, err := r.finalize(ctx, p, 0, p.rel.Matched, tokens)
		if err != nil {
			return nil, err
		}
		c.Score = max(r.th.FinalFloor, p.rel.Score)
		out = append(out, c)
	}
	return out, nil
}

// scoreWeak sends weak destinations to the fallback scorer in batches and
// keeps those scoring at least FallbackAccept.
func (r *Ranker) scoreWeak(ctx context.Context, weak []preScored, tokens []string) ([]domain.ScoredCandidate, error) {
	summaries := make([]string, len(weak))
	for i, p := range weak {
		summaries[i] = Summary(p.dest)
	}
	scores := r.fallbackScores(ctx, summaries, tokens)

	var out []domain.ScoredCandidate
	for i, p := range weak {
		if scores[i] < r.th.FallbackAccept {
			continue
		}
		matched := p.rel.Matched
		if len(matched) == 0 && len(tokens) > 0 {
			matched = []string{tokens[0]}
		}
		c, err := r.finalize(ctx, p, scores[i], matched, tokens)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	r.log.DebugContext(ctx, "fallback scoring", "sent", len(weak), "accepted", len(out))
	return out, nil
}

// fallbackScores returns exactly len(summaries) scores in [0,100].
func (r *Ranker) fallbackScores(ctx context.Context, summaries, tokens []string) []int {
	out := make([]int, 0, len(summaries))
	for start := 0; start < len(summaries); start += r.th.BatchSize {
		batch := summaries[start:min(len(summaries), start+r.th.BatchSize)]
		got, err := r.fallback.ScoreBatch(ctx, batch, tokens)
		if err != nil {
			r.log.WarnContext(ctx, "fallback scorer failed, using default score",
				"error", err, "batch_size", len(batch), "default", r.th.DefaultFallbackScore)
			got = nil
		}
		for i := range batch {
			s := r.th.DefaultFallbackScore
			if i < len(got) {
				s = min(100, max(0, got[i]))
			}
			out = append(out, s)
		}
	}
	return out
}

// finalize loads activities, applies the activity boost for tokens to base
// and records the matched interests.
func (r *Ranker) finalize(ctx context.Context, p preScored, base int, matched, tokens []string) (domain.ScoredCandidate, error) {
	acts, err := r.activities.ListActivities(ctx, p.dest.ID)
	if err != nil {
		return domain.ScoredCandidate{}, fmt.Errorf("planner.Ranker.Rank: activities for %s: %w", p.dest.Name, err)
	}
	boost, actMatches := MatchActivities(acts, tokens)
	return domain.ScoredCandidate{
		Destination:     p.dest,
		Activities:      acts,
		Score:           applyBoost(base, boost),
		Matched:         matched,
		Raw:             p.rel.Raw,
		ActivityMatches: actMatches,
	}, nil
}

// Summary renders the one-line description sent to the fallback scorer:
// "Name, Country: first 80 characters of the description".
func Summary(d domain.Destination) string {
	desc := []rune(d.Description)
	if len(desc) > 80 {
		desc = desc[:80]
	}
	return fmt.Sprintf("%s, %s: %s", d.Name, d.Country, string(desc))
}
