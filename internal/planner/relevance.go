package planner

import (
	"strings"
	"unicode/utf8"

	"github.com/pkordes/trip-planner/internal/domain"
)

// MatchKind identifies which rule matched an interest token to a destination.
// Rules are tried in declaration order and the first hit wins.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchExact
	MatchVariant
	MatchSubstring
	MatchDescription
)

// Weight returns the accumulator weight of a match kind.
func (k MatchKind) Weight() int {
	switch k {
	case MatchExact:
		return 100
	case MatchVariant:
		return 95
	case MatchSubstring:
		return 70
	case MatchDescription:
		return 40
	default:
		return 0
	}
}

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchVariant:
		return "variant"
	case MatchSubstring:
		return "substring"
	case MatchDescription:
		return "description"
	default:
		return "none"
	}
}

// variantSuffixes are the inflections treated as the same word:
// beach/beaches, mountain/mountains, ski/skiing.
var variantSuffixes = []string{"s", "es", "ing"}

// minSubstringLen is the length both sides must exceed for a containment match.
const minSubstringLen = 3

// Relevance is the keyword score of one destination for one request.
type Relevance struct {
	// Score is Raw normalized to 0-100.
	Score int
	// Matched lists the request tokens that matched any rule, de-duplicated,
	// in request order.
	Matched []string
	// Raw is the sum of matched weights.
	Raw int
}

// ScoreRelevance scores tokens against the destination's keywords and
// description. An empty token list scores 0.
func ScoreRelevance(tokens []string, d domain.Destination) Relevance {
	rel := Relevance{Matched: []string{}}
	if len(tokens) == 0 {
		return rel
	}

	desc := strings.ToLower(d.Description)
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		kind := classify(normalize(tok), d.Keywords, desc)
		if kind == MatchNone {
			continue
		}
		rel.Raw += kind.Weight()
		if !seen[tok] {
			seen[tok] = true
			rel.Matched = append(rel.Matched, tok)
		}
	}

	rel.Score = min(100, rel.Raw*100/(len(tokens)*100))
	return rel
}

// ClassifyToken reports which rule matches token against keywords and description.
func ClassifyToken(token string, keywords []string, description string) MatchKind {
	return classify(normalize(token), keywords, strings.ToLower(description))
}

// classify expects token normalized and desc lower-cased.
func classify(token string, keywords []string, desc string) MatchKind {
	if token == "" {
		return MatchNone
	}
	for _, kw := range keywords {
		if token == normalize(kw) {
			return MatchExact
		}
	}
	for _, kw := range keywords {
		if isVariant(token, normalize(kw)) {
			return MatchVariant
		}
	}
	if utf8.RuneCountInString(token) > minSubstringLen {
		for _, kw := range keywords {
			kw = normalize(kw)
			if utf8.RuneCountInString(kw) > minSubstringLen &&
				(strings.Contains(kw, token) || strings.Contains(token, kw)) {
				return MatchSubstring
			}
		}
	}
	if strings.Contains(desc, token) {
		return MatchDescription
	}
	return MatchNone
}

// isVariant reports whether a and b differ only by one trailing suffix.
func isVariant(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	for _, suf := range variantSuffixes {
		if a == b+suf || b == a+suf {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
