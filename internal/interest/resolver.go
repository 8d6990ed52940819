package interest

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// MaxTokens bounds how many interests one request carries.
const MaxTokens = 7

// Expander maps words the Table does not know to catalog-style keywords.
type Expander interface {
	Expand(ctx context.Context, words []string) ([]string, error)
}

// PassThrough is the Expander used when no language model is configured:
// unknown words are kept as they are.
type PassThrough struct{}

// Expand returns words unchanged.
func (PassThrough) Expand(_ context.Context, words []string) ([]string, error) {
	return words, nil
}

// stopWords are filler verbs and connectives that never name an interest.
var stopWords = map[string]bool{
	"and": true, "the": true, "like": true, "love": true, "want": true, "need": true,
	"going": true, "drinking": true, "playing": true, "eating": true, "watching": true,
	"play": true, "drink": true, "eat": true, "watch": true, "go": true,
}

// Resolver extracts interest tokens from free text.
type Resolver struct {
	lookup   Lookup
	expander Expander
	cache    *Cache
	related  bool
	log      *slog.Logger
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithRelatedKeywords fills the token cap with the related keywords the
// Lookup returns after each primary. Every extra token lowers the keyword
// score of destinations matching only one stated interest, so enable it only
// when a fallback scorer is there to rescue the weakly scored ones.
func WithRelatedKeywords() ResolverOption {
	return func(r *Resolver) { r.related = true }
}

// NewResolver constructs a Resolver. A nil expander means PassThrough and a
// nil cache disables caching. Without WithRelatedKeywords only primary
// keywords and expander output are returned.
func NewResolver(lookup Lookup, expander Expander, cache *Cache, log *slog.Logger, opts ...ResolverOption) *Resolver {
	if expander == nil {
		expander = PassThrough{}
	}
	if log == nil {
		log = slog.Default()
	}
	r := &Resolver{lookup: lookup, expander: expander, cache: cache, log: log}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Extract returns at most MaxTokens distinct lower-case interests found in
// raw. Each recognised word contributes its primary keyword first, so every
// stated interest survives the cap before any related keyword is added.
// Unknown words go to the Expander; if it fails they are kept verbatim.
// Empty or filler-only input yields an empty, non-nil slice.
func (r *Resolver) Extract(ctx context.Context, raw string) []string {
	key := CacheKey(raw)
	if r.cache != nil {
		if got, ok := r.cache.Get(key); ok {
			r.log.DebugContext(ctx, "interest cache hit", "interests", got)
			return got
		}
	}

	words := Words(raw)
	var (
		primaries []string
		secondary [][]string
		unknown   []string
	)
	for _, w := range words {
		kws, ok := r.lookup.Lookup(w)
		if !ok {
			unknown = append(unknown, w)
			continue
		}
		primaries = append(primaries, kws[0])
		if r.related {
			secondary = append(secondary, kws[1:])
		}
	}

	out := newTokenSet(MaxTokens)
	out.add(primaries...)

	if len(unknown) > 0 {
		expanded, err := r.expander.Expand(ctx, unknown)
		if err != nil {
			r.log.WarnContext(ctx, "interest expansion failed, keeping words as given",
				"error", err, "words", unknown)
			expanded = unknown
		}
		for _, e := range expanded {
			out.add(normalize(e))
		}
	}

	// related keywords, one per word per round
	for round := 0; r.related && !out.full(); round++ {
		more := false
		for _, s := range secondary {
			if round < len(s) {
				out.add(s[round])
				more = true
			}
		}
		if !more {
			break
		}
	}

	result := out.list()
	if r.cache != nil {
		r.cache.Set(key, result)
	}
	r.log.DebugContext(ctx, "interests extracted", "words", words, "interests", result)
	return result
}

// Words splits raw into candidate interest words: lower-cased, stripped of
// punctuation, longer than two characters and not a stop word.
func Words(raw string) []string {
	fields := strings.Fields(strings.ReplaceAll(strings.ToLower(raw), ",", " "))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, `.!?;:"'()`)
		if utf8.RuneCountInString(f) <= 2 || stopWords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// tokenSet is an insertion-ordered, bounded set of non-empty tokens.
type tokenSet struct {
	items []string
	seen  map[string]bool
	limit int
}

func newTokenSet(limit int) *tokenSet {
	return &tokenSet{items: make([]string, 0, limit), seen: map[string]bool{}, limit: limit}
}

func (s *tokenSet) add(toks ...string) {
	for _, t := range toks {
		if t == "" || s.seen[t] || s.full() {
			continue
		}
		s.seen[t] = true
		s.items = append(s.items, t)
	}
}

func (s *tokenSet) full() bool { return len(s.items) >= s.limit }

func (s *tokenSet) list() []string { return s.items }
