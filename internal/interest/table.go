// Package interest turns free-text travel preferences into a short list of
// normalized interest tokens.
//
// Extraction runs in two stages. A fixed keyword Table resolves the words it
// knows. Whatever remains goes to an Expander, which may call a language
// model, apply a heuristic, or return the words unchanged.
package interest

import "strings"

// Lookup resolves one lower-cased word to catalog keywords. The first token
// returned is the word's primary meaning; the rest are related keywords.
type Lookup interface {
	Lookup(word string) ([]string, bool)
}

// Table is a Lookup over three fixed maps: aliases rewrite a word to one or
// more keywords, related adds looser associations, and known is the set of
// keywords present in the catalog. Only known keywords are ever returned.
type Table struct {
	aliases map[string][]string
	related map[string][]string
	known   map[string]bool
}

// NewTable builds a Table. The maps are not copied and must not be modified
// afterwards.
func NewTable(aliases, related map[string][]string, known []string) *Table {
	k := make(map[string]bool, len(known))
	for _, w := range known {
		k[w] = true
	}
	return &Table{aliases: aliases, related: related, known: k}
}

// DefaultTable returns the built-in travel vocabulary.
func DefaultTable() *Table {
	return NewTable(defaultAliases, defaultRelated, defaultKnown)
}

// Lookup implements Lookup.
func (t *Table) Lookup(word string) ([]string, bool) {
	var out []string
	add := func(kw string) {
		if !t.known[kw] {
			return
		}
		for _, o := range out {
			if o == kw {
				return
			}
		}
		out = append(out, kw)
	}

	switch alias, ok := t.aliases[word]; {
	case ok && len(alias) > 1:
		for _, kw := range alias {
			add(kw)
		}
	case ok && len(alias) == 1 && t.known[alias[0]]:
		add(alias[0])
	default:
		add(word)
	}
	for _, kw := range t.related[word] {
		add(kw)
	}
	return out, len(out) > 0
}

// Known reports whether kw is a catalog keyword.
func (t *Table) Known(kw string) bool {
	return t.known[strings.ToLower(kw)]
}

var defaultAliases = map[string][]string{
	// singular to the plural used in the catalog
	"beach":    {"beaches"},
	"mountain": {"mountains"},
	"temple":   {"temples"},
	"museum":   {"museums"},
	"bar":      {"bars"},
	"club":     {"clubs"},
	"market":   {"markets"},
	"boutique": {"boutiques"},

	// verbs to activities
	"ski":   {"skiing"},
	"hike":  {"hiking"},
	"dive":  {"diving"},
	"surf":  {"surfing"},
	"climb": {"climbing"},
	"shop":  {"shopping"},
	"swim":  {"swimming"},

	"eat":        {"food"},
	"dining":     {"food"},
	"restaurant": {"food"},
	"cuisine":    {"food"},

	"hiking":    {"hiking", "trekking", "mountains", "nature", "outdoor"},
	"trekking":  {"hiking", "trekking", "mountains"},
	"mountains": {"hiking", "mountains", "nature"},
	"nature":    {"hiking", "nature", "outdoor"},
	"outdoor":   {"hiking", "nature", "outdoor"},
	"sushi":     {"sushi", "japanese", "food", "asian"},
	"japanese":  {"sushi", "japanese", "food", "asian"},
	"cars":      {"cars", "automotive", "racing", "motor"},
	"car":       {"cars", "automotive", "racing", "motor"},
	"anime":     {"anime", "japanese", "culture", "entertainment"},
	"pokemon":   {"anime", "japanese", "gaming"},
	"ferrari":   {"cars", "italian", "automotive", "luxury"},
	"wine":      {"wine", "vineyard", "french", "italian"},
	"coffee":    {"coffee", "cafe", "breakfast"},
}

var defaultRelated = map[string][]string{
	"sushi":     {"sushi", "japanese", "food", "asian"},
	"ramen":     {"ramen", "japanese", "food", "noodles"},
	"korean":    {"korean", "food", "asian"},
	"hiking":    {"hiking", "mountains", "nature", "outdoor"},
	"beaches":   {"beaches", "ocean", "coastal", "tropical"},
	"beach":     {"beaches", "ocean", "coastal", "tropical"},
	"culture":   {"culture", "history", "museums", "art"},
	"nightlife": {"nightlife", "bars", "clubs", "entertainment"},
	"shopping":  {"shopping", "markets", "boutiques"},
	"pasta":     {"pasta", "italian", "food"},
	"pizza":     {"pizza", "italian", "food"},
	"cars":      {"cars", "automotive", "racing", "motor"},
	"car":       {"cars", "automotive", "racing", "motor"},
	"mountains": {"hiking", "mountains", "nature", "trekking"},
	"nature":    {"hiking", "mountains", "nature", "outdoor"},
	"outdoor":   {"hiking", "mountains", "nature", "outdoor"},
	"japanese":  {"sushi", "japanese", "food", "asian"},
	"anime":     {"anime", "japanese", "culture", "entertainment"},
	"wine":      {"wine", "vineyard", "french", "italian"},
	"coffee":    {"coffee", "cafe", "breakfast", "morning"},
}

var defaultKnown = []string{
	"sushi", "ramen", "pasta", "pizza", "tacos", "curry",
	"japanese", "japan", "asian", "anime", "tokyo", "osaka", "kyoto",
	"food", "culinary", "street food",
	"beaches", "ocean", "tropical", "coastal", "swimming",
	"hiking", "mountains", "nature", "outdoor", "trekking",
	"skiing", "ski", "snow", "winter", "cold", "ice",
	"culture", "history", "museums", "art", "temples",
	"nightlife", "bars", "clubs", "party", "entertainment",
	"shopping", "markets", "boutiques",
	"italian", "french", "spanish", "mexican", "thai", "korean",
	"cars", "automotive", "racing", "motor", "vehicles",
	"wine", "coffee", "tea", "chocolate",
	"adventure", "relaxation", "luxury", "budget",
	"diving", "surfing", "snorkeling", "golf",
	"gaming", "movies", "music", "concerts",
}
