package ai

import (
	"strconv"
	"strings"
)

// ParseScores reads up to n comma- or newline-separated integers from text.
// Tokens that are not plain digits are skipped, values are capped at 100 and
// missing entries are filled with def. The result always has length n.
func ParseScores(text string, n, def int) []int {
	out := make([]int, 0, n)
	for _, tok := range strings.Split(strings.ReplaceAll(text, "\n", ","), ",") {
		if len(out) == n {
			break
		}
		tok = strings.TrimSpace(tok)
		if tok == "" || strings.TrimLeft(tok, "0123456789") != "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		out = append(out, min(100, v))
	}
	for len(out) < n {
		out = append(out, def)
	}
	return out
}

// ParseKeywords splits a comma-separated keyword list, dropping brackets and
// quotes, lower-casing, and keeping at most limit non-empty entries.
func ParseKeywords(text string, limit int) []string {
	text = strings.NewReplacer("[", "", "]", "", `"`, "", "'", "").Replace(text)
	out := make([]string, 0, limit)
	for _, k := range strings.Split(text, ",") {
		if len(out) == limit {
			break
		}
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			out = append(out, k)
		}
	}
	return out
}
