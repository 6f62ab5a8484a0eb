package zzre

import (
	"strings"

	"github.com/coregx/ahocorasick"
)

// prefilter drops the patterns that can't match text because it doesn't
// contain the longest literal run of the pattern. The literals of all the
// patterns are found with one Aho-Corasick scan over the text.
func prefilter(patterns []*Pattern, text string) []*Pattern {
	needles := make([]string, len(patterns))
	var lits []string
	seen := make(map[string]bool)
	for i, p := range patterns {
		n := p.longestLiteral()
		needles[i] = n
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		lits = append(lits, n)
	}
	if len(lits) == 0 {
		return patterns
	}

	found := findLiterals(lits, text)

	out := make([]*Pattern, 0, len(patterns))
	for i, p := range patterns {
		if n := needles[i]; n != "" && !found[n] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// findLiterals returns the set of lits that occur in text.
func findLiterals(lits []string, text string) map[string]bool {
	found := make(map[string]bool, len(lits))

	b := ahocorasick.NewBuilder()
	for _, l := range lits {
		b.AddPattern([]byte(l))
	}
	auto, err := b.Build()
	if err != nil {
		// Fall back to looking for each literal separately.
		for _, l := range lits {
			if strings.Contains(text, l) {
				found[l] = true
			}
		}
		return found
	}

	// Overlapping matches, so a literal is reported even when it overlaps
	// another one that ends first.
	for _, m := range auto.FindAllOverlapping([]byte(text)) {
		found[text[m.Start:m.End]] = true
	}
	return found
}
