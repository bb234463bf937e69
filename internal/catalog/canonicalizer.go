package catalog

import (
	"strings"
	"unicode"
)

// Canonicalizer maps arbitrary free-text product descriptions to canonical
// names. It is a pure function of the text plus the static catalog and
// correction table; no hidden state is kept between calls.
//
// The matching tiers run in a fixed precision-first order: pre-verified typo
// corrections before any heuristic, then exact match, substring containment
// and token overlap before the weak bounded-distance tier, which is the most
// prone to false positives. The first tier to produce a match wins.
type Canonicalizer struct {
	catalog     *Catalog
	corrections *Corrections
	matchers    []matcher

	// aliasWords caches, per catalog entry, the set of words appearing
	// across its aliases, used by the token-overlap tier.
	aliasWords []map[string]struct{}
}

// matcher attempts one tier over the pre-cleaned text. It returns the
// canonical name and whether the tier matched.
type matcher func(cleaned string) (string, bool)

// NewCanonicalizer builds a canonicalizer over the given catalog and
// correction table.
func NewCanonicalizer(c *Catalog, corr *Corrections) *Canonicalizer {
	cz := &Canonicalizer{catalog: c, corrections: corr}

	cz.aliasWords = make([]map[string]struct{}, len(c.entries))
	for i, e := range c.entries {
		words := make(map[string]struct{})
		for _, alias := range e.Aliases {
			for _, w := range strings.Fields(alias) {
				words[w] = struct{}{}
			}
		}
		cz.aliasWords[i] = words
	}

	cz.matchers = []matcher{
		cz.matchCorrection,
		cz.matchExact,
		cz.matchSubstring,
		cz.matchTokenOverlap,
		cz.matchBoundedDistance,
	}
	return cz
}

// NewDefaultCanonicalizer builds a canonicalizer over the default catalog
// and correction table.
func NewDefaultCanonicalizer() *Canonicalizer {
	return NewCanonicalizer(Default(), DefaultCorrections())
}

// Normalize resolves text to a canonical product name, or returns the
// pre-cleaned text unchanged when no tier matches (an unstandardized
// residual). Normalize is idempotent: canonical names and residuals map to
// themselves.
func (cz *Canonicalizer) Normalize(text string) string {
	cleaned := preClean(text)
	if cleaned == "" {
		// Pathological input that cleans to nothing keeps a non-empty
		// residual so downstream identity keys stay meaningful.
		cleaned = strings.ToLower(strings.TrimSpace(text))
		if cleaned == "" {
			return ""
		}
	}

	for _, match := range cz.matchers {
		if canonical, ok := match(cleaned); ok {
			return canonical
		}
	}
	return cleaned
}

// preClean lowercases and strips the text, replaces every non-alphanumeric,
// non-space character with a space, collapses repeated whitespace and drops
// the feed noise words "produto" and "item".
func preClean(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	collapsed := strings.Join(strings.Fields(b.String()), " ")
	collapsed = strings.ReplaceAll(collapsed, "produto", "")
	collapsed = strings.ReplaceAll(collapsed, "item", "")
	return strings.Join(strings.Fields(collapsed), " ")
}

// matchCorrection resolves pre-verified 1:1 typo mappings.
func (cz *Canonicalizer) matchCorrection(cleaned string) (string, bool) {
	return cz.corrections.Lookup(cleaned)
}

// matchExact matches the text against canonical names and registered
// aliases verbatim.
func (cz *Canonicalizer) matchExact(cleaned string) (string, bool) {
	for _, e := range cz.catalog.entries {
		if cleaned == e.Canonical {
			return e.Canonical, true
		}
		for _, alias := range e.Aliases {
			if cleaned == alias {
				return e.Canonical, true
			}
		}
	}
	return "", false
}

// matchSubstring matches when the text contains an alias, or the canonical
// name itself, as a substring. Catalog order breaks ties.
func (cz *Canonicalizer) matchSubstring(cleaned string) (string, bool) {
	for _, e := range cz.catalog.entries {
		if strings.Contains(cleaned, e.Canonical) {
			return e.Canonical, true
		}
		for _, alias := range e.Aliases {
			if strings.Contains(cleaned, alias) {
				return e.Canonical, true
			}
		}
	}
	return "", false
}

// matchTokenOverlap accepts a canonical name when its alias word set shares
// at least two words with the input, or at least half of the input's words.
func (cz *Canonicalizer) matchTokenOverlap(cleaned string) (string, bool) {
	inputWords := strings.Fields(cleaned)
	if len(inputWords) == 0 {
		return "", false
	}

	inputSet := make(map[string]struct{}, len(inputWords))
	for _, w := range inputWords {
		inputSet[w] = struct{}{}
	}

	for i, e := range cz.catalog.entries {
		common := 0
		for w := range inputSet {
			if _, ok := cz.aliasWords[i][w]; ok {
				common++
			}
		}
		if common >= 2 || float64(common)/float64(len(inputSet)) >= 0.5 {
			return e.Canonical, true
		}
	}
	return "", false
}

// matchBoundedDistance is the last heuristic tier: a cheap
// positional-mismatch distance, only attempted for inputs longer than three
// characters. Candidates are the canonical names followed by the correction
// values; the first candidate within 30% of the input length wins.
//
// The metric is deliberately NOT edit distance. Replacing it with true
// Levenshtein would change which products match and break reproducibility
// with the historical record set.
func (cz *Canonicalizer) matchBoundedDistance(cleaned string) (string, bool) {
	input := []rune(cleaned)
	if len(input) <= 3 {
		return "", false
	}
	bound := float64(len(input)) * 0.3

	for _, candidate := range cz.catalog.Canonicals() {
		if float64(positionalDistance(input, []rune(candidate))) <= bound {
			return candidate, true
		}
	}
	for _, candidate := range cz.corrections.Values() {
		if float64(positionalDistance(input, []rune(candidate))) <= bound {
			return candidate, true
		}
	}
	return "", false
}

// positionalDistance counts character mismatches at the same index, up to
// the shorter string's length, plus the absolute length difference.
func positionalDistance(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	distance := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			distance++
		}
	}
	if len(a) > len(b) {
		distance += len(a) - len(b)
	} else {
		distance += len(b) - len(a)
	}
	return distance
}
