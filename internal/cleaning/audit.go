package cleaning

import (
	"context"
	"fmt"
	"sort"

	"megasuper/pkg/contracts/domain"
)

// Thresholds for the standardization audit.
const (
	nearMissMaxDistance = 3
	nearMissMinLength   = 3
	rareProductMaxCount = 5
)

// auditStage checks how well product standardization worked: it ranks
// product frequencies, flags pairs of distinct canonical products whose
// names sit within a small distance of each other (candidates for a missing
// alias), and flags products with very few occurrences.
type auditStage struct{}

func (s *auditStage) ID() string   { return StageIDAudit }
func (s *auditStage) Name() string { return "Standardization Audit" }

func (s *auditStage) Execute(ctx context.Context, state *State) error {
	counts := make(map[string]int)
	for i := range state.Records {
		if state.Records[i].Product != "" {
			counts[state.Records[i].Product]++
		}
	}

	state.Stats.ProductFrequencies = rankFrequencies(counts)
	state.Stats.NearMisses = findNearMisses(state.Stats.ProductFrequencies)
	state.Stats.RareProducts = filterRare(state.Stats.ProductFrequencies)

	for _, pair := range state.Stats.NearMisses {
		state.Observer.OnAnomaly(s.ID(), fmt.Sprintf(
			"products %q and %q differ by distance %d and may need an alias",
			pair.First, pair.Second, pair.Distance))
	}
	if n := len(state.Stats.RareProducts); n > 0 {
		state.Observer.OnAnomaly(s.ID(), fmt.Sprintf(
			"%d products with %d or fewer occurrences", n, rareProductMaxCount))
	}
	return nil
}

// rankFrequencies sorts products by descending count, name ascending on
// ties, so reports are deterministic.
func rankFrequencies(counts map[string]int) []domain.ProductFrequency {
	freqs := make([]domain.ProductFrequency, 0, len(counts))
	for product, count := range counts {
		freqs = append(freqs, domain.ProductFrequency{Product: product, Count: count})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Product < freqs[j].Product
	})
	return freqs
}

// findNearMisses scans distinct product pairs with the same cheap distance
// the canonicalizer uses. A small non-zero distance between two surviving
// names suggests the catalog is missing an alias.
func findNearMisses(freqs []domain.ProductFrequency) []domain.NearMissPair {
	names := make([]string, 0, len(freqs))
	for _, f := range freqs {
		names = append(names, f.Product)
	}
	sort.Strings(names)

	var pairs []domain.NearMissPair
	for i, first := range names {
		if len([]rune(first)) <= nearMissMinLength {
			continue
		}
		for _, second := range names[i+1:] {
			if len([]rune(second)) <= nearMissMinLength {
				continue
			}
			d := productDistance(first, second)
			if d > 0 && d <= nearMissMaxDistance {
				pairs = append(pairs, domain.NearMissPair{First: first, Second: second, Distance: d})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Distance < pairs[j].Distance })
	return pairs
}

// productDistance is the positional-mismatch-plus-length-difference
// heuristic, shared with the canonicalizer's bounded tier.
func productDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	d := 0
	for i := 0; i < n; i++ {
		if ra[i] != rb[i] {
			d++
		}
	}
	if len(ra) > len(rb) {
		d += len(ra) - len(rb)
	} else {
		d += len(rb) - len(ra)
	}
	return d
}

// filterRare keeps products at or below the rarity threshold.
func filterRare(freqs []domain.ProductFrequency) []domain.ProductFrequency {
	var rare []domain.ProductFrequency
	for _, f := range freqs {
		if f.Count <= rareProductMaxCount {
			rare = append(rare, f)
		}
	}
	return rare
}
