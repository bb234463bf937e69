package mining

import (
	"fmt"
	"sort"
	"strings"
)

// candidate is a frequent-itemset candidate expressed as sorted column
// indexes into the transaction matrix vocabulary.
type candidate []int

func (c candidate) key() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ",")
}

// frequentItemsets runs the level-wise Apriori search over the matrix and
// returns the support of every itemset meeting minSupport, keyed by the
// candidate key. Search stops at the first level that produces no frequent
// itemsets.
func frequentItemsets(m *Matrix, minSupport float64) map[string]float64 {
	supports := make(map[string]float64)

	var level []candidate
	for col := range m.Items {
		c := candidate{col}
		s := m.Support(c)
		if s >= minSupport {
			level = append(level, c)
			supports[c.key()] = s
		}
	}

	for len(level) > 0 {
		next := generateCandidates(level)
		var frequent []candidate
		for _, c := range next {
			if !allSubsetsFrequent(c, supports) {
				continue
			}
			s := m.Support(c)
			if s >= minSupport {
				frequent = append(frequent, c)
				supports[c.key()] = s
			}
		}
		level = frequent
	}
	return supports
}

// generateCandidates joins pairs of k-itemsets sharing their first k-1
// elements into (k+1)-itemset candidates. Level members are kept sorted so
// the join stays free of duplicates.
func generateCandidates(level []candidate) []candidate {
	var out []candidate
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			a, b := level[i], level[j]
			k := len(a)
			if !samePrefix(a, b, k-1) {
				continue
			}
			merged := make(candidate, 0, k+1)
			merged = append(merged, a...)
			if a[k-1] < b[k-1] {
				merged = append(merged, b[k-1])
			} else {
				merged = append(merged, a[k-1])
				merged[k-1] = b[k-1]
				sort.Ints(merged)
			}
			out = append(out, merged)
		}
	}
	return out
}

func samePrefix(a, b candidate, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// allSubsetsFrequent prunes candidates with an infrequent (k-1)-subset.
func allSubsetsFrequent(c candidate, supports map[string]float64) bool {
	if len(c) <= 2 {
		return true
	}
	sub := make(candidate, len(c)-1)
	for skip := range c {
		sub = sub[:0]
		for i, v := range c {
			if i != skip {
				sub = append(sub, v)
			}
		}
		if _, ok := supports[sub.key()]; !ok {
			return false
		}
	}
	return true
}
