package mining

import (
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"megasuper/pkg/contracts/domain"
)

// Miner configures the frequent-itemset search and rule generation.
type Miner struct {
	MinSupport    float64
	MinConfidence float64
	Logger        *slog.Logger
}

// NewMiner returns a miner with the given thresholds. A nil logger falls
// back to slog.Default.
func NewMiner(minSupport, minConfidence float64, logger *slog.Logger) *Miner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Miner{MinSupport: minSupport, MinConfidence: minConfidence, Logger: logger}
}

// Mine runs Apriori over the baskets and derives association rules. When
// the configured support threshold yields no frequent itemsets at all, the
// search is retried once at half the threshold and the result is flagged as
// relaxed. An empty rule set is a valid outcome, not an error.
func (m *Miner) Mine(baskets []domain.Itemset) *domain.RuleSet {
	set := &domain.RuleSet{
		MinSupport:    m.MinSupport,
		MinConfidence: m.MinConfidence,
	}
	if len(baskets) == 0 {
		m.Logger.Warn("no baskets to mine")
		return set
	}

	matrix := Encode(baskets)
	supports := frequentItemsets(matrix, set.MinSupport)
	if len(supports) == 0 {
		set.MinSupport = m.MinSupport / 2
		set.Relaxed = true
		m.Logger.Warn("no frequent itemsets, relaxing support threshold",
			slog.Float64("min_support", set.MinSupport))
		supports = frequentItemsets(matrix, set.MinSupport)
	}

	set.FrequentItemsets = collectItemsets(matrix, supports)
	set.Rules = deriveRules(matrix, supports, set.MinConfidence)
	m.Logger.Info("association mining complete",
		slog.Int("baskets", len(baskets)),
		slog.Int("frequent_itemsets", len(supports)),
		slog.Int("rules", len(set.Rules)),
		slog.Bool("relaxed", set.Relaxed))
	return set
}

// collectItemsets converts the support map into the public frequent-itemset
// list, ordered by support descending then item names.
func collectItemsets(m *Matrix, supports map[string]float64) []domain.FrequentItemset {
	out := make([]domain.FrequentItemset, 0, len(supports))
	for key, support := range supports {
		out = append(out, domain.FrequentItemset{
			Items:   itemNames(m, parseKey(key)),
			Support: support,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Support != out[j].Support {
			return out[i].Support > out[j].Support
		}
		return joinKey(out[i].Items) < joinKey(out[j].Items)
	})
	return out
}

// deriveRules generates every antecedent/consequent partition of each
// frequent itemset of size two or more, keeping rules whose confidence
// meets the threshold. Lift is rounded to four decimal places.
func deriveRules(m *Matrix, supports map[string]float64, minConfidence float64) []domain.AssociationRule {
	var rules []domain.AssociationRule
	for key, support := range supports {
		cols := parseKey(key)
		if len(cols) < 2 {
			continue
		}
		for _, split := range partitions(cols) {
			antSupport, ok := supports[split.antecedent.key()]
			if !ok || antSupport == 0 {
				continue
			}
			confidence := support / antSupport
			if confidence < minConfidence {
				continue
			}
			conSupport, ok := supports[split.consequent.key()]
			if !ok || conSupport == 0 {
				continue
			}
			rules = append(rules, domain.AssociationRule{
				Antecedents: itemNames(m, split.antecedent),
				Consequents: itemNames(m, split.consequent),
				Support:     support,
				Confidence:  confidence,
				Lift:        math.Round(confidence/conSupport*10000) / 10000,
			})
		}
	}
	sortRules(rules)
	return rules
}

type partition struct {
	antecedent candidate
	consequent candidate
}

// partitions enumerates every non-empty proper antecedent subset of cols,
// paired with its complement.
func partitions(cols []int) []partition {
	n := len(cols)
	var out []partition
	for mask := 1; mask < (1<<n)-1; mask++ {
		var ant, con candidate
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				ant = append(ant, cols[i])
			} else {
				con = append(con, cols[i])
			}
		}
		out = append(out, partition{antecedent: ant, consequent: con})
	}
	return out
}

func itemNames(m *Matrix, cols candidate) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = m.Items[c]
	}
	return names
}

func parseKey(key string) candidate {
	parts := strings.Split(key, ",")
	cols := make(candidate, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		cols = append(cols, v)
	}
	return cols
}

// sortRules puts the default ordering on a rule slice: lift descending,
// then confidence descending, then antecedent names for ties.
func sortRules(rules []domain.AssociationRule) {
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Lift != rules[j].Lift {
			return rules[i].Lift > rules[j].Lift
		}
		if rules[i].Confidence != rules[j].Confidence {
			return rules[i].Confidence > rules[j].Confidence
		}
		return joinKey(rules[i].Antecedents) < joinKey(rules[j].Antecedents)
	})
}

func joinKey(items []string) string {
	return strings.Join(items, ",")
}

// ByLift returns a copy of the rules ordered by lift descending.
func ByLift(rules []domain.AssociationRule) []domain.AssociationRule {
	out := make([]domain.AssociationRule, len(rules))
	copy(out, rules)
	sortRules(out)
	return out
}

// ByConfidence returns a copy of the rules ordered by confidence descending.
func ByConfidence(rules []domain.AssociationRule) []domain.AssociationRule {
	out := make([]domain.AssociationRule, len(rules))
	copy(out, rules)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		if out[i].Lift != out[j].Lift {
			return out[i].Lift > out[j].Lift
		}
		return joinKey(out[i].Antecedents) < joinKey(out[j].Antecedents)
	})
	return out
}
