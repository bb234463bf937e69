package domain

// Itemset is the set of distinct canonical product names bought together
// under one purchase identifier. Items are kept sorted for deterministic
// encoding and output.
type Itemset struct {
	PurchaseID string
	Items      []string
}

// FrequentItemset is an itemset whose support cleared the mining threshold.
type FrequentItemset struct {
	Items   []string
	Support float64
}

// AssociationRule is one mined co-purchase rule. Antecedents and
// consequents are disjoint, sorted item lists. Rules are immutable once
// generated; ranked views are derived by sorting copies.
type AssociationRule struct {
	Antecedents []string
	Consequents []string
	Support     float64
	Confidence  float64
	Lift        float64
}

// RuleSet is the authoritative output of one mining run.
type RuleSet struct {
	Rules []AssociationRule

	// FrequentItemsets holds every itemset that cleared the support
	// threshold, largest support first.
	FrequentItemsets []FrequentItemset

	// MinSupport is the support threshold the run actually used: the
	// configured value, or half of it if the relaxation retry fired.
	MinSupport    float64
	MinConfidence float64
	Relaxed       bool
}

// MeanLift returns the average lift across all rules, 0 for an empty set.
func (rs *RuleSet) MeanLift() float64 {
	if len(rs.Rules) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rs.Rules {
		sum += r.Lift
	}
	return sum / float64(len(rs.Rules))
}

// MeanConfidence returns the average confidence, 0 for an empty set.
func (rs *RuleSet) MeanConfidence() float64 {
	if len(rs.Rules) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rs.Rules {
		sum += r.Confidence
	}
	return sum / float64(len(rs.Rules))
}
