package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megasuper/pkg/contracts/domain"
)

func basket(id string, items ...string) domain.Itemset {
	return domain.Itemset{PurchaseID: id, Items: items}
}

func TestBuildBaskets(t *testing.T) {
	records := []domain.SaleRecord{
		{PurchaseID: "c-002", Product: "feijão"},
		{PurchaseID: "c-001", Product: "arroz"},
		{PurchaseID: "c-001", Product: "arroz"}, // repeated unit, counted once
		{PurchaseID: "c-001", Product: "café"},
		{PurchaseID: "c-003", Product: ""}, // no product, skipped
	}

	baskets := BuildBaskets(records)

	require.Len(t, baskets, 2)
	assert.Equal(t, "c-001", baskets[0].PurchaseID)
	assert.Equal(t, []string{"arroz", "café"}, baskets[0].Items)
	assert.Equal(t, "c-002", baskets[1].PurchaseID)
	assert.Equal(t, []string{"feijão"}, baskets[1].Items)
}

func TestEncode(t *testing.T) {
	baskets := []domain.Itemset{
		basket("c-001", "arroz", "feijão"),
		basket("c-002", "café"),
	}

	m := Encode(baskets)

	assert.Equal(t, []string{"arroz", "café", "feijão"}, m.Items)
	require.Len(t, m.Rows, 2)
	assert.Equal(t, []bool{true, false, true}, m.Rows[0])
	assert.Equal(t, []bool{false, true, false}, m.Rows[1])

	assert.InDelta(t, 0.5, m.Support([]int{0}), 1e-9)
	assert.InDelta(t, 0.5, m.Support([]int{0, 2}), 1e-9)
	assert.InDelta(t, 0.0, m.Support([]int{0, 1}), 1e-9)
}

func minedBaskets() []domain.Itemset {
	return []domain.Itemset{
		basket("c-001", "arroz", "feijão"),
		basket("c-002", "arroz", "feijão"),
		basket("c-003", "arroz", "café"),
		basket("c-004", "leite"),
	}
}

func TestMineFindsRules(t *testing.T) {
	miner := NewMiner(0.25, 0.5, nil)

	set := miner.Mine(minedBaskets())

	assert.False(t, set.Relaxed)
	require.NotEmpty(t, set.Rules)
	require.NotEmpty(t, set.FrequentItemsets)
	assert.Equal(t, []string{"arroz"}, set.FrequentItemsets[0].Items)
	assert.InDelta(t, 0.75, set.FrequentItemsets[0].Support, 1e-9)

	// feijão always co-occurs with arroz.
	var found *domain.AssociationRule
	for i := range set.Rules {
		r := &set.Rules[i]
		if len(r.Antecedents) == 1 && r.Antecedents[0] == "feijão" {
			found = r
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, []string{"arroz"}, found.Consequents)
	assert.InDelta(t, 0.5, found.Support, 1e-9)
	assert.InDelta(t, 1.0, found.Confidence, 1e-9)
	assert.InDelta(t, 1.3333, found.Lift, 1e-9)
}

func TestMineFiltersByConfidence(t *testing.T) {
	miner := NewMiner(0.25, 0.5, nil)

	set := miner.Mine(minedBaskets())

	// arroz -> café has confidence 1/3 and must not survive the 0.5 cut.
	for _, r := range set.Rules {
		if len(r.Antecedents) == 1 && r.Antecedents[0] == "arroz" &&
			len(r.Consequents) == 1 && r.Consequents[0] == "café" {
			t.Fatalf("low-confidence rule survived: %+v", r)
		}
		assert.GreaterOrEqual(t, r.Confidence, 0.5)
	}
}

func TestMineRelaxesSupportOnce(t *testing.T) {
	miner := NewMiner(0.9, 0.5, nil)

	set := miner.Mine(minedBaskets())

	assert.True(t, set.Relaxed)
	assert.InDelta(t, 0.45, set.MinSupport, 1e-9)
	require.NotEmpty(t, set.Rules)
}

func TestMineEmptyResultIsValid(t *testing.T) {
	baskets := []domain.Itemset{
		basket("c-001", "arroz"),
		basket("c-002", "feijão"),
		basket("c-003", "café"),
	}

	set := NewMiner(0.5, 0.5, nil).Mine(baskets)

	assert.True(t, set.Relaxed)
	assert.Empty(t, set.Rules)
}

func TestMineNoBaskets(t *testing.T) {
	set := NewMiner(0.01, 0.3, nil).Mine(nil)

	assert.Empty(t, set.Rules)
	assert.False(t, set.Relaxed)
}

func TestRuleOrderings(t *testing.T) {
	set := NewMiner(0.25, 0.3, nil).Mine(minedBaskets())
	require.NotEmpty(t, set.Rules)

	byLift := ByLift(set.Rules)
	for i := 1; i < len(byLift); i++ {
		assert.GreaterOrEqual(t, byLift[i-1].Lift, byLift[i].Lift)
	}

	byConfidence := ByConfidence(set.Rules)
	for i := 1; i < len(byConfidence); i++ {
		assert.GreaterOrEqual(t, byConfidence[i-1].Confidence, byConfidence[i].Confidence)
	}
}

func TestApriorisThreeItemsets(t *testing.T) {
	baskets := []domain.Itemset{
		basket("c-001", "arroz", "feijão", "café"),
		basket("c-002", "arroz", "feijão", "café"),
		basket("c-003", "arroz", "feijão"),
	}

	m := Encode(baskets)
	supports := frequentItemsets(m, 0.5)

	// arroz=0, café=1, feijão=2 in sorted vocabulary order.
	assert.InDelta(t, 1.0, supports[candidate{0, 2}.key()], 1e-9)
	assert.InDelta(t, 2.0/3.0, supports[candidate{0, 1, 2}.key()], 1e-9)
}
