// Package mining discovers product co-purchase rules from cleaned sales
// batches: basket construction, Apriori frequent-itemset search and
// association-rule generation with support/confidence/lift metrics.
package mining

import (
	"sort"

	"megasuper/pkg/contracts/domain"
)

// BuildBaskets groups cleaned records by purchase identifier and collects
// the set of distinct canonical product names per purchase. Buying several
// units of the same product counts once. Baskets come back ordered by
// purchase identifier so downstream encoding is deterministic.
func BuildBaskets(records []domain.SaleRecord) []domain.Itemset {
	byPurchase := make(map[string]map[string]struct{})
	for i := range records {
		r := &records[i]
		if r.PurchaseID == "" || r.Product == "" {
			continue
		}
		if byPurchase[r.PurchaseID] == nil {
			byPurchase[r.PurchaseID] = make(map[string]struct{})
		}
		byPurchase[r.PurchaseID][r.Product] = struct{}{}
	}

	ids := make([]string, 0, len(byPurchase))
	for id := range byPurchase {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	baskets := make([]domain.Itemset, 0, len(ids))
	for _, id := range ids {
		items := make([]string, 0, len(byPurchase[id]))
		for item := range byPurchase[id] {
			items = append(items, item)
		}
		sort.Strings(items)
		baskets = append(baskets, domain.Itemset{PurchaseID: id, Items: items})
	}
	return baskets
}
