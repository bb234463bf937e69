package mining

import (
	"sort"

	"megasuper/pkg/contracts/domain"
)

// Matrix is a one-hot transaction encoding: one row per basket, one column
// per distinct item, Rows[i][j] true when basket i contains Items[j].
type Matrix struct {
	Items []string
	Rows  [][]bool
}

// Encode builds the boolean transaction matrix for a set of baskets. The
// item vocabulary is the sorted union of all basket items, so column order
// is stable across runs.
func Encode(baskets []domain.Itemset) *Matrix {
	vocab := make(map[string]int)
	for _, b := range baskets {
		for _, item := range b.Items {
			vocab[item] = 0
		}
	}

	items := make([]string, 0, len(vocab))
	for item := range vocab {
		items = append(items, item)
	}
	sort.Strings(items)
	for i, item := range items {
		vocab[item] = i
	}

	rows := make([][]bool, len(baskets))
	for i, b := range baskets {
		row := make([]bool, len(items))
		for _, item := range b.Items {
			row[vocab[item]] = true
		}
		rows[i] = row
	}
	return &Matrix{Items: items, Rows: rows}
}

// Support returns the fraction of rows containing every item in cols.
func (m *Matrix) Support(cols []int) float64 {
	if len(m.Rows) == 0 {
		return 0
	}
	count := 0
	for _, row := range m.Rows {
		hit := true
		for _, c := range cols {
			if !row[c] {
				hit = false
				break
			}
		}
		if hit {
			count++
		}
	}
	return float64(count) / float64(len(m.Rows))
}
