package geocode

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"megasuper/pkg/contracts/domain"
)

// FallbackCode is the absolute last-resort postal code, also forced onto
// any record still missing a code after the final formatting sweep.
const FallbackCode = "00000-000"

// Imputer fills missing postal codes in a batch. The random source is
// injected so synthetic codes are reproducible under test.
type Imputer struct {
	rng *rand.Rand
}

// NewImputer creates an imputer using the given random source. A nil rng
// falls back to a fixed-seed source.
func NewImputer(rng *rand.Rand) *Imputer {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Imputer{rng: rng}
}

// Impute fills every missing postal code in the batch in place, choosing
// the most specific available statistic:
//
//  1. modal code among records sharing the record's city
//  2. modal code among records sharing the record's state
//  3. modal code across the whole batch
//  4. synthetic code from the state's CEP prefix plus a random suffix
//  5. the 00000-000 fallback when the state is unrecognized
//
// It returns the number of codes imputed.
func (im *Imputer) Impute(records []domain.SaleRecord) int {
	byCity := modalByKey(records, func(r *domain.SaleRecord) string { return r.City })
	byState := modalByKey(records, func(r *domain.SaleRecord) string { return r.State })
	global := modalCode(records)

	imputed := 0
	for i := range records {
		if records[i].PostalCode != "" {
			continue
		}
		records[i].PostalCode = im.resolve(&records[i], byCity, byState, global)
		imputed++
	}
	return imputed
}

func (im *Imputer) resolve(r *domain.SaleRecord, byCity, byState map[string]string, global string) string {
	if code, ok := byCity[r.City]; ok {
		return code
	}
	if code, ok := byState[r.State]; ok {
		return code
	}
	if global != "" {
		return global
	}

	state := strings.ToLower(strings.TrimSpace(r.State))
	if prefix, ok := StatePrefix(state); ok {
		return fmt.Sprintf("%s-%03d", prefix, im.rng.Intn(1000))
	}
	return FallbackCode
}

// Format normalizes a postal code to XXXXX-XXX. Codes without exactly
// eight digits are malformed and come back empty rather than guessed at.
func Format(code string) string {
	var digits strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() != 8 {
		return ""
	}
	s := digits.String()
	return s[:5] + "-" + s[5:]
}

// FormatAll reformats every postal code in place. Malformed codes become
// missing rather than best-effort guesses; it returns how many did.
func FormatAll(records []domain.SaleRecord) int {
	malformed := 0
	for i := range records {
		if records[i].PostalCode == "" {
			continue
		}
		records[i].PostalCode = Format(records[i].PostalCode)
		if records[i].PostalCode == "" {
			malformed++
		}
	}
	return malformed
}

// ForceFallback is the final batch-wide sweep: any code still missing is
// forced to 00000-000 so the cleaned batch is complete. Returns the number
// of codes forced.
func ForceFallback(records []domain.SaleRecord) int {
	forced := 0
	for i := range records {
		if records[i].PostalCode == "" {
			records[i].PostalCode = FallbackCode
			forced++
		}
	}
	return forced
}

// modalByKey computes, per key, the most frequent non-missing postal code.
// Records with a missing key form no group, so a record without a city or
// state falls through to the next tier instead of borrowing a code from
// other keyless records. Frequency ties break lexicographically so
// imputation is deterministic.
func modalByKey(records []domain.SaleRecord, key func(*domain.SaleRecord) string) map[string]string {
	counts := make(map[string]map[string]int)
	for i := range records {
		if records[i].PostalCode == "" {
			continue
		}
		k := key(&records[i])
		if k == "" {
			continue
		}
		if counts[k] == nil {
			counts[k] = make(map[string]int)
		}
		counts[k][records[i].PostalCode]++
	}

	modal := make(map[string]string, len(counts))
	for k, codes := range counts {
		modal[k] = mode(codes)
	}
	return modal
}

// modalCode returns the most frequent non-missing code across the batch.
func modalCode(records []domain.SaleRecord) string {
	counts := make(map[string]int)
	for i := range records {
		if records[i].PostalCode != "" {
			counts[records[i].PostalCode]++
		}
	}
	if len(counts) == 0 {
		return ""
	}
	return mode(counts)
}

func mode(counts map[string]int) string {
	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	best, bestCount := "", -1
	for _, code := range codes {
		if counts[code] > bestCount {
			best, bestCount = code, counts[code]
		}
	}
	return best
}
