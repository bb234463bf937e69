package cleaning

import (
	"context"
	"fmt"
	"strings"

	"megasuper/internal/geocode"
	"megasuper/pkg/contracts/domain"
)

// Stage identifiers.
const (
	StageIDValidate    = "validate_fields"
	StageIDCanonical   = "canonicalize_products"
	StageIDGeocode     = "impute_postal_codes"
	StageIDDedupe      = "resolve_duplicates"
	StageIDImpute      = "impute_missing_values"
	StageIDReconcile   = "reconcile_totals"
	StageIDFinalPostal = "finalize_postal_codes"
	StageIDAudit       = "audit_standardization"
)

// validateFieldsStage turns the raw batch into typed records, sanitizing
// and clamping every scalar field. Validators are total: unparseable input
// becomes the missing sentinel or the field default, never an error.
type validateFieldsStage struct{}

func (s *validateFieldsStage) ID() string   { return StageIDValidate }
func (s *validateFieldsStage) Name() string { return "Field Validation" }

func (s *validateFieldsStage) Execute(ctx context.Context, state *State) error {
	state.Records = make([]domain.SaleRecord, len(state.Raw))
	for i := range state.Raw {
		raw := &state.Raw[i]
		state.Records[i] = domain.SaleRecord{
			PurchaseID:  strings.TrimSpace(raw.PurchaseID),
			Date:        NormalizeDate(raw.Date),
			Time:        NormalizeTime(raw.Time),
			Customer:    NormalizeText(raw.Customer),
			Product:     raw.Product,
			Value:       ValidateMonetary(raw.Value, maxItemValue),
			Quantity:    ValidateQuantity(raw.Quantity),
			Total:       SanitizeNumeric(raw.Total),
			ShippingFee: ValidateMonetary(raw.ShippingFee, maxShippingFee),
			Seller:      strings.TrimSpace(raw.Seller),
			Brand:       strings.TrimSpace(raw.Brand),
			City:        strings.TrimSpace(raw.City),
			State:       strings.TrimSpace(raw.State),
			PostalCode:  strings.TrimSpace(raw.PostalCode),
		}
	}

	state.Stats.RecordAction(domain.ActionTextNormalized)
	state.Stats.RecordAction(domain.ActionDateNormalized)
	state.Stats.RecordAction(domain.ActionTimeNormalized)
	state.Stats.RecordAction(domain.ActionMonetaryValidated)
	state.Stats.RecordAction(domain.ActionQuantityDefaulted)

	s.countMissing(state)
	return nil
}

// countMissing records per-column missing counts after validation but
// before any imputation, for the diagnostic report.
func (s *validateFieldsStage) countMissing(state *State) {
	counts := make(map[string]int, len(domain.Columns()))
	for _, col := range domain.Columns() {
		counts[col] = 0
	}
	for i := range state.Records {
		r := &state.Records[i]
		if r.PurchaseID == "" {
			counts["id_da_compra"]++
		}
		if r.Date == "" {
			counts["data"]++
		}
		if r.Time == "" {
			counts["hora"]++
		}
		if r.Customer == "" {
			counts["cliente"]++
		}
		if r.Product == "" {
			counts["produto"]++
		}
		if r.Value == nil {
			counts["valor"]++
		}
		if r.Total == nil {
			counts["total"]++
		}
		if r.ShippingFee == nil {
			counts["frete"]++
		}
		if r.Seller == "" {
			counts["vendedor"]++
		}
		if r.Brand == "" {
			counts["marca"]++
		}
		if r.City == "" {
			counts["cidade"]++
		}
		if r.State == "" {
			counts["estado"]++
		}
		if r.PostalCode == "" {
			counts["cep"]++
		}
	}
	state.Stats.MissingByColumn = counts
}

// canonicalizeStage resolves every product description to a canonical name.
// Later stages depend on this: record identity and basket membership both
// key on the canonical product.
type canonicalizeStage struct{}

func (s *canonicalizeStage) ID() string   { return StageIDCanonical }
func (s *canonicalizeStage) Name() string { return "Product Canonicalization" }

func (s *canonicalizeStage) Execute(ctx context.Context, state *State) error {
	for i := range state.Records {
		if state.Records[i].Product == "" {
			continue
		}
		state.Records[i].Product = state.Canonicalizer.Normalize(state.Records[i].Product)
	}
	state.Stats.RecordAction(domain.ActionProductCanonical)
	return nil
}

// geocodeStage fills missing postal codes from batch statistics and then
// normalizes every code; malformed codes go back to missing for the final
// sweep to catch.
type geocodeStage struct{}

func (s *geocodeStage) ID() string   { return StageIDGeocode }
func (s *geocodeStage) Name() string { return "Postal Code Imputation" }

func (s *geocodeStage) Execute(ctx context.Context, state *State) error {
	imputed := state.Geocoder.Impute(state.Records)
	if imputed > 0 {
		state.Stats.RecordAction(domain.ActionPostalImputed)
	}

	if malformed := geocode.FormatAll(state.Records); malformed > 0 {
		state.Observer.OnAnomaly(s.ID(), fmt.Sprintf("%d malformed postal codes reset to missing", malformed))
	}
	return nil
}

// dedupeStage removes records colliding on the composite identity key
// (purchase id, date, time, customer, canonical product). The
// first-encountered record in batch order is kept.
type dedupeStage struct{}

func (s *dedupeStage) ID() string   { return StageIDDedupe }
func (s *dedupeStage) Name() string { return "Duplicate Resolution" }

func (s *dedupeStage) Execute(ctx context.Context, state *State) error {
	type identity struct {
		purchaseID, date, time, customer, product string
	}

	seen := make(map[identity]struct{}, len(state.Records))
	kept := state.Records[:0]
	for i := range state.Records {
		r := state.Records[i]
		key := identity{r.PurchaseID, r.Date, r.Time, r.Customer, r.Product}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, r)
	}

	removed := len(state.Records) - len(kept)
	state.Records = kept
	state.Stats.DuplicatesRemoved = removed
	if removed > 0 {
		state.Stats.RecordAction(domain.ActionDuplicatesRemoved)
		state.Observer.OnAnomaly(s.ID(), fmt.Sprintf("%d duplicate records removed", removed))
	}
	return nil
}

// imputeStage fills the remaining missing values with column-specific
// defaults: value gets the batch mean, shipping fee zero, seller and brand
// the unspecified sentinel, and an absent total is computed from the
// arithmetic formula. Present totals are left alone here; the
// reconciliation stage handles them.
type imputeStage struct{}

func (s *imputeStage) ID() string   { return StageIDImpute }
func (s *imputeStage) Name() string { return "Missing Value Imputation" }

func (s *imputeStage) Execute(ctx context.Context, state *State) error {
	mean := meanValue(state.Records)

	for i := range state.Records {
		r := &state.Records[i]
		if r.Value == nil {
			v := mean
			r.Value = &v
		}
		if r.ShippingFee == nil {
			fee := 0.0
			r.ShippingFee = &fee
		}
		if r.Seller == "" {
			r.Seller = state.Sentinel
		}
		if r.Brand == "" {
			r.Brand = state.Sentinel
		}
		if r.Total == nil {
			total := r.ExpectedTotal()
			r.Total = &total
		}
	}
	state.Stats.RecordAction(domain.ActionMissingImputed)
	return nil
}

// meanValue averages the non-missing monetary values; 0 for an all-missing
// column.
func meanValue(records []domain.SaleRecord) float64 {
	var sum float64
	n := 0
	for i := range records {
		if records[i].Value != nil {
			sum += *records[i].Value
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// totalTolerance is the largest accepted drift between a stored total and
// the recomputed one.
const totalTolerance = 0.01

// reconcileTotalsStage recomputes value*quantity + shipping fee for every
// record with complete monetary fields and overwrites totals that drift
// beyond the tolerance. This is a distinct pass from imputation: imputation
// only fills absent totals, this one corrects present-but-wrong ones.
type reconcileTotalsStage struct{}

func (s *reconcileTotalsStage) ID() string   { return StageIDReconcile }
func (s *reconcileTotalsStage) Name() string { return "Total Reconciliation" }

func (s *reconcileTotalsStage) Execute(ctx context.Context, state *State) error {
	corrected := 0
	for i := range state.Records {
		r := &state.Records[i]
		if !r.HasMonetaryFields() {
			continue
		}
		expected := r.ExpectedTotal()
		if diff := *r.Total - expected; diff > totalTolerance || diff < -totalTolerance {
			*r.Total = expected
			corrected++
		}
	}
	if corrected > 0 {
		state.Stats.RecordAction(domain.ActionTotalsReconciled)
		state.Observer.OnAnomaly(s.ID(), fmt.Sprintf("%d inconsistent totals recomputed", corrected))
	}
	return nil
}

// finalizePostalStage is the batch-wide completeness sweep: any postal code
// still missing is forced to the fallback literal.
type finalizePostalStage struct{}

func (s *finalizePostalStage) ID() string   { return StageIDFinalPostal }
func (s *finalizePostalStage) Name() string { return "Postal Code Finalization" }

func (s *finalizePostalStage) Execute(ctx context.Context, state *State) error {
	if forced := geocode.ForceFallback(state.Records); forced > 0 {
		state.Observer.OnAnomaly(s.ID(), fmt.Sprintf("%d postal codes forced to %s", forced, geocode.FallbackCode))
	}
	return nil
}
