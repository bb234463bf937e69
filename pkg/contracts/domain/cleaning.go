package domain

// CorrectiveAction identifies one class of repair the cleaning pipeline
// applied to the batch. The cleaning report lists every action that fired.
type CorrectiveAction string

const (
	ActionTextNormalized     CorrectiveAction = "text_normalized"
	ActionProductCanonical   CorrectiveAction = "product_canonicalized"
	ActionDateNormalized     CorrectiveAction = "date_normalized"
	ActionTimeNormalized     CorrectiveAction = "time_normalized"
	ActionMonetaryValidated  CorrectiveAction = "monetary_validated"
	ActionQuantityDefaulted  CorrectiveAction = "quantity_defaulted"
	ActionPostalImputed      CorrectiveAction = "postal_code_imputed"
	ActionDuplicatesRemoved  CorrectiveAction = "duplicates_removed"
	ActionMissingImputed     CorrectiveAction = "missing_values_imputed"
	ActionTotalsReconciled   CorrectiveAction = "totals_reconciled"
)

// ColumnKind describes the Go-side type of a schema column, reported in the
// cleaning diagnostics the way the original data profile reported dtypes.
type ColumnKind string

const (
	ColumnKindText    ColumnKind = "text"
	ColumnKindDate    ColumnKind = "date"
	ColumnKindTime    ColumnKind = "time"
	ColumnKindFloat   ColumnKind = "float64"
	ColumnKindInteger ColumnKind = "int"
)

// ColumnKinds maps every schema column to its kind.
func ColumnKinds() map[string]ColumnKind {
	return map[string]ColumnKind{
		"id_da_compra": ColumnKindText,
		"data":         ColumnKindDate,
		"hora":         ColumnKindTime,
		"cliente":      ColumnKindText,
		"produto":      ColumnKindText,
		"valor":        ColumnKindFloat,
		"quantidade":   ColumnKindInteger,
		"total":        ColumnKindFloat,
		"frete":        ColumnKindFloat,
		"vendedor":     ColumnKindText,
		"marca":        ColumnKindText,
		"cidade":       ColumnKindText,
		"estado":       ColumnKindText,
		"cep":          ColumnKindText,
	}
}

// ProductFrequency is one entry in the ranked product frequency table.
type ProductFrequency struct {
	Product string
	Count   int
}

// NearMissPair reports two distinct canonical products whose names sit close
// under the cheap distance metric, flagged by the standardization audit.
type NearMissPair struct {
	First    string
	Second   string
	Distance int
}

// CleaningStats carries the pipeline metadata the diagnostic report renders:
// counts, missing values per column, the corrective actions that fired and
// the product frequency table.
type CleaningStats struct {
	RunID             string
	InputRecords      int
	OutputRecords     int
	DuplicatesRemoved int

	// MissingByColumn counts missing values observed after field validation
	// but before imputation, per schema column.
	MissingByColumn map[string]int

	Actions []CorrectiveAction

	ProductFrequencies []ProductFrequency
	NearMisses         []NearMissPair
	RareProducts       []ProductFrequency
}

// RecordAction appends an action once, preserving first-fired order.
func (s *CleaningStats) RecordAction(a CorrectiveAction) {
	for _, existing := range s.Actions {
		if existing == a {
			return
		}
	}
	s.Actions = append(s.Actions, a)
}

// TopProducts returns the n most frequent products.
func (s *CleaningStats) TopProducts(n int) []ProductFrequency {
	if n > len(s.ProductFrequencies) {
		n = len(s.ProductFrequencies)
	}
	return s.ProductFrequencies[:n]
}
