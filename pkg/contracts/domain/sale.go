package domain

// SaleRecord represents one purchase line item from the MegaSuper sales feed.
// A purchase groups several line items under one PurchaseID, so PurchaseID
// alone is not a record identity.
//
// Optional scalars are pointers: nil means the value is missing and has not
// been imputed yet. Quantity is never missing because it always participates
// in the total arithmetic; invalid quantities default to 1 during validation.
type SaleRecord struct {
	PurchaseID string `csv:"id_da_compra"`
	Date       string `csv:"data" validate:"omitempty,datetime=2006-01-02"`
	Time       string `csv:"hora"`
	Customer   string `csv:"cliente"`
	Product    string `csv:"produto"`

	Value       *float64 `csv:"valor" validate:"omitempty,gte=0,lte=10000"`
	Quantity    int      `csv:"quantidade" validate:"gte=1,lte=100"`
	Total       *float64 `csv:"total" validate:"omitempty,gte=0"`
	ShippingFee *float64 `csv:"frete" validate:"omitempty,gte=0,lte=1000"`

	Seller     string `csv:"vendedor"`
	Brand      string `csv:"marca"`
	City       string `csv:"cidade"`
	State      string `csv:"estado"`
	PostalCode string `csv:"cep" validate:"omitempty,cep"`
}

// Columns returns the input schema column names in declaration order.
func Columns() []string {
	return []string{
		"id_da_compra", "data", "hora", "cliente", "produto",
		"valor", "quantidade", "total", "frete",
		"vendedor", "marca", "cidade", "estado", "cep",
	}
}

// HasMonetaryFields reports whether all four monetary fields are present,
// which is the precondition for the total reconciliation check.
func (r *SaleRecord) HasMonetaryFields() bool {
	return r.Value != nil && r.Total != nil && r.ShippingFee != nil
}

// ExpectedTotal computes value*quantity + shipping fee. Callers must check
// HasMonetaryFields (or at least Value and ShippingFee) first.
func (r *SaleRecord) ExpectedTotal() float64 {
	return *r.Value*float64(r.Quantity) + *r.ShippingFee
}

// Float64Ptr is a convenience for building records in tests and loaders.
func Float64Ptr(v float64) *float64 { return &v }
