package domain

// RawRecord is one purchase line item exactly as loaded, every field still
// an unvalidated string. The empty string is the missing-value sentinel.
// The cleaning pipeline's field-validation stage turns a RawRecord batch
// into a SaleRecord batch.
type RawRecord struct {
	PurchaseID  string
	Date        string
	Time        string
	Customer    string
	Product     string
	Value       string
	Quantity    string
	Total       string
	ShippingFee string
	Seller      string
	Brand       string
	City        string
	State       string
	PostalCode  string
}
