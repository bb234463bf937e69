package cleaning

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"megasuper/pkg/contracts/domain"
)

var cepPattern = regexp.MustCompile(`^\d{5}-\d{3}$`)

// newValidator builds the struct validator with the postal-code rule
// registered.
func newValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		return cepPattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("failed to register cep validation: %w", err)
	}
	return v, nil
}

// Verify asserts the cleaned-batch invariants over every record: bounded
// value, quantity and shipping fee, a well-formed postal code, and a total
// consistent with value*quantity + shipping fee. It returns an error
// naming the first violating record.
func Verify(records []domain.SaleRecord) error {
	v, err := newValidator()
	if err != nil {
		return err
	}

	for i := range records {
		r := &records[i]
		if err := v.Struct(r); err != nil {
			return fmt.Errorf("record %d violates cleaned-batch invariants: %w", i, err)
		}
		if r.PostalCode == "" {
			return fmt.Errorf("record %d has a missing postal code after cleaning", i)
		}
		if r.HasMonetaryFields() {
			if diff := *r.Total - r.ExpectedTotal(); diff > totalTolerance || diff < -totalTolerance {
				return fmt.Errorf("record %d total %.2f does not match expected %.2f", i, *r.Total, r.ExpectedTotal())
			}
		}
	}
	return nil
}
