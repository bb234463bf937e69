// Package cleaning implements the record normalization and repair pipeline
// for raw MegaSuper sales batches: field validation, product
// canonicalization, postal-code imputation, duplicate resolution,
// missing-value imputation and arithmetic reconciliation.
package cleaning

import (
	"strconv"
	"strings"
	"time"
)

// Field bounds. A single line item above these limits is feed noise, not a
// sale.
const (
	maxItemValue   = 10000.0
	maxShippingFee = 1000.0
	minQuantity    = 1
	maxQuantity    = 100
)

// maxNumericLen truncates pathologically long numeric strings before
// parsing to bound cost.
const maxNumericLen = 20

// NormalizeText trims surrounding whitespace and lowercases. The empty
// string (missing sentinel) passes through unchanged.
func NormalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// sanitizeNumericString is the generic pre-pass for numeric columns: keep
// only digits, comma and period, truncate overlong input, collapse comma to
// period and, when several period-separated groups remain, keep the first
// separator as the decimal point and discard the rest as noise.
func sanitizeNumericString(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if len(cleaned) > maxNumericLen {
		cleaned = cleaned[:maxNumericLen]
	}
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if parts := strings.Split(cleaned, "."); len(parts) > 2 {
		cleaned = parts[0] + "." + strings.Join(parts[1:], "")
	}
	return cleaned
}

// SanitizeNumeric parses any numeric column leniently. Unparseable input
// yields nil (missing), never an error.
func SanitizeNumeric(raw string) *float64 {
	cleaned := sanitizeNumericString(raw)
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ValidateMonetary parses a currency amount, stripping the R$ symbol and
// thousands/decimal punctuation, and accepts it only within [0, limit].
// Anything else is missing. The generic sanitizer strips the minus sign,
// so the sign is recovered from the raw input before the range check.
func ValidateMonetary(raw string, limit float64) *float64 {
	stripped := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "R$", ""), "r$", ""))
	v := SanitizeNumeric(stripped)
	if v == nil {
		return nil
	}
	if strings.HasPrefix(stripped, "-") {
		*v = -*v
	}
	if *v < 0 || *v > limit {
		return nil
	}
	return v
}

// ValidateQuantity parses a quantity and accepts it only within [1, 100];
// anything else defaults to 1. Quantity is never missing because it always
// participates in the total arithmetic.
func ValidateQuantity(raw string) int {
	trimmed := strings.TrimSpace(raw)
	v := SanitizeNumeric(trimmed)
	if v == nil {
		return minQuantity
	}
	q := int(*v)
	if strings.HasPrefix(trimmed, "-") {
		q = -q
	}
	if q < minQuantity || q > maxQuantity {
		return minQuantity
	}
	return q
}

// dateFormats are tried in order; the first that parses wins.
var dateFormats = []string{"02/01/2006", "2006-01-02"}

// NormalizeDate converts day/month/year or year-month-day textual dates to
// ISO YYYY-MM-DD. Anything else is missing.
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// NormalizeTime strips non-digits, left-pads to six digits and re-emits
// HH:MM:SS. The result must be a valid time of day or it is missing.
func NormalizeTime(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s := digits.String()
	if len(s) > 6 {
		return ""
	}
	s = strings.Repeat("0", 6-len(s)) + s

	formatted := s[:2] + ":" + s[2:4] + ":" + s[4:]
	if _, err := time.Parse("15:04:05", formatted); err != nil {
		return ""
	}
	return formatted
}
