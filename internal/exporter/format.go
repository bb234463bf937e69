package exporter

import "fmt"

// formatMetric formats a rule metric with four decimal places.
func formatMetric(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

// formatOptional formats a monetary value with two decimal places, or the
// empty string when the value is missing.
func formatOptional(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *f)
}

func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}
