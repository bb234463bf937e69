// Package exporter writes cleaned sales batches and mined association
// rules to CSV files and a SQLite database.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"megasuper/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality rooted at an output directory.
type CSVWriter struct {
	outputDir string
}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter(outputDir string) *CSVWriter {
	return &CSVWriter{outputDir: outputDir}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file under the output directory.
func (w *CSVWriter) WriteCSV(fileName string, options WriteOptions) error {
	fullPath := filepath.Join(w.outputDir, fileName)

	slog.Info("Writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if options.BOMPrefix {
		if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCleanedCSV exports a cleaned sales batch to fileName using the
// canonical column layout.
func (w *CSVWriter) WriteCleanedCSV(fileName string, records []domain.SaleRecord) error {
	rows := make([][]string, len(records))
	for i := range records {
		rows[i] = saleRow(&records[i])
	}
	return w.WriteCSV(fileName, WriteOptions{
		Headers:   domain.Columns(),
		Records:   rows,
		BOMPrefix: true,
	})
}

// WriteRulesCSV exports mined association rules ordered by lift descending.
func (w *CSVWriter) WriteRulesCSV(fileName string, rules []domain.AssociationRule) error {
	rows := make([][]string, len(rules))
	for i, rule := range rules {
		rows[i] = []string{
			strings.Join(rule.Antecedents, ", "),
			strings.Join(rule.Consequents, ", "),
			formatMetric(rule.Support),
			formatMetric(rule.Confidence),
			formatMetric(rule.Lift),
		}
	}
	return w.WriteCSV(fileName, WriteOptions{
		Headers: []string{"antecedentes", "consequentes", "suporte", "confianca", "lift"},
		Records: rows,
	})
}

func saleRow(r *domain.SaleRecord) []string {
	return []string{
		r.PurchaseID,
		r.Date,
		r.Time,
		r.Customer,
		r.Product,
		formatOptional(r.Value),
		formatInt(int64(r.Quantity)),
		formatOptional(r.Total),
		formatOptional(r.ShippingFee),
		r.Seller,
		r.Brand,
		r.City,
		r.State,
		r.PostalCode,
	}
}
