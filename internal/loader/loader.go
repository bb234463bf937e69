// Package loader reads raw sales batches from CSV files and Excel
// workbooks into the untyped record form the cleaning pipeline consumes.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"megasuper/pkg/contracts/domain"
)

// columnAliases maps each record field to the header spellings accepted on
// input. Matching is case-insensitive and ignores surrounding whitespace.
var columnAliases = map[string][]string{
	"id_da_compra": {"id_da_compra", "id da compra", "id"},
	"data":         {"data", "date"},
	"hora":         {"hora", "horario", "horário"},
	"cliente":      {"cliente", "nome_cliente"},
	"produto":      {"produto", "item"},
	"valor":        {"valor", "preco", "preço"},
	"quantidade":   {"quantidade", "qtd"},
	"total":        {"total", "valor_total"},
	"frete":        {"frete"},
	"vendedor":     {"vendedor"},
	"marca":        {"marca"},
	"cidade":       {"cidade"},
	"estado":       {"estado", "uf"},
	"cep":          {"cep", "codigo_postal", "código_postal"},
}

// requiredColumns must all resolve from the header row; the remaining
// columns are optional and come back as missing values when absent.
var requiredColumns = []string{"id_da_compra", "produto"}

// LoadCSV reads a raw sales batch from a CSV file. The first row is the
// header; rows shorter than the header are padded with missing values. A
// file with no data rows is an error since there is nothing to clean.
func LoadCSV(path string, logger *slog.Logger) ([]domain.RawRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input file %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	index, err := resolveHeader(header)
	if err != nil {
		return nil, err
	}

	var records []domain.RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+2, err)
		}
		records = append(records, recordFromRow(row, index))
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("input file %s has no data rows", path)
	}

	logger.Info("Loaded raw sales batch",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return records, nil
}

// LoadWorkbook reads a raw sales batch from the first sheet of an Excel
// workbook, applying the same header resolution as LoadCSV.
func LoadWorkbook(path string, logger *slog.Logger) ([]domain.RawRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("workbook %s has no data rows", path)
	}

	index, err := resolveHeader(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		records = append(records, recordFromRow(row, index))
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("workbook %s has no data rows", path)
	}

	logger.Info("Loaded raw sales batch",
		slog.String("path", path),
		slog.String("sheet", sheets[0]),
		slog.Int("records", len(records)))
	return records, nil
}

// Load dispatches on the file extension: .xlsx and .xls go through the
// workbook reader, everything else is treated as CSV.
func Load(path string, logger *slog.Logger) ([]domain.RawRecord, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls") {
		return LoadWorkbook(path, logger)
	}
	return LoadCSV(path, logger)
}

// resolveHeader maps record fields to column positions. Unknown headers are
// ignored; missing required columns are an error.
func resolveHeader(header []string) (map[string]int, error) {
	normalized := make(map[string]int, len(header))
	for i, h := range header {
		normalized[strings.ToLower(strings.TrimSpace(h))] = i
	}

	index := make(map[string]int, len(columnAliases))
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			if pos, ok := normalized[alias]; ok {
				index[field] = pos
				break
			}
		}
	}

	var missing []string
	for _, field := range requiredColumns {
		if _, ok := index[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("input is missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func recordFromRow(row []string, index map[string]int) domain.RawRecord {
	cell := func(field string) string {
		pos, ok := index[field]
		if !ok || pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}
	return domain.RawRecord{
		PurchaseID:  cell("id_da_compra"),
		Date:        cell("data"),
		Time:        cell("hora"),
		Customer:    cell("cliente"),
		Product:     cell("produto"),
		Value:       cell("valor"),
		Quantity:    cell("quantidade"),
		Total:       cell("total"),
		ShippingFee: cell("frete"),
		Seller:      cell("vendedor"),
		Brand:       cell("marca"),
		City:        cell("cidade"),
		State:       cell("estado"),
		PostalCode:  cell("cep"),
	}
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
