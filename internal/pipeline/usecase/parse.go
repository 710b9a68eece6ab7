package usecase

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"salesreport-srv/internal/model"
)

// Column headers accepted for each field. Matching is case-insensitive.
var (
	productHeaders = []string{"product", "product_name", "name", "item"}
	salesHeaders   = []string{"sales", "quantity", "units"}
	amountHeaders  = []string{"amount", "amount_usd", "price", "total"}
)

// parseRows validates the uploaded CSV and extracts its data rows. The file
// must have a header row with a recognizable product column. Individual rows
// that cannot be parsed are skipped and counted, not fatal, but a file with
// no valid data rows at all is an error.
func parseRows(data []byte) (rows []model.ProductRow, skipped int, err error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, 0, fmt.Errorf("file is empty")
	}

	header := records[0]
	productIdx := findColumn(header, productHeaders)
	if productIdx < 0 {
		return nil, 0, fmt.Errorf("no product column in header %v", header)
	}
	salesIdx := findColumn(header, salesHeaders)
	amountIdx := findColumn(header, amountHeaders)

	for _, record := range records[1:] {
		row, ok := parseRow(record, productIdx, salesIdx, amountIdx)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	// A file with nothing usable below the header is a parse failure, not an
	// empty report.
	if len(rows) == 0 {
		if skipped > 0 {
			return nil, skipped, fmt.Errorf("all %d data rows are malformed", skipped)
		}
		return nil, 0, fmt.Errorf("no data rows")
	}

	return rows, skipped, nil
}

func parseRow(record []string, productIdx, salesIdx, amountIdx int) (model.ProductRow, bool) {
	if productIdx >= len(record) {
		return model.ProductRow{}, false
	}

	row := model.ProductRow{
		Product: strings.TrimSpace(record[productIdx]),
	}
	if row.Product == "" {
		return model.ProductRow{}, false
	}

	if salesIdx >= 0 && salesIdx < len(record) {
		sales, err := strconv.Atoi(strings.TrimSpace(record[salesIdx]))
		if err != nil {
			return model.ProductRow{}, false
		}
		row.Sales = sales
	}

	if amountIdx >= 0 && amountIdx < len(record) {
		amount, err := decimal.NewFromString(strings.TrimSpace(record[amountIdx]))
		if err != nil {
			return model.ProductRow{}, false
		}
		row.Amount = amount
	}

	return row, true
}

func findColumn(header []string, candidates []string) int {
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		for _, candidate := range candidates {
			if normalized == candidate {
				return i
			}
		}
	}
	return -1
}
