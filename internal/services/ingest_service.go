package services

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"ledger-categorizer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// IngestColumns names the header of each required input column
type IngestColumns struct {
	Date        string
	Amount      string
	Description string
}

// DefaultIngestColumns matches the bank export the tool was built around
func DefaultIngestColumns() IngestColumns {
	return IngestColumns{
		Date:        "Date",
		Amount:      "Amount (GBP)",
		Description: "Spending Category",
	}
}

type ingestService struct {
	columns IngestColumns
}

// day-first layouts, tried in order
var dateLayouts = expandDateLayouts([]string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2-1-06",
	"2.1.06",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"2-Jan-06",
	"2 Jan 06",
	"2006-01-02",
	"2006/1/2",
})

func expandDateLayouts(base []string) []string {
	layouts := make([]string, 0, len(base)*3+2)
	for _, layout := range base {
		layouts = append(layouts, layout, layout+" 15:04", layout+" 15:04:05")
	}
	return append(layouts, time.RFC3339, "2006-01-02T15:04:05")
}

// NewIngestService creates an ingester reading the given columns
func NewIngestService(columns IngestColumns) IngestServiceInterface {
	return &ingestService{columns: columns}
}

func (s *ingestService) Columns() IngestColumns {
	return s.columns
}

// ReadTable decodes a CSV or XLSX stream into a header and raw rows
func (s *ingestService) ReadTable(r io.Reader, format InputFormat) (*LedgerTable, error) {
	return readLedgerTable(r, format)
}

// Ingest normalizes every row of the table. Any malformed amount fails the
// whole table; unparseable dates degrade to nil on that record.
func (s *ingestService) Ingest(table *LedgerTable) ([]*models.Transaction, error) {
	if table == nil || len(table.Header) == 0 {
		return nil, models.ErrEmptyInput
	}

	index := make(map[string]int, len(table.Header))
	for i, name := range table.Header {
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	var missing []string
	for _, required := range []string{s.columns.Date, s.columns.Amount, s.columns.Description} {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &models.MissingColumnError{Columns: missing}
	}

	dateIdx := index[s.columns.Date]
	amountIdx := index[s.columns.Amount]
	descriptionIdx := index[s.columns.Description]

	records := make([]*models.Transaction, 0, len(table.Rows))
	undated := 0
	for i, row := range table.Rows {
		rowNumber := i + 1
		line := table.Line(i)

		amount, err := parseAmount(cell(row, amountIdx))
		if err != nil {
			return nil, &models.MalformedAmountError{Row: rowNumber, Line: line, Value: cell(row, amountIdx), Err: err}
		}

		date := parseDate(cell(row, dateIdx), table.Format == FormatXLSX)
		if date == nil {
			undated++
		}

		record := models.NewTransaction(rowNumber, date, cell(row, descriptionIdx), amount)
		record.Line = line
		record.Extra = extraColumns(table.Header, row, dateIdx, amountIdx, descriptionIdx)
		records = append(records, record)
	}

	if undated > 0 {
		slog.Warn("Rows with unparseable dates", "count", undated, "total", len(records))
	}

	return records, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func parseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(cleaned)
}

func parseDate(value string, allowSerial bool) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t
		}
	}

	if allowSerial {
		if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				t = t.UTC().Round(time.Second)
				return &t
			}
		}
	}

	return nil
}

func extraColumns(header, row []string, skip ...int) map[string]string {
	if len(header) <= len(skip) {
		return nil
	}

	extra := make(map[string]string, len(header)-len(skip))
	for i, name := range header {
		if containsIndex(skip, i) || name == "" {
			continue
		}
		extra[name] = cell(row, i)
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}

func containsIndex(indexes []int, i int) bool {
	for _, idx := range indexes {
		if idx == i {
			return true
		}
	}
	return false
}
