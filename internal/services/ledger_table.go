package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"ledger-categorizer/internal/models"

	"github.com/xuri/excelize/v2"
)

// InputFormat identifies the encoding of an uploaded ledger
type InputFormat string

const (
	FormatCSV  InputFormat = "csv"
	FormatXLSX InputFormat = "xlsx"
)

const utf8BOM = "\ufeff"

// LedgerTable is a header row plus data rows of raw cell text. Lines holds
// the 1-based source line of each row when the table was read from a file.
type LedgerTable struct {
	Format InputFormat
	Header []string
	Rows   [][]string
	Lines  []int
}

// Line returns the source line of row i, or 0 when unknown
func (t *LedgerTable) Line(i int) int {
	if i < len(t.Lines) {
		return t.Lines[i]
	}
	return 0
}

type sourceRow struct {
	line  int
	cells []string
}

// DetectInputFormat maps a file name to an input format by extension
func DetectInputFormat(filename string) (InputFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func readLedgerTable(r io.Reader, format InputFormat) (*LedgerTable, error) {
	var (
		raw []sourceRow
		err error
	)

	switch format {
	case FormatCSV:
		raw, err = readCSVRows(r)
	case FormatXLSX:
		raw, err = readXLSXRows(r)
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	raw = dropBlankRows(raw)
	if len(raw) == 0 {
		return nil, models.ErrEmptyInput
	}

	header := make([]string, len(raw[0].cells))
	for i, name := range raw[0].cells {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		header[i] = strings.TrimSpace(name)
	}

	table := &LedgerTable{
		Format: format,
		Header: header,
		Rows:   make([][]string, 0, len(raw)-1),
		Lines:  make([]int, 0, len(raw)-1),
	}
	var wideLines []int
	for _, row := range raw[1:] {
		if len(row.cells) > len(header) {
			wideLines = append(wideLines, row.line)
		}
		table.Rows = append(table.Rows, padRow(row.cells, len(header)))
		table.Lines = append(table.Lines, row.line)
	}

	if len(wideLines) > 0 {
		slog.Warn("Ledger rows wider than header, extra cells dropped",
			"format", format,
			"rows", len(wideLines),
			"first_line", wideLines[0],
			"header_width", len(header),
		)
	}

	return table, nil
}

// readCSVRows keeps the line each record starts on; quoted fields may span
// several lines and blank lines are skipped by the reader.
func readCSVRows(r io.Reader) ([]sourceRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []sourceRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %w", models.ErrUnreadableInput, err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, sourceRow{line: line, cells: record})
	}
}

func readXLSXRows(r io.Reader) ([]sourceRow, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: workbook: %w", models.ErrUnreadableInput, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, models.ErrEmptyInput
	}

	// raw values keep dates as serial numbers instead of locale formatted text
	cells, err := workbook.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", models.ErrUnreadableInput, sheets[0], err)
	}

	// GetRows returns gaps as empty rows, so the index is the sheet row
	rows := make([]sourceRow, 0, len(cells))
	for i, row := range cells {
		rows = append(rows, sourceRow{line: i + 1, cells: row})
	}
	return rows, nil
}

func dropBlankRows(rows []sourceRow) []sourceRow {
	kept := rows[:0]
	for _, row := range rows {
		for _, cell := range row.cells {
			if strings.TrimSpace(cell) != "" {
				kept = append(kept, row)
				break
			}
		}
	}
	return kept
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
