package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/tinywasm/chart/errs"
)

// ParseOptions control how a delimited input is interpreted.
type ParseOptions struct {
	// Comma is the field delimiter, ',' when zero.
	Comma rune
	// ColLabels treats the first row as column labels.
	ColLabels bool
	// RowLabels treats the first column as row labels.
	RowLabels bool
}

// Parse reads a delimited numeric table. Ragged rows and non-numeric cells
// are rejected here, before any chart is constructed.
func Parse(r io.Reader, opts ParseOptions) (*Table, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errs.New("parse:", err)
	}
	if len(records) == 0 {
		return nil, errs.New("parse: empty input")
	}

	var colLabels []string
	if opts.ColLabels {
		colLabels = records[0]
		records = records[1:]
		if len(records) == 0 {
			return nil, errs.New("parse: only a label row")
		}
	}

	var rowLabels []string
	cells := make([][]float64, len(records))
	for i, record := range records {
		if opts.RowLabels {
			if len(record) == 0 {
				return nil, errs.New("parse: row", i+1, "is empty")
			}
			rowLabels = append(rowLabels, record[0])
			record = record[1:]
		}
		row := make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, errs.New("parse: row", i+1, "column", j+1, "is not a number:", cell)
			}
			row[j] = v
		}
		cells[i] = row
	}

	// With both toggles on, the first label row still carries the corner
	// cell above the row-label column.
	if opts.ColLabels && opts.RowLabels && len(colLabels) > 0 {
		colLabels = colLabels[1:]
	}

	return NewTable(cells, rowLabels, colLabels)
}
