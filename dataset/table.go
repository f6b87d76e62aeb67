// Package dataset holds the numeric table model and the delimited-text
// parsing in front of the chart renderers. All structural validation
// happens here, before any chart object exists.
package dataset

import (
	"github.com/tinywasm/chart/errs"
	. "github.com/tinywasm/fmt"
)

// Table is a rows×columns numeric table with optional row and column
// labels. Once built it is never mutated.
type Table struct {
	cells     [][]float64
	rowLabels []string
	colLabels []string
}

// NewTable validates and wraps the cells. Every row must have the same
// length and labels, when present, must align 1:1 with rows and columns.
func NewTable(cells [][]float64, rowLabels, colLabels []string) (*Table, error) {
	if len(cells) == 0 {
		return nil, errs.New("table: no rows")
	}
	width := len(cells[0])
	if width == 0 {
		return nil, errs.New("table: no columns")
	}
	for i, row := range cells {
		if len(row) != width {
			return nil, errs.New("table: row", i+1, "has", len(row), "values, want", width)
		}
	}
	if rowLabels != nil && len(rowLabels) != len(cells) {
		return nil, errs.New("table:", len(rowLabels), "row labels for", len(cells), "rows")
	}
	if colLabels != nil && len(colLabels) != width {
		return nil, errs.New("table:", len(colLabels), "column labels for", width, "columns")
	}
	return &Table{cells: cells, rowLabels: rowLabels, colLabels: colLabels}, nil
}

func (t *Table) Rows() int {
	return len(t.cells)
}

func (t *Table) Columns() int {
	return len(t.cells[0])
}

func (t *Table) Value(i, j int) float64 {
	return t.cells[i][j]
}

// Values flattens the table row-major.
func (t *Table) Values() []float64 {
	out := make([]float64, 0, len(t.cells)*len(t.cells[0]))
	for _, row := range t.cells {
		out = append(out, row...)
	}
	return out
}

// RowLabel returns the label of row i, or its 1-based index when no row
// labels were supplied.
func (t *Table) RowLabel(i int) string {
	if i < len(t.rowLabels) {
		return t.rowLabels[i]
	}
	return Sprintf("%d", i+1)
}

// ColLabel returns the label of column j, or a generated series name when
// no column labels were supplied.
func (t *Table) ColLabel(j int) string {
	if j < len(t.colLabels) {
		return t.colLabels[j]
	}
	return Sprintf("Series %d", j+1)
}

// RequireColumns rejects tables narrower than n. Scatter charts call this
// before any chart object is constructed.
func (t *Table) RequireColumns(n int) error {
	if t.Columns() < n {
		return errs.New("table: need at least", n, "columns, have", t.Columns())
	}
	return nil
}
