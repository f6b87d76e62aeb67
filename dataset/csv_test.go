package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/chart/dataset"
)

func TestParsePlainTable(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader("1,2\n3,4\n"), dataset.ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, table.Rows())
	assert.Equal(t, 2, table.Columns())
	assert.Equal(t, 3.0, table.Value(1, 0))
	assert.Equal(t, []float64{1, 2, 3, 4}, table.Values())
}

func TestParseColumnLabels(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader("A,B\n1,2\n3,4\n"), dataset.ParseOptions{ColLabels: true})
	require.NoError(t, err)

	assert.Equal(t, 2, table.Rows())
	assert.Equal(t, "A", table.ColLabel(0))
	assert.Equal(t, "B", table.ColLabel(1))
}

func TestParseRowLabels(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader("jan,1,2\nfeb,3,4\n"), dataset.ParseOptions{RowLabels: true})
	require.NoError(t, err)

	assert.Equal(t, 2, table.Columns())
	assert.Equal(t, "jan", table.RowLabel(0))
	assert.Equal(t, "feb", table.RowLabel(1))
}

func TestParseBothLabelToggles(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader(",A,B\njan,1,2\n"), dataset.ParseOptions{ColLabels: true, RowLabels: true})
	require.NoError(t, err)

	assert.Equal(t, "A", table.ColLabel(0))
	assert.Equal(t, "jan", table.RowLabel(0))
	assert.Equal(t, 2.0, table.Value(0, 1))
}

func TestParseCustomDelimiter(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader("1;2\n3;4\n"), dataset.ParseOptions{Comma: ';'})
	require.NoError(t, err)
	assert.Equal(t, 2.0, table.Value(0, 1))
}

func TestParseRejectsNonNumeric(t *testing.T) {
	_, err := dataset.Parse(strings.NewReader("1,x\n"), dataset.ParseOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestParseRejectsRaggedRows(t *testing.T) {
	_, err := dataset.Parse(strings.NewReader("1,2\n3\n"), dataset.ParseOptions{})
	require.Error(t, err)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := dataset.Parse(strings.NewReader(""), dataset.ParseOptions{})
	require.Error(t, err)
}

func TestDefaultLabels(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader("1,2\n3,4\n"), dataset.ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, "1", table.RowLabel(0))
	assert.Equal(t, "Series 2", table.ColLabel(1))
}

func TestRequireColumns(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader("1\n3\n"), dataset.ParseOptions{})
	require.NoError(t, err)

	require.NoError(t, table.RequireColumns(1))
	err = table.RequireColumns(2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 columns")
}
