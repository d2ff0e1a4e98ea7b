package fetcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/award-audit/internal/model"
)

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	err := f.Save(path)
	require.NoError(t, err)
	return path
}

func TestReadXLSX_Basic(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"Department", "Innovator", "Province"},
			{"NRC", "Acme Inc.", "Ontario"},
			{"DFO", "Beta Ltd", "Quebec"},
		},
	})

	tbl, err := ReadXLSX(path, testNA)
	require.NoError(t, err)
	assert.Equal(t, []string{"Department", "Innovator", "Province"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, model.NewText("Acme Inc."), tbl.Rows[0][1])
	assert.Equal(t, model.NewText("Quebec"), tbl.Rows[1][2])
}

func TestReadXLSX_BlankRowsAndNA(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"", ""},
			{"Amount", "Award date"},
			{"N/A", "2020-01-01"},
			{"", ""},
			{"$5", ""},
		},
	})

	tbl, err := ReadXLSX(path, testNA)
	require.NoError(t, err)
	assert.Equal(t, []string{"Amount", "Award date"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.False(t, tbl.Rows[0][0].Valid)
	assert.Equal(t, "N/A", tbl.Rows[0][0].String)
	assert.Equal(t, model.NewText("$5"), tbl.Rows[1][0])
	assert.False(t, tbl.Rows[1][1].Valid)
}

func TestReadXLSX_TrailingEmptyHeaderCells(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"a", "b", "", ""},
			{"1", "2", "", ""},
		},
	})

	tbl, err := ReadXLSX(path, testNA)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Header)
	assert.Len(t, tbl.Rows[0], 2)
}

func TestReadXLSX_EmptySheet(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{"Sheet1": {}})
	_, err := ReadXLSX(path, testNA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing header row")
}

func TestReadXLSX_FileNotFound(t *testing.T) {
	_, err := ReadXLSX("/nonexistent/file.xlsx", testNA)
	assert.Error(t, err)
}

func TestReadTable_DispatchesByExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "phase1.CSV")
	require.NoError(t, writeTestFile(csvPath, "a,b\n1,2\n"))
	tbl, err := ReadTable(csvPath, testNA)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Header)

	xlsxPath := createTestXLSX(t, map[string][][]string{"Sheet1": {{"x"}, {"1"}}})
	tbl, err = ReadTable(xlsxPath, testNA)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, tbl.Header)
}

func TestReadTable_UnsupportedExtension(t *testing.T) {
	_, err := ReadTable("awards.parquet", testNA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extract type")
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "missing.csv"), testNA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open extract")
}

func TestTableColumn(t *testing.T) {
	tbl := &Table{Header: []string{"a", "b"}}
	assert.Equal(t, 1, tbl.Column("b"))
	assert.Equal(t, -1, tbl.Column("c"))
}
