package fetcher

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ReadXLSX reads the first sheet of an XLSX extract. The first non-blank
// row is the header; blank rows are skipped, and trailing unnamed header
// cells are dropped.
func ReadXLSX(path string, naValues []string) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}
	return readWorkbook(f, naValues)
}

func readWorkbook(f *xlsx.File, naValues []string) (*Table, error) {
	if len(f.Sheets) == 0 {
		return nil, eris.New("xlsx: workbook has no sheets")
	}

	var rows [][]string
	for _, row := range f.Sheets[0].Rows {
		cells := rowToStrings(row)
		if isBlank(cells) {
			continue
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return nil, eris.New("xlsx: missing header row")
	}

	header := trimTrailingEmpty(rows[0])
	body := rows[1:]
	for i, row := range body {
		if len(row) > len(header) {
			body[i] = trimTrailingEmpty(row)
		}
	}

	t, err := newTable(header, body, naValues)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: build table")
	}
	return t, nil
}

func rowToStrings(row *xlsx.Row) []string {
	if row == nil {
		return nil
	}
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		if cell != nil {
			cells[j] = cell.String()
		}
	}
	return cells
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

func trimTrailingEmpty(cells []string) []string {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	return cells[:n]
}
