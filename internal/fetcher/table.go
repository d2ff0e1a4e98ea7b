// Package fetcher reads award extracts from CSV, XLSX and zipped files into
// header-plus-rows tables of nullable cells.
package fetcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/award-audit/internal/model"
)

// Table is one parsed extract. Every row has exactly len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]model.Text
}

// Column returns the position of name in the header, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// ReadTable reads the extract at path, choosing the parser by extension:
// .xlsx files go through ReadXLSX, .csv and .txt through ReadCSV, and .zip
// archives through ReadZIP.
func ReadTable(path string, naValues []string) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return ReadXLSX(path, naValues)
	case ".zip":
		return ReadZIP(path, naValues)
	case ".csv", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrap(err, "fetcher: open extract")
		}
		defer f.Close()
		return ReadCSV(f, naValues)
	default:
		return nil, eris.Errorf("fetcher: unsupported extract type %q", ext)
	}
}

// newTable validates row widths and converts raw strings to cells. Cells
// whose text is one of naValues are absent. Short rows are padded with
// absent cells; rows wider than the header are rejected.
func newTable(header []string, rows [][]string, naValues []string) (*Table, error) {
	if len(header) == 0 {
		return nil, eris.New("fetcher: missing header row")
	}

	na := make(map[string]struct{}, len(naValues))
	for _, v := range naValues {
		na[v] = struct{}{}
	}

	t := &Table{
		Header: dedupeHeader(header),
		Rows:   make([][]model.Text, 0, len(rows)),
	}
	for i, row := range rows {
		if len(row) > len(header) {
			return nil, eris.Errorf("fetcher: row %d has %d fields, header has %d", i+1, len(row), len(header))
		}
		cells := make([]model.Text, len(header))
		for j := range cells {
			if j >= len(row) {
				cells[j] = model.Null("")
				continue
			}
			if _, isNA := na[row[j]]; isNA {
				cells[j] = model.Null(row[j])
			} else {
				cells[j] = model.NewText(row[j])
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

// dedupeHeader renames repeated column names to "Name.1", "Name.2", ... so
// every column stays addressable.
func dedupeHeader(header []string) []string {
	out := make([]string, len(header))
	used := make(map[string]bool, len(header))
	counts := make(map[string]int)
	for i, h := range header {
		name := h
		for used[name] {
			counts[h]++
			name = fmt.Sprintf("%s.%d", h, counts[h])
		}
		used[name] = true
		out[i] = name
	}
	return out
}
