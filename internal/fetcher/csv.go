package fetcher

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadCSV parses a UTF-8 CSV extract. A leading byte-order mark is
// stripped before parsing; the first record is the header.
func ReadCSV(r io.Reader, naValues []string) (*Table, error) {
	reader := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // width is checked against the header

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "csv: read rows")
	}
	if len(records) == 0 {
		return nil, eris.New("csv: missing header row")
	}

	t, err := newTable(records[0], records[1:], naValues)
	if err != nil {
		return nil, eris.Wrap(err, "csv: build table")
	}
	return t, nil
}
