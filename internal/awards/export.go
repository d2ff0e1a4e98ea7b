package awards

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/award-audit/internal/model"
)

// Derived column names appended after the source columns.
const (
	ColumnPhase        = "Phase"
	ColumnAmount       = "Amount_clean"
	ColumnDepartment   = "Department_canon"
	ColumnOrganization = "Innovator_canon"
)

// derivedColumns lists the appended columns in output order.
var derivedColumns = []string{ColumnPhase, ColumnAmount, ColumnDepartment, ColumnOrganization}

// Export writes the record set to path as CSV or XLSX. An empty format is
// inferred from the extension (.xlsx → xlsx, otherwise csv).
func Export(set *model.RecordSet, path, format string) error {
	if format == "" {
		format = "csv"
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			format = "xlsx"
		}
	}

	var err error
	switch format {
	case "csv":
		err = WriteCSV(set, path)
	case "xlsx":
		err = WriteXLSX(set, path)
	default:
		return eris.Errorf("awards: unsupported export format %q", format)
	}
	if err != nil {
		return err
	}

	zap.L().Info("awards: exported",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("rows", len(set.Records)),
	)
	return nil
}

// WriteCSV writes the source columns followed by the derived columns.
func WriteCSV(set *model.RecordSet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "awards: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header(set)); err != nil {
		return eris.Wrap(err, "awards: write csv header")
	}
	for i := range set.Records {
		if err := w.Write(buildRow(set, &set.Records[i])); err != nil {
			return eris.Wrap(err, "awards: write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "awards: flush csv")
	}
	if err := f.Close(); err != nil {
		return eris.Wrap(err, "awards: close csv")
	}
	return nil
}

// WriteXLSX writes the same layout as WriteCSV to a single-sheet workbook.
// Phase and parsed amounts are stored as numbers.
func WriteXLSX(set *model.RecordSet, path string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("awards")
	if err != nil {
		return eris.Wrap(err, "awards: add sheet")
	}

	row := sheet.AddRow()
	for _, name := range header(set) {
		row.AddCell().SetString(name)
	}

	for i := range set.Records {
		r := &set.Records[i]
		row := sheet.AddRow()
		for j := range set.Columns {
			row.AddCell().SetString(r.Field(j).String)
		}
		row.AddCell().SetInt(int(r.Phase))
		if r.Amount.OK() {
			row.AddCell().SetFloat(r.Amount.Value)
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetString(r.Department)
		row.AddCell().SetString(r.Organization)
	}

	if err := file.Save(path); err != nil {
		return eris.Wrap(err, "awards: save xlsx")
	}
	return nil
}

func header(set *model.RecordSet) []string {
	h := make([]string, 0, len(set.Columns)+len(derivedColumns))
	h = append(h, set.Columns...)
	return append(h, derivedColumns...)
}

// buildRow maps a record to an output row. Raw cells are written with their
// original text, so absent cells read as NA tokens round-trip unchanged.
func buildRow(set *model.RecordSet, r *model.Record) []string {
	row := make([]string, 0, len(set.Columns)+len(derivedColumns))
	for j := range set.Columns {
		row = append(row, r.Field(j).String)
	}
	return append(row,
		strconv.Itoa(int(r.Phase)),
		FormatAmount(r.Amount),
		r.Department,
		r.Organization,
	)
}

// FormatAmount renders a parsed amount the way the cleaned CSV carries it:
// shortest decimal form with at least one fractional digit ("1000.0"), or
// "" when the amount is missing or unparseable.
func FormatAmount(a model.Amount) string {
	if !a.OK() {
		return ""
	}
	s := strconv.FormatFloat(a.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
