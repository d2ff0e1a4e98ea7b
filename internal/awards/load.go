// Package awards loads the two award extracts into one record set,
// decorates each record with its derived fields, and writes the result.
package awards

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/award-audit/internal/config"
	"github.com/sells-group/award-audit/internal/fetcher"
	"github.com/sells-group/award-audit/internal/model"
)

// source is one extract to load.
type source struct {
	phase model.Phase
	path  string
}

// Load reads both extracts, tags every row with its phase, and concatenates
// them phase 1 first. Columns are the union of both headers in first-seen
// order. An unreadable extract or a missing required column is returned as
// an error before any record is built.
func Load(cfg *config.Config) (*model.RecordSet, error) {
	sources := []source{
		{phase: model.Phase1, path: cfg.Input.Phase1},
		{phase: model.Phase2, path: cfg.Input.Phase2},
	}

	tables := make([]*fetcher.Table, len(sources))
	for i, src := range sources {
		t, err := fetcher.ReadTable(src.path, cfg.Input.NAValues)
		if err != nil {
			return nil, eris.Wrapf(err, "awards: load phase %d extract %q", src.phase, src.path)
		}
		if err := requireColumns(t, cfg.Columns); err != nil {
			return nil, eris.Wrapf(err, "awards: phase %d extract %q", src.phase, src.path)
		}
		tables[i] = t
		zap.L().Info("awards: loaded extract",
			zap.Int("phase", int(src.phase)),
			zap.String("path", src.path),
			zap.Int("rows", len(t.Rows)),
			zap.Int("columns", len(t.Header)),
		)
	}

	return merge(sources, tables, cfg.Columns), nil
}

// requireColumns checks that every configured column is in the header.
func requireColumns(t *fetcher.Table, cols config.ColumnsConfig) error {
	var missing []string
	for _, name := range cols.Required() {
		if t.Column(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return eris.Errorf("missing required columns %q", missing)
	}
	return nil
}

// merge concatenates the tables into a record set, remapping each table's
// cells onto the union column order.
func merge(sources []source, tables []*fetcher.Table, cols config.ColumnsConfig) *model.RecordSet {
	set := model.NewRecordSet()

	total := 0
	for _, t := range tables {
		total += len(t.Rows)
	}
	set.Records = make([]model.Record, 0, total)

	for i, t := range tables {
		positions := make([]int, len(t.Header))
		for j, name := range t.Header {
			positions[j] = set.AddColumn(name)
		}
		for _, row := range t.Rows {
			fields := make([]model.Text, len(set.Columns))
			for j, cell := range row {
				fields[positions[j]] = cell
			}
			set.Records = append(set.Records, model.Record{
				Phase:  sources[i].phase,
				Fields: fields,
			})
		}
	}

	set.Schema = model.Schema{
		Amount:       set.ColumnIndex(cols.Amount),
		Department:   set.ColumnIndex(cols.Department),
		Organization: set.ColumnIndex(cols.Organization),
		CityProvince: set.ColumnIndex(cols.CityProvince),
		Province:     set.ColumnIndex(cols.Province),
		AwardDate:    set.ColumnIndex(cols.AwardDate),
	}
	return set
}
