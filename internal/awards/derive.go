package awards

import (
	"go.uber.org/zap"

	"github.com/sells-group/award-audit/internal/model"
	"github.com/sells-group/award-audit/internal/normalize"
)

// deriver computes one derived field of a record from its raw cells.
type deriver struct {
	name  string
	apply func(r *model.Record, s model.Schema)
}

func derivers(layouts []string) []deriver {
	return []deriver{
		{"amount", func(r *model.Record, s model.Schema) {
			r.Amount = normalize.Amount(r.Field(s.Amount))
		}},
		{"department", func(r *model.Record, s model.Schema) {
			r.Department = normalize.Department(r.Field(s.Department))
		}},
		{"organization", func(r *model.Record, s model.Schema) {
			r.Organization = normalize.Organization(r.Field(s.Organization))
		}},
		{"geography", func(r *model.Record, s model.Schema) {
			r.GeoMismatch = normalize.GeoMismatch(r.Field(s.CityProvince), r.Field(s.Province))
		}},
		{"award_date", func(r *model.Record, s model.Schema) {
			r.AwardDate = normalize.Date(r.Field(s.AwardDate), layouts)
		}},
	}
}

// Derive fills the derived fields of every record, one full pass per field.
// Raw cells are never modified.
func Derive(set *model.RecordSet, layouts []string) {
	for _, d := range derivers(layouts) {
		for i := range set.Records {
			d.apply(&set.Records[i], set.Schema)
		}
		zap.L().Debug("awards: derived field",
			zap.String("field", d.name),
			zap.Int("records", len(set.Records)),
		)
	}
}
