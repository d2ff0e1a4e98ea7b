package quality

import (
	"github.com/sells-group/award-audit/internal/model"
)

// InspectDates returns the earliest and latest parsed award dates and the
// counts of missing and unparseable ones.
func InspectDates(records []model.Record) DateRange {
	var dr DateRange
	for i := range records {
		d := records[i].AwardDate
		switch d.Status {
		case model.StatusOK:
			dr.Parsed++
			v := d.Value
			if dr.Min == nil || v.Before(*dr.Min) {
				dr.Min = &v
			}
			if dr.Max == nil || v.After(*dr.Max) {
				dr.Max = &v
			}
		case model.StatusMissing:
			dr.Missing++
		case model.StatusInvalid:
			dr.Unparseable++
		}
	}
	return dr
}
