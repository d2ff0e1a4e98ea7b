// Package quality aggregates the derived award fields into the data-quality
// report and renders it for the console.
package quality

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sells-group/award-audit/internal/model"
)

// Options configures Aggregate.
type Options struct {
	RunID string
	// DepartmentProbe selects the raw department variants whose canonical
	// key contains it. Empty disables the listing.
	DepartmentProbe string
}

// Report is the full quality summary of one record set.
type Report struct {
	RunID         string              `yaml:"run_id"`
	Rows          int                 `yaml:"rows"`
	Columns       []string            `yaml:"columns"`
	Phases        []PhaseCount        `yaml:"phases"`
	Amounts       AmountSummary       `yaml:"amounts"`
	Departments   DepartmentSummary   `yaml:"departments"`
	Organizations OrganizationSummary `yaml:"organizations"`
	Geography     GeographySummary    `yaml:"geography"`
	Dates         DateRange           `yaml:"dates"`
}

// PhaseCount is the number of records loaded from one extract.
type PhaseCount struct {
	Phase model.Phase `yaml:"phase"`
	Rows  int         `yaml:"rows"`
}

// AmountSummary counts amount parse outcomes. Total sums parsed amounts only.
type AmountSummary struct {
	Parsed      int             `yaml:"parsed"`
	Missing     int             `yaml:"missing"`
	Unparseable int             `yaml:"unparseable"`
	Examples    []string        `yaml:"unparseable_examples"`
	Total       decimal.Decimal `yaml:"total"`
}

// DepartmentSummary compares raw and canonical department values.
type DepartmentSummary struct {
	RawUnique       int      `yaml:"raw_unique"`
	CanonicalUnique int      `yaml:"canonical_unique"`
	Probe           string   `yaml:"probe,omitempty"`
	ProbeVariants   []string `yaml:"probe_variants,omitempty"`
}

// OrganizationSummary compares raw and canonical organization values.
type OrganizationSummary struct {
	RawUnique       int            `yaml:"raw_unique"`
	CanonicalUnique int            `yaml:"canonical_unique"`
	Groups          []VariantGroup `yaml:"variant_groups"`
}

// VariantGroup is a canonical key reached from more than one raw spelling.
type VariantGroup struct {
	Key      string   `yaml:"key"`
	Variants []string `yaml:"variants"`
}

// GeographySummary lists records whose province abbreviation disagrees with
// the province column.
type GeographySummary struct {
	Mismatches int           `yaml:"mismatches"`
	Rows       []GeoMismatch `yaml:"rows"`
}

// GeoMismatch is one flagged record. Row is the 0-based position in the
// merged record set.
type GeoMismatch struct {
	Row          int         `yaml:"row"`
	Phase        model.Phase `yaml:"phase"`
	CityProvince string      `yaml:"city_province"`
	Province     string      `yaml:"province"`
}

// DateRange is the span of parsed award dates. Min and Max are nil when no
// date parsed.
type DateRange struct {
	Min         *time.Time `yaml:"min"`
	Max         *time.Time `yaml:"max"`
	Parsed      int        `yaml:"parsed"`
	Missing     int        `yaml:"missing"`
	Unparseable int        `yaml:"unparseable"`
}

// Aggregate computes the report over a derived record set. It only reads
// the set.
func Aggregate(set *model.RecordSet, opts Options) *Report {
	return &Report{
		RunID:         opts.RunID,
		Rows:          len(set.Records),
		Columns:       append([]string(nil), set.Columns...),
		Phases:        countPhases(set),
		Amounts:       summarizeAmounts(set),
		Departments:   summarizeDepartments(set, opts.DepartmentProbe),
		Organizations: summarizeOrganizations(set),
		Geography:     summarizeGeography(set),
		Dates:         InspectDates(set.Records),
	}
}

func countPhases(set *model.RecordSet) []PhaseCount {
	return []PhaseCount{
		{Phase: model.Phase1, Rows: set.Count(model.Phase1)},
		{Phase: model.Phase2, Rows: set.Count(model.Phase2)},
	}
}

func summarizeAmounts(set *model.RecordSet) AmountSummary {
	var s AmountSummary
	examples := newOrderedSet()
	total := decimal.Zero
	for i := range set.Records {
		r := &set.Records[i]
		switch r.Amount.Status {
		case model.StatusOK:
			s.Parsed++
			total = total.Add(decimal.NewFromFloat(r.Amount.Value))
		case model.StatusMissing:
			s.Missing++
		case model.StatusInvalid:
			s.Unparseable++
			examples.add(r.Field(set.Schema.Amount).String)
		}
	}
	s.Examples = examples.values
	s.Total = total
	return s
}

func summarizeDepartments(set *model.RecordSet, probe string) DepartmentSummary {
	raw := newOrderedSet()
	canon := newOrderedSet()
	variants := newOrderedSet()
	for i := range set.Records {
		r := &set.Records[i]
		canon.add(r.Department)
		f := r.Field(set.Schema.Department)
		if !f.Valid {
			continue
		}
		raw.add(f.String)
		if probe != "" && strings.Contains(r.Department, probe) {
			variants.add(f.String)
		}
	}
	return DepartmentSummary{
		RawUnique:       raw.len(),
		CanonicalUnique: canon.len(),
		Probe:           probe,
		ProbeVariants:   variants.values,
	}
}

func summarizeOrganizations(set *model.RecordSet) OrganizationSummary {
	raw := newOrderedSet()
	canon := newOrderedSet()
	byKey := make(map[string]*orderedSet)
	for i := range set.Records {
		r := &set.Records[i]
		canon.add(r.Organization)
		f := r.Field(set.Schema.Organization)
		if !f.Valid {
			continue
		}
		raw.add(f.String)
		g, ok := byKey[r.Organization]
		if !ok {
			g = newOrderedSet()
			byKey[r.Organization] = g
		}
		g.add(f.String)
	}

	keys := make([]string, 0, len(byKey))
	for k, g := range byKey {
		if g.len() > 1 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	groups := make([]VariantGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, VariantGroup{Key: k, Variants: byKey[k].values})
	}
	return OrganizationSummary{
		RawUnique:       raw.len(),
		CanonicalUnique: canon.len(),
		Groups:          groups,
	}
}

func summarizeGeography(set *model.RecordSet) GeographySummary {
	var s GeographySummary
	for i := range set.Records {
		r := &set.Records[i]
		if !r.GeoMismatch {
			continue
		}
		s.Rows = append(s.Rows, GeoMismatch{
			Row:          i,
			Phase:        r.Phase,
			CityProvince: r.Field(set.Schema.CityProvince).String,
			Province:     r.Field(set.Schema.Province).String,
		})
	}
	s.Mismatches = len(s.Rows)
	return s
}

// orderedSet collects distinct strings in first-seen order.
type orderedSet struct {
	seen   map[string]struct{}
	values []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (o *orderedSet) add(v string) {
	if _, ok := o.seen[v]; ok {
		return
	}
	o.seen[v] = struct{}{}
	o.values = append(o.values, v)
}

func (o *orderedSet) len() int { return len(o.values) }
