package normalize

import (
	"strings"

	"github.com/sells-group/award-audit/internal/model"
)

// provinceNames maps the postal abbreviations of the 13 provinces and
// territories to the full names used in the Province column.
var provinceNames = map[string]string{
	"ON": "Ontario",
	"QC": "Quebec",
	"BC": "British Columbia",
	"AB": "Alberta",
	"MB": "Manitoba",
	"SK": "Saskatchewan",
	"NB": "New Brunswick",
	"NS": "Nova Scotia",
	"NL": "Newfoundland and Labrador",
	"PE": "Prince Edward Island",
	"YT": "Yukon",
	"NT": "Northwest Territories",
	"NU": "Nunavut",
}

// ProvinceName returns the full name for a province or territory
// abbreviation. The lookup is exact; callers upper-case first.
func ProvinceName(abbr string) (string, bool) {
	name, ok := provinceNames[abbr]
	return name, ok
}

// GeoMismatch reports whether the abbreviation after the last comma of a
// "City, PR" cell disagrees with the full province name recorded separately.
//
// The comparison is exact string equality after trimming, so "Ontario, Canada"
// does not match "Ontario". An abbreviation missing from the table is used
// as the expected name itself and therefore always mismatches. A combined
// cell that is absent or has no comma cannot be evaluated and is never
// flagged; an absent province cell is always flagged.
func GeoMismatch(cityProvince, province model.Text) bool {
	if !cityProvince.Valid {
		return false
	}
	i := strings.LastIndex(cityProvince.String, ",")
	if i < 0 {
		return false
	}
	if !province.Valid {
		return true
	}

	abbr := strings.ToUpper(strings.TrimSpace(cityProvince.String[i+1:]))
	expected, ok := ProvinceName(abbr)
	if !ok {
		expected = abbr
	}
	return expected != strings.TrimSpace(province.String)
}
