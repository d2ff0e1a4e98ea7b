package model

import "time"

// Phase identifies which award extract a record was loaded from.
type Phase int

const (
	Phase1 Phase = 1
	Phase2 Phase = 2
)

// Text is a raw cell value. Valid is false when the cell was absent or held
// an NA token; String keeps the original text in both cases so exports
// reproduce the source exactly.
type Text struct {
	String string
	Valid  bool
}

// NewText returns a present cell.
func NewText(s string) Text {
	return Text{String: s, Valid: true}
}

// Null returns an absent cell that was read as s.
func Null(s string) Text {
	return Text{String: s}
}

// ValueStatus tags the outcome of converting a raw cell to a typed value.
type ValueStatus string

const (
	StatusOK      ValueStatus = "ok"
	StatusMissing ValueStatus = "missing" // source cell absent
	StatusInvalid ValueStatus = "invalid" // present but not convertible
)

// Amount is a parsed award amount. Value is meaningful only when Status is
// StatusOK.
type Amount struct {
	Value  float64     `json:"value,omitempty"`
	Status ValueStatus `json:"status"`
}

// OK reports whether the amount parsed.
func (a Amount) OK() bool { return a.Status == StatusOK }

// Date is a parsed award date. Value is meaningful only when Status is
// StatusOK.
type Date struct {
	Value  time.Time   `json:"value,omitempty"`
	Status ValueStatus `json:"status"`
}

// OK reports whether the date parsed.
func (d Date) OK() bool { return d.Status == StatusOK }

// Record is one award entry. Fields holds the raw cells aligned with the
// owning RecordSet's Columns; the remaining fields are derived and never
// replace raw values.
type Record struct {
	Phase  Phase  `json:"phase"`
	Fields []Text `json:"-"`

	Amount       Amount `json:"amount"`
	Department   string `json:"department_canon"`
	Organization string `json:"innovator_canon"`
	GeoMismatch  bool   `json:"geo_mismatch"`
	AwardDate    Date   `json:"award_date"`
}

// Field returns the raw cell at column idx. Columns a record's extract did
// not carry read as absent.
func (r *Record) Field(idx int) Text {
	if idx < 0 || idx >= len(r.Fields) {
		return Text{}
	}
	return r.Fields[idx]
}

// Schema holds the column positions of the fields the checks read.
type Schema struct {
	Amount       int
	Department   int
	Organization int
	CityProvince int
	Province     int
	AwardDate    int
}

// RecordSet is the ordered, merged record collection. Phase 1 rows precede
// phase 2 rows and duplicates are kept.
type RecordSet struct {
	Columns []string
	Records []Record
	Schema  Schema

	index map[string]int
}

// NewRecordSet returns an empty set with no columns.
func NewRecordSet() *RecordSet {
	return &RecordSet{index: make(map[string]int)}
}

// AddColumn registers name and returns its position. Registering an
// existing name returns the existing position.
func (s *RecordSet) AddColumn(name string) int {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if idx, ok := s.index[name]; ok {
		return idx
	}
	s.Columns = append(s.Columns, name)
	s.index[name] = len(s.Columns) - 1
	return len(s.Columns) - 1
}

// ColumnIndex returns the position of name, or -1.
func (s *RecordSet) ColumnIndex(name string) int {
	if idx, ok := s.index[name]; ok {
		return idx
	}
	return -1
}

// Count returns the number of records tagged with phase p.
func (s *RecordSet) Count(p Phase) int {
	n := 0
	for i := range s.Records {
		if s.Records[i].Phase == p {
			n++
		}
	}
	return n
}
