package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/sells-group/award-audit/internal/model"
)

// amountArtifacts removes currency markers, non-breaking spaces and
// thousands separators. Every pattern after "CAD" is a single character, so
// one pass equals applying the removals in sequence.
var amountArtifacts = strings.NewReplacer(
	"CAD", "",
	"$", "",
	"\u00a0", "",
	",", "",
)

// Amount parses a free-text award amount such as
// "CAD $50,000.00*Applicable taxes included". Absent cells yield
// StatusMissing; text that is not a finite number after cleanup yields
// StatusInvalid.
func Amount(raw model.Text) model.Amount {
	if !raw.Valid {
		return model.Amount{Status: model.StatusMissing}
	}

	s := amountArtifacts.Replace(raw.String)
	// Footnote markers: everything from the first asterisk on is dropped.
	s, _, _ = strings.Cut(s, "*")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return model.Amount{Status: model.StatusInvalid}
	}
	return model.Amount{Value: v, Status: model.StatusOK}
}
