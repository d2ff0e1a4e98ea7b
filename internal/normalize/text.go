// Package normalize holds the per-field transforms applied to award
// records. Every function is pure: it reads one or two raw cells and
// returns a canonical value or flag.
package normalize

import (
	"regexp"

	"github.com/sells-group/award-audit/internal/model"
)

// whitespaceRun matches any run of whitespace, including the vertical tab,
// NEL and the Unicode space separators (non-breaking space among them).
var whitespaceRun = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)

// collapseSpace replaces every whitespace run in s with a single space.
func collapseSpace(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}

// text returns the cell's string, or "" when the cell is absent.
func text(t model.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
