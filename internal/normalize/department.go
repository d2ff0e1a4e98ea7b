package normalize

import (
	"regexp"
	"strings"

	"github.com/sells-group/award-audit/internal/model"
)

var (
	parenthetical = regexp.MustCompile(`\(.*?\)`)
	canadaWord    = regexp.MustCompile(`(?i)\bcanada\b`)
)

// Department returns the comparison key for a department name: parenthetical
// annotations and the word "Canada" removed, whitespace collapsed, lower-cased.
// "Department of Fisheries and Oceans (Canada)" → "department of fisheries and oceans".
func Department(raw model.Text) string {
	s := strings.TrimSpace(text(raw))
	s = parenthetical.ReplaceAllString(s, "")
	s = canadaWord.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = collapseSpace(s)
	return strings.ToLower(s)
}
