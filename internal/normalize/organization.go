package normalize

import (
	"regexp"
	"strings"

	"github.com/sells-group/award-audit/internal/model"
)

// suffixRule rewrites one legal-suffix spelling. Rules run in order on
// lower-cased text; no replacement is matched by a later pattern.
type suffixRule struct {
	pattern *regexp.Regexp
	replace string
}

var legalSuffixRules = []suffixRule{
	{regexp.MustCompile(`\binc\.?\b`), "inc"},
	{regexp.MustCompile(`\bltd\.?\b`), "ltd"},
	{regexp.MustCompile(`\blimited\b`), "ltd"},
	{regexp.MustCompile(`\bcorporation\b`), "corp"},
}

// Organization returns the comparison key for an innovator or company name:
// lower-cased, legal suffixes unified (Inc./Ltd./Limited/Corporation),
// whitespace collapsed, trailing periods stripped.
// "Acme Inc." and "ACME INC" both → "acme inc".
func Organization(raw model.Text) string {
	s := strings.TrimSpace(strings.ToLower(text(raw)))
	for _, rule := range legalSuffixRules {
		s = rule.pattern.ReplaceAllString(s, rule.replace)
	}
	s = collapseSpace(s)
	return strings.TrimRight(s, ".")
}
