package quality

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

var printer = message.NewPrinter(language.English)

// FormatText renders the report as console text.
func FormatText(r *Report) string {
	var b strings.Builder

	b.WriteString("# Award Data Quality Report\n")
	if r.RunID != "" {
		fmt.Fprintf(&b, "Run: %s\n", r.RunID)
	}
	fmt.Fprintf(&b, "Rows: %d\n", r.Rows)
	fmt.Fprintf(&b, "Columns (%d): %s\n", len(r.Columns), strings.Join(r.Columns, " | "))
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "Phase %d rows: %d\n", p.Phase, p.Rows)
	}
	b.WriteString("\n")

	// Amounts.
	b.WriteString("## Amount\n")
	fmt.Fprintf(&b, "- %d rows could NOT be parsed as numeric after cleaning\n", r.Amounts.Unparseable)
	if len(r.Amounts.Examples) > 0 {
		b.WriteString("- Examples:\n")
		for _, ex := range r.Amounts.Examples {
			fmt.Fprintf(&b, "  - %q\n", ex)
		}
	}
	fmt.Fprintf(&b, "- %d rows have no amount\n", r.Amounts.Missing)
	fmt.Fprintf(&b, "- Total parsed award amount: %s (%d rows)\n\n", formatCAD(r.Amounts.Total), r.Amounts.Parsed)

	// Departments.
	b.WriteString("## Department\n")
	fmt.Fprintf(&b, "- Raw unique: %d, Canonicalized unique: %d\n", r.Departments.RawUnique, r.Departments.CanonicalUnique)
	if r.Departments.Probe != "" {
		fmt.Fprintf(&b, "- Variant department names for %q:\n", r.Departments.Probe)
		if len(r.Departments.ProbeVariants) == 0 {
			b.WriteString("  (none)\n")
		}
		for _, v := range r.Departments.ProbeVariants {
			fmt.Fprintf(&b, "  - %s\n", v)
		}
	}
	b.WriteString("\n")

	// Organizations.
	b.WriteString("## Innovator\n")
	fmt.Fprintf(&b, "- Raw unique: %d, Canonicalized unique: %d\n", r.Organizations.RawUnique, r.Organizations.CanonicalUnique)
	if len(r.Organizations.Groups) > 0 {
		b.WriteString("- Multiple variants for same company:\n")
		for _, g := range r.Organizations.Groups {
			fmt.Fprintf(&b, "  - %s\n", strings.Join(g.Variants, ", "))
		}
	}
	b.WriteString("\n")

	// Geography.
	b.WriteString("## Geography\n")
	fmt.Fprintf(&b, "- Province mismatch rows: %d\n", r.Geography.Mismatches)
	if len(r.Geography.Rows) > 0 {
		rows := make([][]string, 0, len(r.Geography.Rows))
		for _, m := range r.Geography.Rows {
			rows = append(rows, []string{strconv.Itoa(m.Row), m.CityProvince, m.Province})
		}
		writeTable(&b, []string{"Row", "City, Province or Territory", "Province"}, rows)
	}
	b.WriteString("\n")

	// Dates.
	b.WriteString("## Date\n")
	if r.Dates.Min == nil {
		b.WriteString("- Range: n/a\n")
	} else {
		fmt.Fprintf(&b, "- Range: %s to %s\n", r.Dates.Min.Format(dateLayout), r.Dates.Max.Format(dateLayout))
	}
	fmt.Fprintf(&b, "- Parsed: %d, missing: %d, unparseable: %d\n", r.Dates.Parsed, r.Dates.Missing, r.Dates.Unparseable)

	return b.String()
}

// FormatYAML renders the report as a YAML document.
func FormatYAML(r *Report) (string, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return "", eris.Wrap(err, "quality: marshal yaml")
	}
	return string(out), nil
}

// formatCAD renders an amount with thousands separators, e.g. "CAD $1,234.50".
func formatCAD(d decimal.Decimal) string {
	return printer.Sprintf("CAD $%.2f", d.Round(2).InexactFloat64())
}

// writeTable writes rows as left-aligned columns sized by display width.
func writeTable(b *strings.Builder, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(cells []string) {
		var l strings.Builder
		l.WriteString("  ")
		for i, cell := range cells {
			if i > 0 {
				l.WriteString("  ")
			}
			l.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		b.WriteString(strings.TrimRight(l.String(), " "))
		b.WriteString("\n")
	}

	line(header)
	for _, row := range rows {
		line(row)
	}
}
