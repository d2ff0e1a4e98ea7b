package awards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sells-group/award-audit/internal/config"
)

const testHeader = `"Awarded amount (*Applicable taxes included)",Department,Innovator,"City, Province or Territory",Province,Award date` + "\n"

// writeExtract writes content to name inside dir and returns the path.
func writeExtract(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// testConfig returns a config pointing at two extracts with default columns.
func testConfig(phase1, phase2 string) *config.Config {
	return &config.Config{
		Input: config.InputConfig{
			Phase1:   phase1,
			Phase2:   phase2,
			NAValues: config.DefaultNAValues,
		},
		Columns: config.ColumnsConfig{
			Amount:       "Awarded amount (*Applicable taxes included)",
			Department:   "Department",
			Organization: "Innovator",
			CityProvince: "City, Province or Territory",
			Province:     "Province",
			AwardDate:    "Award date",
		},
		Dates: config.DatesConfig{Layouts: config.DefaultDateLayouts},
	}
}
