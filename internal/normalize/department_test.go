package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/award-audit/internal/model"
)

func dept(s string) string { return Department(model.NewText(s)) }

func TestDepartment_Null(t *testing.T) {
	assert.Equal(t, "", Department(model.Null("N/A")))
	assert.Equal(t, "", Department(model.Text{}))
}

func TestDepartment_FisheriesVariants(t *testing.T) {
	want := "department of fisheries and oceans"
	assert.Equal(t, want, dept("Department of Fisheries and Oceans (Canada)"))
	assert.Equal(t, want, dept("Department of Fisheries and Oceans"))
	assert.Equal(t, want, dept("department of fisheries and oceans"))
	assert.Equal(t, want, dept("  Department  of Fisheries\tand Oceans "))
}

func TestDepartment_RemovesCanadaWord(t *testing.T) {
	assert.Equal(t, "national research council", dept("National Research Council Canada"))
	assert.Equal(t, "national research council of", dept("National Research Council of Canada (NRC)"))
	assert.Equal(t, "innovation", dept("Innovation Canada (ISED)"))
	assert.Equal(t, "transport", dept("CANADA Transport"))
}

func TestDepartment_KeepsCanadaInsideWords(t *testing.T) {
	assert.Equal(t, "canadian space agency", dept("Canadian Space Agency"))
	assert.Equal(t, "parks canadas", dept("Parks Canadas"))
}

func TestDepartment_ParentheticalShortestMatch(t *testing.T) {
	assert.Equal(t, "health agency", dept("Health (HC) Agency (PHAC)"))
	// Nested parentheses are not balanced: the shortest match stops at the
	// first closing parenthesis.
	assert.Equal(t, "a d)", dept("A (b (c) d)"))
}

func TestDepartment_Idempotent(t *testing.T) {
	for _, in := range []string{
		"Department of Fisheries and Oceans (Canada)",
		"Innovation, Science and Economic Development Canada",
		"Natural Resources Canada (NRCan)",
		"Shared  Services",
		"",
	} {
		once := dept(in)
		assert.Equal(t, once, dept(once), in)
	}
}
