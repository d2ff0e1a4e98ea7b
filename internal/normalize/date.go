package normalize

import (
	"strings"
	"time"

	"github.com/sells-group/award-audit/internal/model"
)

// Date parses an award date with the first layout that accepts it.
func Date(raw model.Text, layouts []string) model.Date {
	if !raw.Valid {
		return model.Date{Status: model.StatusMissing}
	}
	s := strings.TrimSpace(raw.String)
	if s == "" {
		return model.Date{Status: model.StatusInvalid}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.Date{Value: t, Status: model.StatusOK}
		}
	}
	return model.Date{Status: model.StatusInvalid}
}
