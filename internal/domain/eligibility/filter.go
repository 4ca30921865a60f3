package eligibility

import (
	"strings"

	"github.com/okian/awards/internal/domain/model"
)

// Filter narrows results for display. It never recomputes ranks or verdicts.
type Filter struct {
	// Grade keeps only teams with this exact grade; empty keeps all.
	Grade string
	// Query is a case-insensitive substring matched against team number,
	// name and organization; empty keeps all.
	Query string
	// EligibleOnly drops teams that are not eligible.
	EligibleOnly bool
}

// Apply returns the matching results in their existing order.
func (f Filter) Apply(results []model.Result) []model.Result {
	grade := strings.TrimSpace(f.Grade)
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]model.Result, 0, len(results))
	for _, r := range results {
		if grade != "" && strings.TrimSpace(r.Team.Grade) != grade {
			continue
		}
		if f.EligibleOnly && !r.Eligible {
			continue
		}
		if q != "" && !matches(r.Team, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(t model.Team, q string) bool {
	for _, field := range []string{t.Number, t.Name, t.Organization} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
