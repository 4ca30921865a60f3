package eligibility

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/okian/awards/internal/domain/model"
)

// SortKey selects a result ordering.
type SortKey string

// Sort keys.
const (
	SortDefault      SortKey = "default"
	SortTeam         SortKey = "team"
	SortGrade        SortKey = "grade"
	SortOrganization SortKey = "organization"
	SortRegion       SortKey = "region"
	SortEligibility  SortKey = "eligibility"
	SortDriver       SortKey = "driver"
	SortProgramming  SortKey = "programming"
)

// SortKeys lists every supported key.
func SortKeys() []SortKey {
	return []SortKey{
		SortDefault, SortTeam, SortGrade, SortOrganization,
		SortRegion, SortEligibility, SortDriver, SortProgramming,
	}
}

// ParseSortKey maps a name to a SortKey; empty selects the default.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return SortDefault, nil
	}
	if slices.Contains(SortKeys(), k) {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// Sort orders results in place. Every key ends with a team id tiebreak, so
// the order is independent of the input order. Unknown keys fall back to the
// default ordering.
func Sort(results []model.Result, key SortKey) {
	// Collators keep internal buffers; one per call keeps Sort reentrant.
	col := collate.New(language.English, collate.Loose, collate.Numeric)
	text := func(a, b string) int { return col.CompareString(a, b) }

	var primary func(a, b model.Result) int
	switch key {
	case SortTeam:
		primary = func(a, b model.Result) int { return text(a.Team.Number, b.Team.Number) }
	case SortGrade:
		primary = func(a, b model.Result) int { return text(a.Team.Grade, b.Team.Grade) }
	case SortOrganization:
		primary = func(a, b model.Result) int { return text(a.Team.Organization, b.Team.Organization) }
	case SortRegion:
		primary = func(a, b model.Result) int { return text(a.Team.Region, b.Team.Region) }
	case SortEligibility:
		primary = byEligible
	case SortDriver:
		primary = func(a, b model.Result) int { return cmp.Compare(b.DriverScore, a.DriverScore) }
	case SortProgramming:
		primary = func(a, b model.Result) int { return cmp.Compare(b.ProgrammingScore, a.ProgrammingScore) }
	default:
		primary = func(a, b model.Result) int {
			if c := byEligible(a, b); c != 0 {
				return c
			}
			return byQualifyingRank(a, b)
		}
	}

	slices.SortFunc(results, func(a, b model.Result) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.Team.ID, b.Team.ID)
	})
}

func byEligible(a, b model.Result) int {
	switch {
	case a.Eligible == b.Eligible:
		return 0
	case a.Eligible:
		return -1
	default:
		return 1
	}
}

// byQualifyingRank sorts ascending with unranked teams last.
func byQualifyingRank(a, b model.Result) int {
	ar, br := a.QualifyingRank, b.QualifyingRank
	switch {
	case ar <= 0 && br <= 0:
		return 0
	case ar <= 0:
		return 1
	case br <= 0:
		return -1
	default:
		return cmp.Compare(ar, br)
	}
}
