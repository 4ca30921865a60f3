// Package program holds the static per-program award rules.
package program

import (
	"fmt"
	"slices"
	"strings"
)

// ID identifies a competition program.
type ID string

// Known programs.
const (
	V5RC  ID = "V5RC"
	VIQRC ID = "VIQRC"
	VEXU  ID = "VEXU"
	VAIRC ID = "VAIRC"
	ADC   ID = "ADC"
)

// Grade labels used by the grade partitions.
const (
	GradeElementary = "Elementary School"
	GradeMiddle     = "Middle School"
	GradeHigh       = "High School"
)

// Rules are the eligibility constants for one program.
type Rules struct {
	ID   ID
	Name string

	// Threshold is the fraction of a pool counted as "in rank", in (0, 1].
	Threshold float64

	RequiresProgrammingScore bool
	RequiresDriverScore      bool

	RequiresProgrammingOnlyRank bool
	ProgrammingOnlyThreshold    float64

	// SubdividesByGrade enables per-grade pools when an event's awards are
	// split by grade.
	SubdividesByGrade bool
	GradePartitions   []string

	Rounding Rounding
}

// table is ordered; All returns rows in this order.
var table = [...]Rules{
	{
		ID:                          V5RC,
		Name:                        "VEX V5 Robotics Competition",
		Threshold:                   0.4,
		RequiresProgrammingOnlyRank: true,
		ProgrammingOnlyThreshold:    0.4,
		SubdividesByGrade:           true,
		GradePartitions:             []string{GradeMiddle, GradeHigh},
		Rounding:                    HalfUp,
	},
	{
		ID:                       VIQRC,
		Name:                     "VEX IQ Robotics Competition",
		Threshold:                0.4,
		RequiresProgrammingScore: true,
		RequiresDriverScore:      true,
		SubdividesByGrade:        true,
		GradePartitions:          []string{GradeElementary, GradeMiddle},
		Rounding:                 HalfUp,
	},
	{
		ID:                          VEXU,
		Name:                        "VEX U Robotics Competition",
		Threshold:                   0.4,
		RequiresProgrammingOnlyRank: true,
		ProgrammingOnlyThreshold:    0.4,
		Rounding:                    HalfUp,
	},
	{
		ID:        VAIRC,
		Name:      "VEX AI Robotics Competition",
		Threshold: 0.4,
		Rounding:  HalfUp,
	},
	{
		ID:                       ADC,
		Name:                     "Aerial Drone Competition",
		Threshold:                0.5,
		RequiresProgrammingScore: true,
		RequiresDriverScore:      true,
		SubdividesByGrade:        true,
		GradePartitions:          []string{GradeMiddle, GradeHigh},
		Rounding:                 HalfEven,
	},
}

var aliases = map[string]ID{
	"VRC":   V5RC,
	"V5":    V5RC,
	"IQ":    VIQRC,
	"VIQC":  VIQRC,
	"VEX U": VEXU,
	"VEXU":  VEXU,
	"VURC":  VEXU,
	"AI":    VAIRC,
	"VAIC":  VAIRC,
	"DRONE": ADC,
}

// Lookup returns the rules for id. The returned value is a copy and may be
// modified freely.
func Lookup(id ID) (Rules, bool) {
	for _, r := range table {
		if r.ID == id {
			return r.clone(), true
		}
	}
	return Rules{}, false
}

// All returns every program row in table order.
func All() []Rules {
	out := make([]Rules, 0, len(table))
	for _, r := range table {
		out = append(out, r.clone())
	}
	return out
}

// Parse resolves a user-supplied program name, accepting legacy aliases.
func Parse(s string) (ID, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if key == "" {
		return "", fmt.Errorf("%w: empty program", ErrUnknownProgram)
	}
	if _, ok := Lookup(ID(key)); ok {
		return ID(key), nil
	}
	if id, ok := aliases[key]; ok {
		return id, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProgram, s)
}

// HasGrade reports whether label is one of the program's grade partitions.
func (r Rules) HasGrade(label string) bool {
	return slices.Contains(r.GradePartitions, label)
}

func (r Rules) clone() Rules {
	r.GradePartitions = slices.Clone(r.GradePartitions)
	return r
}
