// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Team is the external identity of a registered team. The engine passes it
// through unmodified.
type Team struct {
	ID           int    `json:"id"`
	Number       string `json:"number"`
	Name         string `json:"name,omitempty"`
	Grade        string `json:"grade"`
	Organization string `json:"organization,omitempty"`
	Region       string `json:"region,omitempty"`
}

// QualifyingStanding is one row of the raw qualification rankings.
// A Rank <= 0 means the team has no valid standing.
type QualifyingStanding struct {
	TeamID int `json:"team_id"`
	Rank   int `json:"rank"`
}

// SkillKind distinguishes autonomous programming runs from driver runs.
type SkillKind uint8

// Skill kinds.
const (
	Programming SkillKind = iota + 1
	Driver
)

// String returns the wire name of the kind.
func (k SkillKind) String() string {
	switch k {
	case Programming:
		return "programming"
	case Driver:
		return "driver"
	default:
		return "unknown"
	}
}

// ParseSkillKind maps a wire name to a SkillKind.
func ParseSkillKind(s string) (SkillKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "programming", "autonomous", "auto":
		return Programming, nil
	case "driver":
		return Driver, nil
	default:
		return 0, fmt.Errorf("unknown skill kind %q", s)
	}
}

// MarshalJSON encodes the kind as its wire name.
func (k SkillKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a wire name into a kind.
func (k *SkillKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseSkillKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// RawSkillRun is a single skills attempt record as reported upstream.
type RawSkillRun struct {
	TeamID   int       `json:"team_id"`
	Kind     SkillKind `json:"kind"`
	Score    int       `json:"score"`
	Attempts int       `json:"attempts"`
}

// TeamSkills holds a team's best programming run and best driver run.
type TeamSkills struct {
	TeamID              int
	ProgrammingScore    int
	ProgrammingAttempts int
	DriverScore         int
	DriverAttempts      int
	CombinedScore       int
}
