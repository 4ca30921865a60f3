// Package types contains the wire shapes shared by the service and the HTTP API.
package types

import (
	"time"

	"github.com/okian/awards/internal/domain/eligibility"
	"github.com/okian/awards/internal/domain/model"
	"github.com/okian/awards/internal/domain/program"
)

// EvaluationQuery selects how an event is evaluated and presented.
type EvaluationQuery struct {
	Program    string `json:"program"`
	GradeSplit bool   `json:"grade_split"`
	Sort       string `json:"sort,omitempty"`

	// Presentation filters. They never change ranks or verdicts.
	Grade        string `json:"grade,omitempty"`
	Query        string `json:"q,omitempty"`
	EligibleOnly bool   `json:"eligible_only,omitempty"`
}

// Filter returns the presentation filter of q.
func (q EvaluationQuery) Filter() eligibility.Filter {
	return eligibility.Filter{Grade: q.Grade, Query: q.Query, EligibleOnly: q.EligibleOnly}
}

// EventData is the collaborator-supplied input of one event.
type EventData struct {
	Roster    []model.Team               `json:"roster"`
	Standings []model.QualifyingStanding `json:"standings"`
	SkillRuns []model.RawSkillRun        `json:"skills"`
}

// EvaluationRequest is the body of POST /eligibility.
type EvaluationRequest struct {
	EvaluationQuery
	EventData
}

// SnapshotEntry is a stored event snapshot.
type SnapshotEntry struct {
	EventID   string    `json:"event_id"`
	Revision  string    `json:"revision"`
	UpdatedAt time.Time `json:"updated_at"`
	EventData
}

// RankEntry is a team's standing under one rank-based criterion.
type RankEntry struct {
	Rank   int  `json:"rank"`
	Cutoff int  `json:"cutoff"`
	InRank bool `json:"in_rank"`
}

// ScoreEntry is a team's best run of one skill kind.
type ScoreEntry struct {
	Score    int `json:"score"`
	Attempts int `json:"attempts"`
}

// ResultEntry is the wire shape of one team's verdict.
type ResultEntry struct {
	Team            model.Team `json:"team"`
	Eligible        bool       `json:"eligible"`
	Qualifying      RankEntry  `json:"qualifying"`
	Skills          RankEntry  `json:"skills"`
	ProgrammingOnly *RankEntry `json:"programming_only,omitempty"`
	Programming     ScoreEntry `json:"programming"`
	Driver          ScoreEntry `json:"driver"`
	// Failed names the applicable criteria the team does not meet.
	Failed []string `json:"failed,omitempty"`
}

// NewResultEntry converts r. The programming-only block is present only when
// the program has that criterion.
func NewResultEntry(rules program.Rules, r model.Result) ResultEntry {
	e := ResultEntry{
		Team:        r.Team,
		Eligible:    r.Eligible,
		Qualifying:  RankEntry{Rank: r.QualifyingRank, Cutoff: r.QualifyingCutoff, InRank: r.InQualifyingRank},
		Skills:      RankEntry{Rank: r.SkillsRank, Cutoff: r.SkillsCutoff, InRank: r.InSkillsRank},
		Programming: ScoreEntry{Score: r.ProgrammingScore, Attempts: r.ProgrammingAttempts},
		Driver:      ScoreEntry{Score: r.DriverScore, Attempts: r.DriverAttempts},
		Failed:      eligibility.Failed(rules, r),
	}
	if rules.RequiresProgrammingOnlyRank {
		e.ProgrammingOnly = &RankEntry{
			Rank:   r.ProgrammingOnlyRank,
			Cutoff: r.ProgrammingOnlyCutoff,
			InRank: r.MeetsProgrammingOnlyRank,
		}
	}
	return e
}

// PoolEntry is the wire shape of one ranking pool.
type PoolEntry struct {
	Criterion string `json:"criterion"`
	Pool      string `json:"pool"`
	Grade     string `json:"grade,omitempty"`
	Size      int    `json:"size"`
	Cutoff    int    `json:"cutoff"`
	Ranked    bool   `json:"ranked"`
}

// NewPoolEntry converts p.
func NewPoolEntry(p eligibility.PoolSummary) PoolEntry {
	return PoolEntry{
		Criterion: p.Criterion,
		Pool:      p.Pool.String(),
		Grade:     p.Pool.Label(),
		Size:      p.Size,
		Cutoff:    p.Cutoff,
		Ranked:    p.Ranked,
	}
}

// Evaluation is the response of an eligibility evaluation.
type Evaluation struct {
	RunID      string `json:"run_id"`
	EventID    string `json:"event_id,omitempty"`
	Revision   string `json:"revision,omitempty"`
	Program    string `json:"program"`
	GradeSplit bool   `json:"grade_split"`
	Sort       string `json:"sort"`

	// Attending and Eligible count every evaluated team, before filters.
	Attending int `json:"attending"`
	Eligible  int `json:"eligible"`

	Results []ResultEntry `json:"results"`
	Pools   []PoolEntry   `json:"pools"`
}

// ProgramEntry is the wire shape of one program rule row.
type ProgramEntry struct {
	ID                          string   `json:"id"`
	Name                        string   `json:"name"`
	Threshold                   float64  `json:"threshold"`
	RequiresProgrammingScore    bool     `json:"requires_programming_score"`
	RequiresDriverScore         bool     `json:"requires_driver_score"`
	RequiresProgrammingOnlyRank bool     `json:"requires_programming_only_rank"`
	ProgrammingOnlyThreshold    float64  `json:"programming_only_threshold,omitempty"`
	SubdividesByGrade           bool     `json:"subdivides_by_grade"`
	GradePartitions             []string `json:"grade_partitions,omitempty"`
	Rounding                    string   `json:"rounding"`
}

// NewProgramEntry converts r.
func NewProgramEntry(r program.Rules) ProgramEntry {
	return ProgramEntry{
		ID:                          string(r.ID),
		Name:                        r.Name,
		Threshold:                   r.Threshold,
		RequiresProgrammingScore:    r.RequiresProgrammingScore,
		RequiresDriverScore:         r.RequiresDriverScore,
		RequiresProgrammingOnlyRank: r.RequiresProgrammingOnlyRank,
		ProgrammingOnlyThreshold:    r.ProgrammingOnlyThreshold,
		SubdividesByGrade:           r.SubdividesByGrade,
		GradePartitions:             r.GradePartitions,
		Rounding:                    r.Rounding.String(),
	}
}
