// Package skills reduces raw skills attempts into each team's best
// programming and best driver run.
package skills

import "github.com/okian/awards/internal/domain/model"

// best is the winning run for one team and kind.
type best struct {
	score    int
	attempts int
	seen     bool
}

// better reports whether a run with score/attempts should replace b.
// Higher score wins; on equal score fewer attempts wins.
func (b best) better(score, attempts int) bool {
	if !b.seen || score > b.score {
		return true
	}
	return score == b.score && attempts < b.attempts
}

type entry struct {
	programming best
	driver      best
}

// Fold is a streaming max-by-score reduction keyed by team id. The zero value
// is not usable; create one with NewFold.
type Fold struct {
	teams map[int]*entry
}

// NewFold returns an empty fold.
func NewFold() *Fold {
	return &Fold{teams: make(map[int]*entry)}
}

// Add folds one run into the accumulator. Negative scores and attempts are
// treated as zero; runs of an unknown kind are ignored.
func (f *Fold) Add(run model.RawSkillRun) {
	score := max(run.Score, 0)
	attempts := max(run.Attempts, 0)

	e, ok := f.teams[run.TeamID]
	if !ok {
		e = &entry{}
		f.teams[run.TeamID] = e
	}

	var slot *best
	switch run.Kind {
	case model.Programming:
		slot = &e.programming
	case model.Driver:
		slot = &e.driver
	default:
		return
	}
	if slot.better(score, attempts) {
		*slot = best{score: score, attempts: attempts, seen: true}
	}
}

// Table is the folded per-team result.
type Table map[int]model.TeamSkills

// Table materialises the fold.
func (f *Fold) Table() Table {
	out := make(Table, len(f.teams))
	for id, e := range f.teams {
		out[id] = model.TeamSkills{
			TeamID:              id,
			ProgrammingScore:    e.programming.score,
			ProgrammingAttempts: e.programming.attempts,
			DriverScore:         e.driver.score,
			DriverAttempts:      e.driver.attempts,
			CombinedScore:       e.programming.score + e.driver.score,
		}
	}
	return out
}

// Aggregate folds all runs at once.
func Aggregate(runs []model.RawSkillRun) Table {
	f := NewFold()
	for _, r := range runs {
		f.Add(r)
	}
	return f.Table()
}

// For returns the skills of teamID, or a zero record if the team has no runs.
func (t Table) For(teamID int) model.TeamSkills {
	if s, ok := t[teamID]; ok {
		return s
	}
	return model.TeamSkills{TeamID: teamID}
}
