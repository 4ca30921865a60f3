// Package eligibility decides, per event, which attending teams qualify for a
// ranking-based award.
//
// Evaluate is a pure function of its inputs: it performs no I/O, keeps no
// state between calls and is safe to call concurrently.
package eligibility

import (
	"github.com/okian/awards/internal/domain/model"
	"github.com/okian/awards/internal/domain/pool"
	"github.com/okian/awards/internal/domain/program"
	"github.com/okian/awards/internal/domain/rank"
	"github.com/okian/awards/internal/domain/skills"
)

// Input is everything one evaluation consumes.
type Input struct {
	Roster    []model.Team
	Standings []model.QualifyingStanding
	SkillRuns []model.RawSkillRun

	// GradeSplit is true when this event's awards for the program are split
	// by grade. It is computed by the caller.
	GradeSplit bool
}

// Evaluate runs the full pipeline and returns one result per attending team in
// default order. Malformed input degrades to defaults; an empty result is the
// only failure mode.
func Evaluate(rules program.Rules, in Input) []model.Result {
	return Run(rules, in).Results
}

// Run is Evaluate plus a summary of every pool that was ranked.
func Run(rules program.Rules, in Input) Report {
	teams, qual := attending(in.Roster, in.Standings)
	if len(teams) == 0 {
		return Report{Results: []model.Result{}}
	}

	table := skills.Aggregate(in.SkillRuns)
	cs := make([]pool.Candidate, 0, len(teams))
	for _, t := range teams {
		cs = append(cs, pool.Candidate{
			TeamID:         t.ID,
			Grade:          t.Grade,
			QualifyingRank: qual[t.ID],
			Skills:         table.For(t.ID),
		})
	}

	p := pool.NewPartitioner(rules, in.GradeSplit)
	qs, ss := p.Qualifying(cs), p.Skills(cs)
	qualifying := rank.Calculate(qs, rank.Ascending, rules.Threshold, rules.Rounding)
	skillsRank := rank.Calculate(ss, rank.Descending, rules.Threshold, rules.Rounding)
	pools := summarize(CriterionQualifyingRank, qs, rules.Threshold, rules.Rounding)
	pools = append(pools, summarize(CriterionSkillsRank, ss, rules.Threshold, rules.Rounding)...)
	progOnly := rank.Table{}
	if rules.RequiresProgrammingOnlyRank {
		po := p.ProgrammingOnly(cs)
		progOnly = rank.Calculate(po, rank.Descending, rules.ProgrammingOnlyThreshold, rules.Rounding)
		pools = append(pools, summarize(CriterionProgrammingOnlyRank, po, rules.ProgrammingOnlyThreshold, rules.Rounding)...)
	}

	out := make([]model.Result, 0, len(teams))
	for i, t := range teams {
		s := cs[i].Skills
		q := qualifying.Lookup(t.ID)
		sk := skillsRank.Lookup(t.ID)
		po := progOnly.Lookup(t.ID)

		r := model.Result{
			Team: t,

			QualifyingRank:   q.Position,
			QualifyingCutoff: q.Cutoff,
			InQualifyingRank: q.InRank(),

			SkillsRank:   sk.Position,
			SkillsCutoff: sk.Cutoff,
			InSkillsRank: sk.InRank(),

			ProgrammingOnlyRank:      po.Position,
			ProgrammingOnlyCutoff:    po.Cutoff,
			MeetsProgrammingOnlyRank: po.InRank(),

			ProgrammingScore:    s.ProgrammingScore,
			ProgrammingAttempts: s.ProgrammingAttempts,
			DriverScore:         s.DriverScore,
			DriverAttempts:      s.DriverAttempts,
		}
		r.Eligible = Verdict(rules, r)
		out = append(out, r)
	}

	Sort(out, SortDefault)
	return Report{Results: out, Pools: pools}
}

// Verdict is the conjunction of every criterion that applies to the program.
func Verdict(rules program.Rules, r model.Result) bool {
	return r.InQualifyingRank &&
		r.InSkillsRank &&
		(r.MeetsProgrammingOnlyRank || !rules.RequiresProgrammingOnlyRank) &&
		(r.ProgrammingScore > 0 || !rules.RequiresProgrammingScore) &&
		(r.DriverScore > 0 || !rules.RequiresDriverScore)
}

// attending returns roster teams with a positive qualifying rank, in roster
// order, plus each one's rank. Duplicate standings keep the lowest positive
// rank; duplicate roster entries keep the first.
func attending(roster []model.Team, standings []model.QualifyingStanding) ([]model.Team, map[int]int) {
	qual := make(map[int]int, len(standings))
	for _, s := range standings {
		if s.Rank <= 0 {
			continue
		}
		if cur, ok := qual[s.TeamID]; !ok || s.Rank < cur {
			qual[s.TeamID] = s.Rank
		}
	}

	teams := make([]model.Team, 0, len(qual))
	seen := make(map[int]bool, len(roster))
	for _, t := range roster {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		if _, ok := qual[t.ID]; ok {
			teams = append(teams, t)
		}
	}
	return teams, qual
}
