package eligibility

import (
	"github.com/okian/awards/internal/domain/model"
	"github.com/okian/awards/internal/domain/program"
)

// Criterion names.
const (
	CriterionQualifyingRank      = "qualifying_rank"
	CriterionSkillsRank          = "skills_rank"
	CriterionProgrammingOnlyRank = "programming_only_rank"
	CriterionProgrammingScore    = "programming_score"
	CriterionDriverScore         = "driver_score"
)

// Criterion is one applicable sub-test of the verdict. Rank and Cutoff are
// set for rank-based criteria; Score for positivity criteria.
type Criterion struct {
	Name   string `json:"name"`
	Met    bool   `json:"met"`
	Rank   int    `json:"rank,omitempty"`
	Cutoff int    `json:"cutoff,omitempty"`
	Score  int    `json:"score,omitempty"`
}

// Explain lists the criteria that apply to rules, in evaluation order, with
// the values each was decided on.
func Explain(rules program.Rules, r model.Result) []Criterion {
	out := []Criterion{
		{Name: CriterionQualifyingRank, Met: r.InQualifyingRank, Rank: r.QualifyingRank, Cutoff: r.QualifyingCutoff},
		{Name: CriterionSkillsRank, Met: r.InSkillsRank, Rank: r.SkillsRank, Cutoff: r.SkillsCutoff},
	}
	if rules.RequiresProgrammingOnlyRank {
		out = append(out, Criterion{
			Name:   CriterionProgrammingOnlyRank,
			Met:    r.MeetsProgrammingOnlyRank,
			Rank:   r.ProgrammingOnlyRank,
			Cutoff: r.ProgrammingOnlyCutoff,
		})
	}
	if rules.RequiresProgrammingScore {
		out = append(out, Criterion{Name: CriterionProgrammingScore, Met: r.ProgrammingScore > 0, Score: r.ProgrammingScore})
	}
	if rules.RequiresDriverScore {
		out = append(out, Criterion{Name: CriterionDriverScore, Met: r.DriverScore > 0, Score: r.DriverScore})
	}
	return out
}

// Failed returns the names of the applicable criteria r does not meet.
func Failed(rules program.Rules, r model.Result) []string {
	var names []string
	for _, c := range Explain(rules, r) {
		if !c.Met {
			names = append(names, c.Name)
		}
	}
	return names
}
