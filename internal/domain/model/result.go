package model

// Unranked marks a team that is absent from a ranking pool.
const Unranked = -1

// Result is the eligibility verdict for one attending team together with the
// rank and cutoff behind every criterion.
type Result struct {
	Team Team

	QualifyingRank   int
	QualifyingCutoff int
	InQualifyingRank bool

	SkillsRank   int
	SkillsCutoff int
	InSkillsRank bool

	ProgrammingOnlyRank      int
	ProgrammingOnlyCutoff    int
	MeetsProgrammingOnlyRank bool

	ProgrammingScore    int
	ProgrammingAttempts int
	DriverScore         int
	DriverAttempts      int

	Eligible bool
}
