package pool

import (
	"slices"
	"strings"

	"github.com/okian/awards/internal/domain/model"
	"github.com/okian/awards/internal/domain/program"
)

// Entry is one team's metric inside a pool.
type Entry struct {
	TeamID int
	Metric int
}

// Pool is the set of teams ranked together for one criterion. Entries keep
// candidate order; ordering for ranking is the rank package's job.
type Pool struct {
	Key     Key
	Entries []Entry
}

// Size returns the number of members.
func (p Pool) Size() int { return len(p.Entries) }

// Set is a typed collection of pools for one criterion.
type Set struct {
	pools  []Pool
	byKey  map[Key]int
	member map[int]Key
}

// Pools returns the pools in deterministic order: Overall, grade pools in
// configured label order, then NoGrade.
func (s Set) Pools() []Pool { return slices.Clone(s.pools) }

// Pool returns the pool with key k.
func (s Set) Pool(k Key) (Pool, bool) {
	i, ok := s.byKey[k]
	if !ok {
		return Pool{}, false
	}
	return s.pools[i], true
}

// KeyOf returns the pool a team was placed in.
func (s Set) KeyOf(teamID int) (Key, bool) {
	k, ok := s.member[teamID]
	return k, ok
}

// Len returns the number of pools.
func (s Set) Len() int { return len(s.pools) }

// Candidate is an attending team as seen by the pool builder.
type Candidate struct {
	TeamID         int
	Grade          string
	QualifyingRank int
	Skills         model.TeamSkills
}

// Partitioner decides pool granularity once per evaluation. The same value
// must build every criterion's pools so that "top N% of my group" refers to
// the same group for all of them.
type Partitioner struct {
	byGrade bool
	labels  []string
}

// NewPartitioner uses a single Overall pool unless the program subdivides by
// grade and this event's awards are split by grade.
func NewPartitioner(rules program.Rules, gradeSplit bool) Partitioner {
	if !rules.SubdividesByGrade || !gradeSplit || len(rules.GradePartitions) == 0 {
		return Partitioner{}
	}
	return Partitioner{byGrade: true, labels: slices.Clone(rules.GradePartitions)}
}

// ByGrade reports whether pools are split per grade.
func (p Partitioner) ByGrade() bool { return p.byGrade }

// KeyFor maps a team grade to its pool key.
func (p Partitioner) KeyFor(grade string) Key {
	if !p.byGrade {
		return Overall()
	}
	g := strings.TrimSpace(grade)
	if slices.Contains(p.labels, g) {
		return Grade(g)
	}
	return NoGrade()
}

// Qualifying builds the qualifying-rank pools; the metric is the external rank.
func (p Partitioner) Qualifying(cs []Candidate) Set {
	return p.build(cs, func(c Candidate) (int, bool) {
		return c.QualifyingRank, true
	})
}

// Skills builds the combined-skills pools.
func (p Partitioner) Skills(cs []Candidate) Set {
	return p.build(cs, func(c Candidate) (int, bool) {
		return c.Skills.CombinedScore, true
	})
}

// ProgrammingOnly builds the programming-only pools. Teams without a positive
// programming score are left out entirely.
func (p Partitioner) ProgrammingOnly(cs []Candidate) Set {
	return p.build(cs, func(c Candidate) (int, bool) {
		return c.Skills.ProgrammingScore, c.Skills.ProgrammingScore > 0
	})
}

func (p Partitioner) build(cs []Candidate, metric func(Candidate) (int, bool)) Set {
	grouped := make(map[Key][]Entry)
	member := make(map[int]Key, len(cs))
	for _, c := range cs {
		if _, dup := member[c.TeamID]; dup {
			continue
		}
		m, ok := metric(c)
		if !ok {
			continue
		}
		k := p.KeyFor(c.Grade)
		member[c.TeamID] = k
		grouped[k] = append(grouped[k], Entry{TeamID: c.TeamID, Metric: m})
	}

	s := Set{byKey: make(map[Key]int), member: member}
	for _, k := range p.order() {
		entries, ok := grouped[k]
		if !ok {
			continue
		}
		s.byKey[k] = len(s.pools)
		s.pools = append(s.pools, Pool{Key: k, Entries: entries})
	}
	return s
}

func (p Partitioner) order() []Key {
	if !p.byGrade {
		return []Key{Overall()}
	}
	keys := make([]Key, 0, len(p.labels)+1)
	for _, l := range p.labels {
		keys = append(keys, Grade(l))
	}
	return append(keys, NoGrade())
}
