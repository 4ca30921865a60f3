package eligibility

import (
	"github.com/okian/awards/internal/domain/model"
	"github.com/okian/awards/internal/domain/pool"
	"github.com/okian/awards/internal/domain/program"
	"github.com/okian/awards/internal/domain/rank"
)

// Report is the output of Run.
type Report struct {
	Results []model.Result
	// Pools lists each ranking pool per criterion, in criterion order and
	// then pool order.
	Pools []PoolSummary
}

// PoolSummary describes one ranking pool of one criterion.
type PoolSummary struct {
	Criterion string
	Pool      pool.Key
	Size      int
	Cutoff    int
	// Ranked is false for the residual pool of teams outside every grade.
	Ranked bool
}

// Eligible counts eligible results.
func (r Report) Eligible() int {
	n := 0
	for _, res := range r.Results {
		if res.Eligible {
			n++
		}
	}
	return n
}

func summarize(criterion string, set pool.Set, threshold float64, rounding program.Rounding) []PoolSummary {
	out := make([]PoolSummary, 0, set.Len())
	for _, p := range set.Pools() {
		out = append(out, PoolSummary{
			Criterion: criterion,
			Pool:      p.Key,
			Size:      p.Size(),
			Cutoff:    rank.Cutoff(p.Size(), threshold, rounding),
			Ranked:    p.Key.Ranked(),
		})
	}
	return out
}
