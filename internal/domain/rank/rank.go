// Package rank assigns dense positions inside ranking pools and derives the
// threshold cutoff for each pool.
package rank

import (
	"cmp"
	"slices"

	"github.com/okian/awards/internal/domain/model"
	"github.com/okian/awards/internal/domain/pool"
	"github.com/okian/awards/internal/domain/program"
)

// Order is the direction a pool's metric is ranked in.
type Order uint8

const (
	// Ascending ranks the smallest metric first (external qualifying ranks).
	Ascending Order = iota
	// Descending ranks the largest metric first (scores).
	Descending
)

// Cutoff returns max(1, round(size × threshold)).
func Cutoff(size int, threshold float64, r program.Rounding) int {
	return max(1, r.Round(float64(size)*threshold))
}

// Placement is a team's position in its pool and the pool's cutoff.
type Placement struct {
	Pool     pool.Key
	Position int
	Cutoff   int
	Size     int
}

// InRank reports whether the position is within the cutoff.
func (p Placement) InRank() bool {
	return p.Position > 0 && p.Position <= p.Cutoff
}

// absent is the placement of a team that belongs to no pool.
var absent = Placement{Position: model.Unranked, Cutoff: 1}

// Table maps team ids to placements for one criterion.
type Table map[int]Placement

// Lookup returns the placement for teamID, or an unranked placement with
// cutoff 1 when the team is in no pool.
func (t Table) Lookup(teamID int) Placement {
	if p, ok := t[teamID]; ok {
		return p
	}
	return absent
}

// Ordered returns a copy of entries in ranking order. Equal metrics are
// broken by team id ascending so the result never depends on input order.
func Ordered(entries []pool.Entry, o Order) []pool.Entry {
	out := slices.Clone(entries)
	slices.SortFunc(out, func(a, b pool.Entry) int {
		c := cmp.Compare(a.Metric, b.Metric)
		if o == Descending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.TeamID, b.TeamID)
	})
	return out
}

// Calculate ranks every pool in set. Positions are dense, 1..k, with no tie
// compression. Members of unranked pools get position -1.
func Calculate(set pool.Set, o Order, threshold float64, r program.Rounding) Table {
	t := make(Table)
	for _, p := range set.Pools() {
		cutoff := Cutoff(p.Size(), threshold, r)
		for i, e := range Ordered(p.Entries, o) {
			pos := i + 1
			if !p.Key.Ranked() {
				pos = model.Unranked
			}
			t[e.TeamID] = Placement{Pool: p.Key, Position: pos, Cutoff: cutoff, Size: p.Size()}
		}
	}
	return t
}
