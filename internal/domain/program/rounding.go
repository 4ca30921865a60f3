package program

import "math"

// Rounding converts the fractional cutoff (pool size × threshold) to a whole
// rank position. Each program row selects one strategy up front.
type Rounding interface {
	Round(x float64) int
	String() string
}

// Rounding strategies. They agree everywhere except at exact .5 boundaries.
var (
	HalfEven Rounding = halfEven{}
	HalfUp   Rounding = halfUp{}
)

type halfEven struct{}

func (halfEven) Round(x float64) int { return int(math.RoundToEven(x)) }
func (halfEven) String() string      { return "half_even" }

type halfUp struct{}

// Round rounds ties toward positive infinity. math.Floor(x+0.5) is avoided
// because the addition itself can round up values just below .5.
func (halfUp) Round(x float64) int {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return int(f)
}

func (halfUp) String() string { return "half_up" }
