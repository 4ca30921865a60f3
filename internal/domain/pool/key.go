// Package pool partitions attending teams into independent ranking pools.
package pool

type kind uint8

const (
	kindOverall kind = iota + 1
	kindGrade
	kindNoGrade
)

// Key identifies a ranking pool: Overall, Grade(label) or NoGrade. The zero
// Key is invalid. Keys are comparable and may be used as map keys.
type Key struct {
	kind  kind
	label string
}

// Overall is the single combined pool.
func Overall() Key { return Key{kind: kindOverall} }

// Grade is the pool of one configured grade label.
func Grade(label string) Key { return Key{kind: kindGrade, label: label} }

// NoGrade is the residual pool of teams whose grade matches no configured
// label.
func NoGrade() Key { return Key{kind: kindNoGrade} }

func (k Key) IsOverall() bool { return k.kind == kindOverall }
func (k Key) IsGrade() bool   { return k.kind == kindGrade }
func (k Key) IsNoGrade() bool { return k.kind == kindNoGrade }

// Label returns the grade label of a Grade key and "" for any other key.
func (k Key) Label() string { return k.label }

// Ranked reports whether members of this pool receive rank positions.
// The residual NoGrade pool is collected but never ranked.
func (k Key) Ranked() bool {
	return k.kind == kindOverall || k.kind == kindGrade
}

func (k Key) String() string {
	switch k.kind {
	case kindOverall:
		return "overall"
	case kindGrade:
		return "grade:" + k.label
	case kindNoGrade:
		return "no_grade"
	default:
		return "invalid"
	}
}
