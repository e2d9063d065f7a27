package intern

import "math"

// FloatInterner hash-conses float64 literals by their raw IEEE-754 bit
// pattern rather than by float equality, so that two NaN literals with the
// same bits intern to the same node even though NaN != NaN under the
// language's own equality.
type FloatInterner struct {
	inner *Interner[float64]
	bits  map[uint64]*float64
}

// NewFloatInterner creates an empty FloatInterner pre-sized to capHint.
func NewFloatInterner(capHint uint) *FloatInterner {
	return &FloatInterner{
		inner: NewInterner[float64](capHint),
		bits:  make(map[uint64]*float64, capHint),
	}
}

// Intern returns the canonical pointer for v, keyed on its bit pattern.
func (fi *FloatInterner) Intern(v float64) *float64 {
	key := math.Float64bits(v)
	if p, ok := fi.bits[key]; ok {
		return p
	}
	p := fi.inner.arena.Allocate(v)
	fi.bits[key] = p
	return p
}

// Len returns the number of distinct bit patterns interned so far.
func (fi *FloatInterner) Len() uint32 { return fi.inner.Len() }
