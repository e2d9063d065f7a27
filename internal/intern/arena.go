// Package intern provides a bump-style arena and a generic hash-consing
// interner built on top of it (§4.7). Every AST node kind gets its own
// arena and, where structural sharing matters, its own interner; pointer
// identity into the arena then stands in for structural equality.
package intern

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a generic typed arena for allocating elements. It never moves or
// frees a value once allocated: every pointer Allocate returns stays valid
// for the arena's lifetime.
type Arena[T any] struct {
	data []*T
}

// NewArena creates an Arena with its backing slice pre-sized to capHint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]*T, 0, capHint)}
}

// Allocate copies value into the arena and returns a stable pointer to it.
func (a *Arena[T]) Allocate(value T) *T {
	elem := new(T)
	*elem = value
	a.data = append(a.data, elem)
	return elem
}

// Len returns the number of elements allocated so far.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("intern: arena length overflow: %w", err))
	}
	return n
}

// Slice returns every element allocated so far, in allocation order. The
// returned pointers alias the arena; callers must not mutate through them
// once a value has been interned, or pointer-identity equality breaks.
func (a *Arena[T]) Slice() []*T {
	out := make([]*T, len(a.data))
	copy(out, a.data)
	return out
}
