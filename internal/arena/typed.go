package arena

import (
	"fmt"

	"fortio.org/safecast"
)

// Typed is a generic arena of T, handed out as 1-based indices rather than
// pointers so a handle stays valid when the backing slice grows. A Reset
// invalidates every handle handed out before it. Index 0 is reserved as
// the "no value" sentinel, matching the convention every AST and symbol
// handle in this compiler uses.
type Typed[T any] struct {
	data []T
}

// NewTyped creates a Typed[T] with a capacity hint.
func NewTyped[T any](capHint uint32) *Typed[T] {
	return &Typed[T]{data: make([]T, 0, capHint)}
}

// Alloc appends value and returns its 1-based handle.
func (a *Typed[T]) Alloc(value T) uint32 {
	a.data = append(a.data, value)
	return a.Len()
}

// Get returns a pointer to the element at handle, or nil for handle 0.
func (a *Typed[T]) Get(handle uint32) *T {
	if handle == 0 {
		return nil
	}
	return &a.data[handle-1]
}

// Len returns the number of elements allocated.
func (a *Typed[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena: typed arena length overflow: %w", err))
	}
	return n
}

// Reset truncates the arena to zero elements, keeping the backing array's
// capacity so the next session's allocations reuse the same memory.
func (a *Typed[T]) Reset() {
	a.data = a.data[:0]
}

// All returns a read-only view over every allocated element, in handle
// order.
func (a *Typed[T]) All() []T {
	return a.data
}
