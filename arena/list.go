package arena

// minListCap is the capacity of a list's first backing array.
const minListCap = 4

// List is a growable slice whose backing array is tracked by an [Allocator].
//
// The allocation is keyed by the list itself rather than by its elements,
// since every backing array of a zero-size type shares one address.
type List[T any] struct {
	alloc   Allocator
	items   []T
	tracked bool
}

// NewList returns an empty list allocating from a. A positive capacity
// allocates the backing array immediately.
func NewList[T any](a Allocator, capacity int) *List[T] {
	l := &List[T]{alloc: a}
	if capacity > 0 {
		l.grow(capacity)
	}

	return l
}

// Append adds v to the end of the list.
func (l *List[T]) Append(v T) {
	if len(l.items) == cap(l.items) {
		l.grow(max(minListCap, 2*cap(l.items)))
	}

	l.items = append(l.items, v)
}

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// Items returns the list contents. The slice aliases the tracked backing
// array and stays valid until the list is freed or its arena released.
func (l *List[T]) Items() []T { return l.items }

// Free releases the backing array. The list is empty afterward.
func (l *List[T]) Free() {
	if l.tracked {
		l.alloc.release(l)
	}

	l.items = nil
	l.tracked = false
}

func (l *List[T]) grow(capacity int) {
	items := make([]T, len(l.items), capacity)
	copy(items, l.items)

	if l.tracked {
		l.alloc.release(l)
	}

	l.alloc.acquire(l, sizeOf[T](capacity))

	l.items = items
	l.tracked = true
}
