// Package deque is a fixed-capacity double-ended queue backed by one array.
// The optimizer history keeps its rolling window in it.
package deque

type Deque[T any] interface {
	// number of elements
	Size() int

	Capacity() int

	// element at index i, 0 is the front
	Get(i int) T

	Set(i int, v T)

	// front to back
	Traverse(f func(i int, item *T))

	// Traverse over [start, end)
	TraverseRange(start, end int, f func(i int, item *T))

	// returns false when full
	AddLast(v T) bool

	RemoveLast() (T, bool)

	AddFirst(v T) bool

	RemoveFirst() (T, bool)

	Clear()

	IsFull() bool

	IsEmpty() bool
}
