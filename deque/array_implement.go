package deque

const (
	// capacity is rounded up to a multiple of base
	base = 8
)

// ArrDeque stores elements in a ring over a single slice; start is the index of the front.
type ArrDeque[T any] struct {
	arr      []T
	start    int
	size     int
	capacity int
}

var _ Deque[int] = (*ArrDeque[int])(nil)

// NewArrDeque returns an empty deque holding at least capacity elements.
func NewArrDeque[T any](capacity int) *ArrDeque[T] {
	if capacity < 1 {
		capacity = 1
	}
	if remainder := capacity % base; remainder != 0 {
		capacity = capacity - remainder + base
	}
	return &ArrDeque[T]{
		arr:      make([]T, capacity),
		capacity: capacity,
	}
}

func (ad *ArrDeque[T]) Size() int {
	return ad.size
}

func (ad *ArrDeque[T]) Capacity() int {
	return ad.capacity
}

func (ad *ArrDeque[T]) index(i int) int {
	return (ad.start + i) % ad.capacity
}

func (ad *ArrDeque[T]) Get(i int) T {
	if i < 0 || i >= ad.size {
		panic("index out of length")
	}
	return ad.arr[ad.index(i)]
}

func (ad *ArrDeque[T]) Set(i int, v T) {
	if i < 0 || i >= ad.size {
		panic("index out of length")
	}
	ad.arr[ad.index(i)] = v
}

func (ad *ArrDeque[T]) Traverse(f func(i int, item *T)) {
	ad.TraverseRange(0, ad.size, f)
}

func (ad *ArrDeque[T]) TraverseRange(start, end int, f func(i int, item *T)) {
	if start < 0 {
		start = 0
	}
	if end > ad.size {
		end = ad.size
	}
	for i := start; i < end; i++ {
		f(i, &ad.arr[ad.index(i)])
	}
}

func (ad *ArrDeque[T]) AddLast(v T) bool {
	if ad.IsFull() {
		return false
	}
	ad.arr[ad.index(ad.size)] = v
	ad.size++
	return true
}

func (ad *ArrDeque[T]) RemoveLast() (T, bool) {
	var zero T
	if ad.IsEmpty() {
		return zero, false
	}
	ad.size--
	i := ad.index(ad.size)
	v := ad.arr[i]
	ad.arr[i] = zero
	return v, true
}

func (ad *ArrDeque[T]) AddFirst(v T) bool {
	if ad.IsFull() {
		return false
	}
	ad.start = (ad.start - 1 + ad.capacity) % ad.capacity
	ad.arr[ad.start] = v
	ad.size++
	return true
}

func (ad *ArrDeque[T]) RemoveFirst() (T, bool) {
	var zero T
	if ad.IsEmpty() {
		return zero, false
	}
	v := ad.arr[ad.start]
	ad.arr[ad.start] = zero
	ad.start = (ad.start + 1) % ad.capacity
	ad.size--
	return v, true
}

func (ad *ArrDeque[T]) Clear() {
	var zero T
	for i := range ad.arr {
		ad.arr[i] = zero
	}
	ad.start, ad.size = 0, 0
}

func (ad *ArrDeque[T]) IsFull() bool {
	return ad.size == ad.capacity
}

func (ad *ArrDeque[T]) IsEmpty() bool {
	return ad.size == 0
}

// Slice copies the elements front to back.
func (ad *ArrDeque[T]) Slice() []T {
	out := make([]T, 0, ad.size)
	ad.Traverse(func(_ int, item *T) {
		out = append(out, *item)
	})
	return out
}
