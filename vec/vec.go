package vec

import "unsafe"

// InitCapacity is the number of item slots reserved by a fresh vector.
const InitCapacity = 128

// Vector is a growable buffer of T with amortized doubling growth.
//
// The zero value is not usable; create vectors with New or NewWithLength.
type Vector[T any] struct {
	buf   []T // len(buf) == capacity
	count int
}

// New creates an empty vector with the default capacity.
func New[T any]() *Vector[T] {
	return NewWithLength[T](0)
}

// NewWithLength creates a vector holding count zero-valued items.
// Capacity is InitCapacity, doubled as often as needed so that
// count stays strictly below it.
//
// A negative count is a caller bug and panics.
func NewWithLength[T any](count int) *Vector[T] {
	if count < 0 {
		panic("vec: negative count")
	}

	capacity := InitCapacity
	for count >= capacity {
		capacity *= 2
	}

	return &Vector[T]{
		buf:   make([]T, capacity),
		count: count,
	}
}

// UnitSize returns the byte width of one item.
func (v *Vector[T]) UnitSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Count returns the logical item count.
func (v *Vector[T]) Count() int {
	return v.count
}

// Capacity returns the number of allocated item slots.
func (v *Vector[T]) Capacity() int {
	return v.capacity()
}

func (v *Vector[T]) capacity() int {
	return len(v.buf)
}

// Resize sets the logical count. Growing past the current capacity
// doubles it (repeatedly, when one doubling is not enough) and
// relocates the buffer, preserving existing items. Shrinking zeroes
// the abandoned tail and never releases capacity.
//
// A negative count is a caller bug and panics.
func (v *Vector[T]) Resize(count int) {
	if count < 0 {
		panic("vec: negative count")
	}

	if count >= v.capacity() {
		capacity := v.capacity()
		for count >= capacity {
			capacity *= 2
		}

		grown := make([]T, capacity)
		copy(grown, v.buf[:v.count])
		v.buf = grown
	}

	if count < v.count {
		clear(v.buf[count:v.count])
	}

	v.count = count
}

// Extend grows the logical count by n items.
func (v *Vector[T]) Extend(n int) {
	v.Resize(v.count + n)
}

// At returns a pointer into the buffer at pos, clamped: positions at
// or past the count yield the last item, negative positions the first.
// The pointer stays valid until the next Resize or Extend.
func (v *Vector[T]) At(pos int) *T {
	if pos <= 0 {
		return &v.buf[0]
	}

	if pos >= v.count {
		if v.count == 0 {
			return &v.buf[0]
		}

		return &v.buf[v.count-1]
	}

	return &v.buf[pos]
}

// Copy writes items into the buffer starting at pos. Writes are
// bounded by the logical count: a position at or past the count is a
// no-op and a run that would overrun is silently truncated. Source and
// destination may overlap.
func (v *Vector[T]) Copy(pos int, items []T) {
	if len(items) == 0 || pos < 0 || pos >= v.count {
		return
	}

	n := len(items)
	if n > v.count-pos {
		n = v.count - pos
	}

	copy(v.buf[pos:pos+n], items[:n])
}

// Set writes a single item at pos, with the same bounds policy as Copy.
func (v *Vector[T]) Set(pos int, item T) {
	if pos < 0 || pos >= v.count {
		return
	}

	v.buf[pos] = item
}

// Get reads the item at the clamped position pos.
func (v *Vector[T]) Get(pos int) T {
	return *v.At(pos)
}

// Items returns the logical window of the buffer. The slice aliases
// the vector's storage and is invalidated by Resize and Extend.
func (v *Vector[T]) Items() []T {
	return v.buf[:v.count]
}

// Raw returns the full allocated buffer, capacity slots long. Slots
// past Count are zero-valued.
func (v *Vector[T]) Raw() []T {
	return v.buf
}

// Clone returns an independent copy with the same items, count and
// capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	buf := make([]T, len(v.buf))
	copy(buf, v.buf[:v.count])

	return &Vector[T]{
		buf:   buf,
		count: v.count,
	}
}
