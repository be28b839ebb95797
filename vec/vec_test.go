package vec

import "testing"

func TestNew(t *testing.T) {
	v := New[byte]()

	if v.Count() != 0 {
		t.Errorf("expected count=0, got %d", v.Count())
	}
	if v.Capacity() != InitCapacity {
		t.Errorf("expected capacity=%d, got %d", InitCapacity, v.Capacity())
	}
	if v.UnitSize() != 1 {
		t.Errorf("expected unit size=1, got %d", v.UnitSize())
	}
}

func TestNewWithLength(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		minCapacity int
	}{
		{"zero", 0, InitCapacity},
		{"small", 10, InitCapacity},
		{"just below default", InitCapacity - 1, InitCapacity},
		{"at default", InitCapacity, 2 * InitCapacity},
		{"large", 1024, 2048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewWithLength[uint32](tt.count)

			if v.Count() != tt.count {
				t.Errorf("expected count=%d, got %d", tt.count, v.Count())
			}
			if v.Capacity() < tt.minCapacity {
				t.Errorf("expected capacity>=%d, got %d", tt.minCapacity, v.Capacity())
			}
			for i, item := range v.Items() {
				if item != 0 {
					t.Fatalf("item at index %d not zero: %d", i, item)
				}
			}
		})
	}
}

func TestNewWithLength_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative count")
		}
	}()

	NewWithLength[byte](-1)
}

func TestVector_Resize(t *testing.T) {
	v := New[int]()

	// Growing through several doublings keeps count exact and
	// capacity monotonic.
	prevCap := v.Capacity()
	for _, count := range []int{1, 100, 128, 500, 4096} {
		v.Resize(count)

		if v.Count() != count {
			t.Errorf("expected count=%d, got %d", count, v.Count())
		}
		if v.Capacity() < prevCap {
			t.Errorf("capacity shrank: %d -> %d", prevCap, v.Capacity())
		}
		if v.Count() >= v.Capacity() {
			t.Errorf("count=%d not below capacity=%d", v.Count(), v.Capacity())
		}
		prevCap = v.Capacity()
	}

	// Shrinking back down never reduces capacity.
	for _, count := range []int{4095, 128, 1, 0} {
		v.Resize(count)

		if v.Count() != count {
			t.Errorf("expected count=%d, got %d", count, v.Count())
		}
		if v.Capacity() != prevCap {
			t.Errorf("expected capacity=%d, got %d", prevCap, v.Capacity())
		}
	}
}

func TestVector_Resize_ZeroesTail(t *testing.T) {
	v := NewWithLength[byte](8)
	for i := 0; i < 8; i++ {
		v.Set(i, 0xFF)
	}

	v.Resize(3)
	v.Resize(8)

	want := []byte{0xFF, 0xFF, 0xFF, 0, 0, 0, 0, 0}
	for i, b := range v.Items() {
		if b != want[i] {
			t.Errorf("item at index %d: expected %d, got %d", i, want[i], b)
		}
	}
}

func TestVector_Resize_PreservesItems(t *testing.T) {
	v := NewWithLength[int](4)
	for i := 0; i < 4; i++ {
		v.Set(i, i+1)
	}

	v.Resize(1000) // forces relocation

	for i := 0; i < 4; i++ {
		if v.Get(i) != i+1 {
			t.Errorf("item at index %d: expected %d, got %d", i, i+1, v.Get(i))
		}
	}
	for i := 4; i < 1000; i++ {
		if v.Get(i) != 0 {
			t.Fatalf("item at index %d not zero: %d", i, v.Get(i))
		}
	}
}

func TestVector_Extend(t *testing.T) {
	v := NewWithLength[byte](10)

	v.Extend(5)

	if v.Count() != 15 {
		t.Errorf("expected count=15, got %d", v.Count())
	}
}

func TestVector_At_Clamps(t *testing.T) {
	v := NewWithLength[int](3)
	for i := 0; i < 3; i++ {
		v.Set(i, i+1)
	}

	tests := []struct {
		name     string
		pos      int
		expected int
	}{
		{"first", 0, 1},
		{"middle", 1, 2},
		{"last", 2, 3},
		{"past end", 3, 3},
		{"far past end", 1000, 3},
		{"negative", -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := *v.At(tt.pos); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestVector_Copy(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		v := NewWithLength[byte](5)

		v.Copy(1, []byte{1, 2, 3})

		want := []byte{0, 1, 2, 3, 0}
		for i, b := range v.Items() {
			if b != want[i] {
				t.Errorf("item at index %d: expected %d, got %d", i, want[i], b)
			}
		}
	})

	t.Run("truncates overrun", func(t *testing.T) {
		v := NewWithLength[byte](3)

		v.Copy(1, []byte{1, 2, 3, 4})

		want := []byte{0, 1, 2}
		for i, b := range v.Items() {
			if b != want[i] {
				t.Errorf("item at index %d: expected %d, got %d", i, want[i], b)
			}
		}
	})

	t.Run("past count is a no-op", func(t *testing.T) {
		v := NewWithLength[byte](3)

		v.Copy(3, []byte{1, 2})

		for i, b := range v.Items() {
			if b != 0 {
				t.Errorf("item at index %d not zero: %d", i, b)
			}
		}
	})

	t.Run("overlapping shift", func(t *testing.T) {
		v := NewWithLength[byte](6)
		v.Copy(0, []byte{'a', 'b', 'c', 'd', 0, 0})

		// Shift the buffer's own head two slots right.
		v.Copy(2, v.Items()[0:4])

		want := []byte{'a', 'b', 'a', 'b', 'c', 'd'}
		for i, b := range v.Items() {
			if b != want[i] {
				t.Errorf("item at index %d: expected %q, got %q", i, want[i], b)
			}
		}
	})
}

func TestVector_SetGet(t *testing.T) {
	v := NewWithLength[uint64](4)

	v.Set(2, 42)

	if got := v.Get(2); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	// Out-of-range Set is dropped, out-of-range Get clamps to the last item.
	v.Set(10, 7)
	if got := v.Get(10); got != 0 {
		t.Errorf("expected clamped read of last item (0), got %d", got)
	}
}

func TestVector_Clone(t *testing.T) {
	v := NewWithLength[byte](4)
	v.Copy(0, []byte{1, 2, 3, 4})

	c := v.Clone()
	c.Set(0, 9)

	if v.Get(0) != 1 {
		t.Error("clone mutation leaked into the original")
	}
	if c.Count() != v.Count() || c.Capacity() != v.Capacity() {
		t.Errorf("clone metadata mismatch: count %d/%d capacity %d/%d",
			c.Count(), v.Count(), c.Capacity(), v.Capacity())
	}
}

func TestVector_UnitSize(t *testing.T) {
	if got := New[uint32]().UnitSize(); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := New[uint64]().UnitSize(); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
}
