package str

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/acerv/libvest/internal/conv"
)

// MatchSet is a set of match offsets backed by a 32-bit Roaring
// Bitmap, suitable for combining the results of several searches.
// It wraps the official roaring implementation.
type MatchSet struct {
	rb *roaring.Bitmap
}

// NewMatchSet creates an empty match set.
func NewMatchSet() *MatchSet {
	return &MatchSet{rb: roaring.New()}
}

// FindSet runs Find and collects the offsets into a MatchSet.
// Returns ErrOffsetOverflow for subjects whose match offsets exceed
// the 32-bit space (strings of 4 GiB or more).
func (s *String) FindSet(pattern string) (*MatchSet, error) {
	set := NewMatchSet()

	for _, off := range s.Find(pattern) {
		u, err := conv.IntToUint32(off)
		if err != nil {
			return nil, ErrOffsetOverflow
		}

		set.rb.Add(u)
	}

	return set, nil
}

// Add adds an offset to the set. Negative or over-wide offsets are
// reported as ErrOffsetOverflow.
func (m *MatchSet) Add(offset int) error {
	u, err := conv.IntToUint32(offset)
	if err != nil {
		return ErrOffsetOverflow
	}

	m.rb.Add(u)

	return nil
}

// Contains checks whether offset is in the set.
func (m *MatchSet) Contains(offset int) bool {
	u, err := conv.IntToUint32(offset)
	if err != nil {
		return false
	}

	return m.rb.Contains(u)
}

// Cardinality returns the number of offsets in the set.
func (m *MatchSet) Cardinality() uint64 {
	return m.rb.GetCardinality()
}

// IsEmpty returns true if the set contains no offsets.
func (m *MatchSet) IsEmpty() bool {
	return m.rb.IsEmpty()
}

// Union merges other into the receiver.
func (m *MatchSet) Union(other *MatchSet) {
	m.rb.Or(other.rb)
}

// Intersect keeps only offsets present in both sets.
func (m *MatchSet) Intersect(other *MatchSet) {
	m.rb.And(other.rb)
}

// Clone returns a deep copy of the set.
func (m *MatchSet) Clone() *MatchSet {
	return &MatchSet{rb: m.rb.Clone()}
}

// Offsets returns the offsets in ascending order.
func (m *MatchSet) Offsets() []int {
	out := make([]int, 0, m.rb.GetCardinality())
	for o := range m.Iterator() {
		out = append(out, o)
	}

	return out
}

// Iterator returns an iterator over the offsets in ascending order.
func (m *MatchSet) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := m.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
