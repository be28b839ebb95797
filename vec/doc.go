// Package vec implements a generic growable buffer with explicit
// count/capacity metadata.
//
// A Vector owns a single contiguous allocation and distinguishes its
// logical item count from its allocated capacity. Capacity starts at
// InitCapacity, only ever doubles and never shrinks; slots past the
// logical count are always zero-valued, so shrinking and re-growing a
// vector exposes zero items, never stale ones.
//
// Positional access is deliberately forgiving: At clamps out-of-range
// positions instead of panicking, and Copy truncates writes that would
// overrun the logical count. Higher layers rely on this policy.
//
// Vectors are not safe for concurrent use; serialization is the
// caller's responsibility.
package vec
