package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts v to uint32, rejecting values the target type
// cannot hold.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("conv: %d does not fit uint32 (negative)", v)
	}
	// Relevant on 64-bit platforms only; 32-bit ints never exceed it.
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("conv: %d does not fit uint32 (too large)", v)
	}
	return uint32(v), nil
}

// IntToUint64 converts v to uint64, rejecting negative values.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("conv: %d does not fit uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts v to int, rejecting values past the platform's
// int range.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("conv: %d does not fit int (too large)", v)
	}
	return int(v), nil
}
