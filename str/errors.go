package str

import "errors"

var (
	// ErrOutOfRange is returned when a position lies beyond the
	// current string length.
	ErrOutOfRange = errors.New("str: position out of range")

	// ErrPatternTooLong is returned when a replacement target is
	// longer than the subject string.
	ErrPatternTooLong = errors.New("str: pattern longer than subject")

	// ErrOffsetOverflow is returned when a match offset does not fit
	// the 32-bit space of a MatchSet.
	ErrOffsetOverflow = errors.New("str: match offset exceeds 32 bits")
)
