package str

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_Format(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []any
		expected string
	}{
		{"literal only", "ciao mondo", nil, "ciao mondo"},
		{"strings", "%s -> %s", []any{"ciao", "mondo"}, "ciao -> mondo"},
		{"string from String", "%s", []any{New("ciao")}, "ciao"},
		{"string from bytes", "%s", []any{[]byte("ciao")}, "ciao"},
		{"ints", "%i :: %i", []any{64, 1024}, "64 :: 1024"},
		{"negative int", "%i", []any{-42}, "-42"},
		{"int32", "%i", []any{int32(7)}, "7"},
		{"int32 max", "%i", []any{math.MaxInt32}, "2147483647"},
		{"int32 min", "%i", []any{math.MinInt32}, "-2147483648"},
		{"long", "%l", []any{int64(math.MinInt64)}, "-9223372036854775808"},
		{"unsigned", "%u", []any{uint64(math.MaxUint64)}, "18446744073709551615"},
		{"float", "%f", []any{3.5}, "3.5"},
		{"float shortest form", "%f", []any{64.0}, "64"},
		{"float large", "%f", []any{-math.MaxFloat64}, "-1.7976931348623157e+308"},
		{"unknown directive", "%K", []any{"ciao"}, "???"},
		{"unknown keeps scanning", "a%Kb", []any{}, "a???b"},
		{"trailing percent", "ciao%", nil, "ciao"},
		{"escaped-looking percent", "100%%", nil, "100???"},
		{"missing argument", "%s", nil, "???"},
		{"mismatched argument", "%i", []any{"ciao"}, "???"},
		{"mixed", "v%i.%i-%s", []any{1, 2, "beta"}, "v1.2-beta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("stale content")

			s.Format(tt.format, tt.args...)

			assert.Equal(t, tt.expected, s.String())
			assert.Equal(t, uint8(0), s.Terminated()[s.Length()], "missing terminator byte")
		})
	}
}

func TestString_Format_IntDirectiveOutOfRange(t *testing.T) {
	if strconv.IntSize == 32 {
		t.Skip("int cannot exceed 32 bits on this platform")
	}

	over := int64(math.MaxInt32) + 1
	under := int64(math.MinInt32) - 1

	s := Empty()

	s.Format("%i", int(over))
	assert.Equal(t, "???", s.String())

	s.Format("%i", int(under))
	assert.Equal(t, "???", s.String())

	// The same value is in range for the 64-bit directive.
	s.Format("%l", int(over))
	assert.Equal(t, "2147483648", s.String())
}

func TestString_Format_EmptyFormatIsNoop(t *testing.T) {
	s := New("ciao")

	s.Format("")

	assert.Equal(t, "ciao", s.String())
}

func TestString_Format_Chaining(t *testing.T) {
	got := Empty().Format("%s %u", "count:", uint64(3)).Append("!").String()

	assert.Equal(t, "count: 3!", got)
}
