package str

import (
	"math"
	"strconv"
)

// unknownDirective is emitted for unrecognized or unsatisfiable
// format directives.
const unknownDirective = "???"

// numBufSize holds the longest decimal rendering the directives can
// produce: int64 min "-9223372036854775808" is 20 bytes, uint64 max
// is 20 and float64 'g' peaks at "-1.7976931348623157e+308", 24.
const numBufSize = 32

// Format clears the string and rebuilds it from format in a single
// pass. Bytes other than '%' are appended verbatim. A '%' consumes
// exactly one directive byte:
//
//	%s  string, []byte or *String argument, appended verbatim
//	%i  signed 32-bit integer (int, int8, int16, int32), decimal;
//	    an int outside the 32-bit range renders "???"
//	%l  signed 64-bit integer (int64, int), decimal
//	%u  unsigned integer (uint, uint32, uint64), decimal
//	%f  floating point (float32, float64), shortest 'g' form
//
// Any other directive byte appends the literal "???", as does a
// missing or type-mismatched argument. A trailing '%' with nothing
// after it is dropped. An empty format leaves the string untouched.
//
// Returns the receiver for chaining.
func (s *String) Format(format string, args ...any) *String {
	if format == "" {
		return s
	}

	s.Clear()

	var buf [numBufSize]byte
	next := 0

	takeArg := func() (any, bool) {
		if next >= len(args) {
			return nil, false
		}

		arg := args[next]
		next++

		return arg, true
	}

	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			s.appendByte(format[i])
			continue
		}

		i++
		if i == len(format) {
			break
		}

		switch format[i] {
		case 's':
			arg, ok := takeArg()
			if !ok {
				s.Append(unknownDirective)
				break
			}

			switch v := arg.(type) {
			case string:
				s.Append(v)
			case []byte:
				s.Append(string(v))
			case *String:
				s.Append(v.String())
			default:
				s.Append(unknownDirective)
			}
		case 'i':
			arg, ok := takeArg()
			if !ok {
				s.Append(unknownDirective)
				break
			}

			switch v := arg.(type) {
			case int:
				if v < math.MinInt32 || v > math.MaxInt32 {
					s.Append(unknownDirective)
					break
				}

				s.Append(string(strconv.AppendInt(buf[:0], int64(v), 10)))
			case int8:
				s.Append(string(strconv.AppendInt(buf[:0], int64(v), 10)))
			case int16:
				s.Append(string(strconv.AppendInt(buf[:0], int64(v), 10)))
			case int32:
				s.Append(string(strconv.AppendInt(buf[:0], int64(v), 10)))
			default:
				s.Append(unknownDirective)
			}
		case 'l':
			arg, ok := takeArg()
			if !ok {
				s.Append(unknownDirective)
				break
			}

			switch v := arg.(type) {
			case int64:
				s.Append(string(strconv.AppendInt(buf[:0], v, 10)))
			case int:
				s.Append(string(strconv.AppendInt(buf[:0], int64(v), 10)))
			default:
				s.Append(unknownDirective)
			}
		case 'u':
			arg, ok := takeArg()
			if !ok {
				s.Append(unknownDirective)
				break
			}

			switch v := arg.(type) {
			case uint:
				s.Append(string(strconv.AppendUint(buf[:0], uint64(v), 10)))
			case uint32:
				s.Append(string(strconv.AppendUint(buf[:0], uint64(v), 10)))
			case uint64:
				s.Append(string(strconv.AppendUint(buf[:0], v, 10)))
			default:
				s.Append(unknownDirective)
			}
		case 'f':
			arg, ok := takeArg()
			if !ok {
				s.Append(unknownDirective)
				break
			}

			switch v := arg.(type) {
			case float64:
				s.Append(string(strconv.AppendFloat(buf[:0], v, 'g', -1, 64)))
			case float32:
				s.Append(string(strconv.AppendFloat(buf[:0], float64(v), 'g', -1, 32)))
			default:
				s.Append(unknownDirective)
			}
		default:
			s.Append(unknownDirective)
		}
	}

	return s
}
