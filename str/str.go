package str

import (
	"bytes"

	"github.com/acerv/libvest/vec"
)

// String is a growable byte string. The underlying buffer always
// carries a zero byte at offset Length(), excluded from the length.
//
// The zero value is not usable; create strings with New, FromBytes,
// WithLength or Empty.
type String struct {
	v *vec.Vector[byte]
}

// New creates a string holding a copy of text.
func New(text string) *String {
	s := WithLength(len(text))
	s.v.Copy(0, []byte(text))

	return s
}

// FromBytes creates a string holding a copy of data.
func FromBytes(data []byte) *String {
	s := WithLength(len(data))
	s.v.Copy(0, data)

	return s
}

// WithLength creates a string of n zero bytes.
func WithLength(n int) *String {
	return &String{v: vec.NewWithLength[byte](n)}
}

// Empty creates a string of length zero.
func Empty() *String {
	return WithLength(0)
}

// Length returns the byte length, excluding the terminator.
func (s *String) Length() int {
	return s.v.Count()
}

// Bytes returns the length-bounded view of the buffer. The slice
// aliases the string's storage and is invalidated by mutation.
func (s *String) Bytes() []byte {
	return s.v.Items()
}

// Terminated returns the buffer view including the trailing zero
// byte, Length()+1 bytes long.
func (s *String) Terminated() []byte {
	return s.v.Raw()[:s.Length()+1]
}

// String implements fmt.Stringer.
func (s *String) String() string {
	return string(s.Bytes())
}

// Clone returns an independent copy.
func (s *String) Clone() *String {
	return FromBytes(s.Bytes())
}

// resize sets the string length to n, re-establishing the terminator.
// The buffer first grows to n+1 so the zero byte lands inside the
// counted window, then shrinks back to n. The doubling growth already
// reserved the slack, so the second step never reallocates.
func (s *String) resize(n int) {
	s.v.Resize(n + 1)
	s.v.Set(n, 0)
	s.v.Resize(n)
}

// extend grows the string by n bytes.
func (s *String) extend(n int) {
	s.resize(s.Length() + n)
}

// Insert writes text at pos, shifting the suffix from pos rightwards.
// Returns ErrOutOfRange when pos is negative or beyond the length.
func (s *String) Insert(pos int, text string) error {
	if pos < 0 || pos > s.Length() {
		return ErrOutOfRange
	}

	n := len(text)
	if n == 0 {
		return nil
	}

	oldLen := s.Length()
	s.extend(n)

	s.v.Copy(pos+n, s.v.Items()[pos:oldLen])
	s.v.Copy(pos, []byte(text))

	return nil
}

// Append adds text at the end and returns the receiver for chaining.
func (s *String) Append(text string) *String {
	// Insert at the current length cannot be out of range.
	_ = s.Insert(s.Length(), text)

	return s
}

// appendByte adds a single byte at the end.
func (s *String) appendByte(b byte) {
	n := s.Length()
	s.extend(1)
	s.v.Set(n, b)
}

// Clear truncates the string to length zero, keeping its capacity.
func (s *String) Clear() *String {
	s.resize(0)

	return s
}

// StartsWith reports whether the string begins with sub, byte for
// byte. Always false when sub is longer than the string.
func (s *String) StartsWith(sub string) bool {
	return bytes.HasPrefix(s.Bytes(), []byte(sub))
}

// EndsWith reports whether the string ends with sub, byte for byte.
func (s *String) EndsWith(sub string) bool {
	return bytes.HasSuffix(s.Bytes(), []byte(sub))
}

// Split cuts the string into its maximal runs of bytes not contained
// in separators, in order. Consecutive separator bytes yield no empty
// tokens. The receiver is left untouched; the tokens are independent
// strings.
func (s *String) Split(separators string) []*String {
	var isSep [256]bool
	for i := 0; i < len(separators); i++ {
		isSep[separators[i]] = true
	}

	tokens := []*String{}
	data := s.Bytes()
	start := -1

	for i := 0; i <= len(data); i++ {
		if i < len(data) && !isSep[data[i]] {
			if start < 0 {
				start = i
			}

			continue
		}

		if start >= 0 {
			tokens = append(tokens, FromBytes(data[start:i]))
			start = -1
		}
	}

	return tokens
}

// Repeat extends the string to count copies of itself: slot 0 keeps
// the original bytes, slots 1..count-1 receive copies. A count of
// zero (or less) is a no-op, not a truncation. Returns the receiver
// for chaining.
func (s *String) Repeat(count int) *String {
	if count <= 0 {
		return s
	}

	n := s.Length()
	s.resize(n * count)

	for i := 1; i < count; i++ {
		s.v.Copy(i*n, s.v.Items()[:n])
	}

	return s
}

// Range extracts the bytes in [start, end) as a new string. Both
// bounds are clamped to [0, Length()] and swapped when start exceeds
// end, so the extraction is order-independent. Equal bounds yield an
// empty string.
func (s *String) Range(start, end int) *String {
	n := s.Length()

	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if start > end {
		start, end = end, start
	}

	out := WithLength(end - start)
	out.v.Copy(0, s.v.Items()[start:end])

	return out
}
