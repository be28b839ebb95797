package str

// Replace substitutes occurrences of oldStr with newStr, left to
// right, at most limit of them; a negative limit means all. Returns
// ErrPatternTooLong when oldStr is longer than the subject.
//
// Each substitution is a single shift step: the buffer grows or
// shrinks by the length difference, the remainder after the match
// moves accordingly and newStr is written in place. Offsets of
// not-yet-applied matches are adjusted by the running delta, since
// every shift invalidates positions computed before it.
func (s *String) Replace(oldStr, newStr string, limit int) error {
	lenOld := len(oldStr)
	if lenOld > s.Length() {
		return ErrPatternTooLong
	}

	offsets := s.Find(oldStr)
	if len(offsets) == 0 {
		return nil
	}

	lenNew := len(newStr)
	shift := lenNew - lenOld
	replacement := []byte(newStr)
	delta := 0

	for i, off := range offsets {
		if limit >= 0 && i >= limit {
			break
		}

		idx := off + delta
		n := s.Length()

		switch {
		case shift > 0:
			s.resize(n + shift)
			s.v.Copy(idx+lenNew, s.v.Items()[idx+lenOld:n])
		case shift < 0:
			// Move the tail left before the buffer shrinks.
			s.v.Copy(idx+lenNew, s.v.Items()[idx+lenOld:n])
			s.resize(n + shift)
		}

		s.v.Copy(idx, replacement)
		delta += shift
	}

	return nil
}

// Remove deletes every occurrence of sub.
func (s *String) Remove(sub string) error {
	return s.Replace(sub, "", -1)
}
