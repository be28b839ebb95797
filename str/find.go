package str

// computeLPS builds the Knuth-Morris-Pratt failure table for pattern:
// lps[i] is the length of the longest proper prefix of pattern[:i+1]
// that is also a suffix of it.
func computeLPS(pattern string) []int {
	lps := make([]int, len(pattern))
	length := 0

	for i := 1; i < len(pattern); i++ {
		for length > 0 && pattern[i] != pattern[length] {
			length = lps[length-1]
		}

		if pattern[i] == pattern[length] {
			length++
		}

		lps[i] = length
	}

	return lps
}

// Find returns every starting offset of pattern in the string, in
// ascending order, including overlapping occurrences. After a full
// match the scan resumes from the pattern's own failure position
// rather than from zero, which is what makes overlaps visible.
// An empty pattern yields an empty, non-nil slice.
//
// The scan is O(len(s) + len(pattern)).
func (s *String) Find(pattern string) []int {
	offsets := []int{}

	m := len(pattern)
	if m == 0 {
		return offsets
	}

	lps := computeLPS(pattern)
	data := s.Bytes()

	j := 0
	for i := 0; i < len(data); {
		if data[i] == pattern[j] {
			i++
			j++

			if j == m {
				offsets = append(offsets, i-m)
				j = lps[j-1]
			}

			continue
		}

		if j != 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}

	return offsets
}

// Contains reports whether pattern occurs at least once.
func (s *String) Contains(pattern string) bool {
	return len(s.Find(pattern)) > 0
}
