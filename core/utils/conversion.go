package utils

// First returns the first non-zero value from the ordered candidate list.
// It is the helper behind every canonicalization fallback chain: each
// target field is computed as the first non-empty source value, and the
// type's zero value doubles as the documented default when all candidates
// are absent.
func First[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}

// Truncate shortens s to at most max characters. Truncation counts runes,
// not bytes, so multibyte bios are never cut mid-character.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
