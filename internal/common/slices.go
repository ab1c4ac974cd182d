package common

// Only returns the element of a single-element slice and true, or the zero
// value and false.
func Only[S ~[]E, E any](s S) (E, bool) {
	if len(s) != 1 {
		var zero E
		return zero, false
	}

	return s[0], true
}
