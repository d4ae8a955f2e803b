package util

// Filter returns the elements of s for which keep returns true, in their original order. The result is nil when
// nothing is kept.
func Filter[T any](s []T, keep func(T) bool) []T {
	var kept []T
	for _, v := range s {
		if keep(v) {
			kept = append(kept, v)
		}
	}

	return kept
}
