package util

// Map returns a new slice holding transform applied to each element, in order. A nil input yields an empty,
// non-nil slice so results serialize as [] rather than null.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}
