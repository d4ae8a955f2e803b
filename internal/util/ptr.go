package util

// ToPtr returns a pointer to a copy of the value.
func ToPtr[T any](v T) *T {
	return &v
}
