package util

// Coerce dereferences an optional config value, using the zero value when it is unset.
func Coerce[T any](v *T) T {
	var zero T
	return CoerceOr(v, zero)
}

// CoerceOr dereferences an optional config value, using fallback when it is unset.
func CoerceOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}

	return *v
}
