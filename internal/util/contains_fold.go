package util

import "strings"

// ContainsFold reports whether needle is a case-insensitive substring of haystack. An empty needle always matches.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// AnyContainsFold reports whether any of the values contains needle, ignoring case. Empty values never match a
// non-empty needle.
func AnyContainsFold(needle string, values ...string) bool {
	for _, v := range values {
		if v == "" {
			continue
		}

		if ContainsFold(v, needle) {
			return true
		}
	}

	return false
}
