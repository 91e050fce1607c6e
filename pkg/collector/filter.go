package collector

import "strings"

// FilterKinds returns kinds without the ones matching any of the patterns.
// Order is preserved. Supports wildcard patterns:
//   - "prefix*" matches kinds starting with "prefix"
//   - "*suffix" matches kinds ending with "suffix"
//   - "*contains*" matches kinds containing "contains"
//   - "exact" matches kinds exactly
func FilterKinds(kinds []string, patterns []string) []string {
	if len(patterns) == 0 {
		return kinds
	}

	result := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		omit := false
		for _, pattern := range patterns {
			if matchesPattern(kind, pattern) {
				omit = true
				break
			}
		}
		if !omit {
			result = append(result, kind)
		}
	}
	return result
}

func matchesPattern(kind, pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}

	if !strings.Contains(pattern, "*") {
		return kind == pattern
	}

	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		return strings.Contains(kind, strings.Trim(pattern, "*"))
	}

	if strings.HasPrefix(pattern, "*") {
		return strings.HasSuffix(kind, strings.TrimPrefix(pattern, "*"))
	}

	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(kind, strings.TrimSuffix(pattern, "*"))
	}

	return false
}
