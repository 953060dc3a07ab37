package features

import "strings"

// Bookkeeping traits that never become standalone features
var (
	skippedFeatures = map[string]struct{}{
		"Hit Points":        {},
		"Languages":         {},
		"Bonus Proficiency": {},
		"Speed":             {},
	}

	skippedPrefixes = []string{
		"Proficiencies",
		"Ability Score",
		"Size",
	}
)

// Included reports whether a trait with this name should produce feature records.
// Matching is case-sensitive.
func Included(name string) bool {
	for _, prefix := range skippedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return false
		}
	}
	_, skipped := skippedFeatures[name]
	return !skipped
}
