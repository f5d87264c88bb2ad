package validate

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// closestTerm returns the candidate closest to value by case-insensitive
// edit distance, if one is within distance 2. Used to offer a suggestion
// when an enum-valued flag almost matches a legal value.
func closestTerm(value string, candidates []string) (string, bool) {
	const maxDistance = 2

	best, bestDistance := "", maxDistance+1
	for _, candidate := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(value), strings.ToLower(candidate))
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best, best != ""
}
