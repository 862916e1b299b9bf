package material

import (
	"github.com/agnivade/levenshtein"
)

// closestID returns the candidate nearest to target by edit distance, or "" when
// nothing is close enough. Ties go to the lexically smaller candidate.
func closestID(target string, candidates []string) string {
	if len(target) < 3 {
		return ""
	}

	best := ""
	bestDist := -1
	for _, cand := range candidates {
		if cand == target {
			continue
		}
		dist := levenshtein.ComputeDistance(target, cand)
		if dist > suggestionLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && cand < best) {
			best = cand
			bestDist = dist
		}
	}
	return best
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
