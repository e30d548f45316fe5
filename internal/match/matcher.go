package match

import (
	"strings"

	"github.com/whdzera/atem/internal/metrics"
)

// fuzzyThreshold is the maximum edit distance allowed for an
// approximate match, relative to the longer of the two strings.
const fuzzyThreshold = 0.4

// Resolve maps a free-text query to the best-known card name.
//
// Substring containment over the normalized corpus wins outright and
// returns the first match in index order. Only when no name contains
// the query does the approximate search run, keeping the best bounded
// edit-distance candidate. A total miss returns the query unchanged so
// the remote API gets the final say; callers detect the miss by
// comparing output to input. Resolve never fails.
func (idx *Index) Resolve(query string) string {
	q := Normalize(query)
	if q == "" {
		metrics.MatcherResolutionsTotal.WithLabelValues("miss").Inc()
		return query
	}

	for i, name := range idx.normalized {
		if strings.Contains(name, q) {
			metrics.MatcherResolutionsTotal.WithLabelValues("substring").Inc()
			return idx.canonical[i]
		}
	}

	best := -1
	bestDist := -1
	for i, name := range idx.normalized {
		limit := int(fuzzyThreshold * float64(max(len(q), len(name))))
		if limit == 0 {
			continue
		}
		// Length difference alone already exceeds the budget.
		if diff := len(q) - len(name); diff > limit || -diff > limit {
			continue
		}
		d := editDistance(q, name)
		if d <= limit && (best == -1 || d < bestDist) {
			best = i
			bestDist = d
		}
	}

	if best >= 0 {
		metrics.MatcherResolutionsTotal.WithLabelValues("fuzzy").Inc()
		return idx.canonical[best]
	}

	metrics.MatcherResolutionsTotal.WithLabelValues("miss").Inc()
	return query
}

// editDistance is the Damerau-Levenshtein distance between two
// strings: insertions, deletions, substitutions and adjacent
// transpositions each count as one edit.
func editDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
			if i > 1 && j > 1 && s1[i-1] == s2[j-2] && s1[i-2] == s2[j-1] {
				matrix[i][j] = min(matrix[i][j], matrix[i-2][j-2]+1) // transposition
			}
		}
	}

	return matrix[len(s1)][len(s2)]
}
