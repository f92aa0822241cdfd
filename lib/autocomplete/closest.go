// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package autocomplete

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// closestMaxDistance bounds how different a free-form value may be
// from a candidate and still be offered as a hint. Three edits covers
// a dropped, doubled or transposed character or two.
const closestMaxDistance = 3

// Closest returns the candidate a free-form value most likely meant.
// Candidates that contain the value's characters in order (ignoring
// case and diacritics) win by edit distance; otherwise the candidate
// with the smallest edit distance within closestMaxDistance is used.
// Returns false when nothing is close, or when value is itself a
// candidate.
func Closest(value string, candidates []string) (string, bool) {
	if value == "" || len(candidates) == 0 {
		return "", false
	}
	for _, candidate := range candidates {
		if candidate == value {
			return "", false
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(value, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target, true
	}

	best := ""
	bestDistance := closestMaxDistance + 1
	for _, candidate := range candidates {
		distance := fuzzy.LevenshteinDistance(value, candidate)
		if distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}
	return best, best != ""
}
