// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package autocomplete

import (
	"strings"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Suggestion is one row of a rendered dropdown.
type Suggestion struct {
	// Value is the candidate string, exactly as it appears in the
	// candidate list.
	Value string

	// Positions holds the rune offsets within Value covered by the
	// query match, for highlighting. Empty when the query is empty.
	Positions []int
}

// Filter returns the candidates that contain query as a
// case-insensitive substring, in candidate order. An empty query
// matches every candidate. The result is always a new slice; the
// input is never modified.
func Filter(query string, candidates []string) []string {
	needle := strings.ToLower(query)
	result := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), needle) {
			result = append(result, candidate)
		}
	}
	return result
}

// Match filters candidates like [Filter] and annotates each result
// with the rune positions of the matched substring.
func Match(query string, candidates []string) []Suggestion {
	filtered := Filter(query, candidates)
	suggestions := make([]Suggestion, len(filtered))
	pattern := foldRunes(query)
	for index, value := range filtered {
		suggestions[index] = Suggestion{
			Value:     value,
			Positions: matchPositions(value, pattern),
		}
	}
	return suggestions
}

// foldRunes lowercases text one rune at a time, the way fzf folds the
// text side. strings.ToLower may expand a rune (İ becomes i̇), which
// fzf would never match.
func foldRunes(text string) []rune {
	runes := []rune(text)
	for index, r := range runes {
		runes[index] = unicode.ToLower(r)
	}
	return runes
}

// matchPositions locates pattern inside text using fzf's exact
// matcher. The pattern must already be folded by foldRunes; fzf folds
// only the text side when matching case-insensitively.
func matchPositions(text string, pattern []rune) []int {
	if len(pattern) == 0 {
		return nil
	}
	chars := util.ToChars([]byte(text))
	result, _ := algo.ExactMatchNaive(false, false, true, &chars, pattern, false, nil)
	if result.Start < 0 || result.End <= result.Start {
		return nil
	}
	positions := make([]int, 0, result.End-result.Start)
	for position := result.Start; position < result.End; position++ {
		positions = append(positions, position)
	}
	return positions
}
