// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package autocomplete

import "strings"

// SelectionSet is an insertion-ordered set of strings. Values are
// unique by exact string comparison; "Go" and "go" are distinct. The
// zero value is an empty set ready to use.
type SelectionSet struct {
	values []string
	seen   map[string]struct{}
}

// NewSelectionSet returns a set holding the given values in order,
// skipping duplicates.
func NewSelectionSet(values ...string) *SelectionSet {
	set := &SelectionSet{}
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add appends value if it is not already present. Returns true if the
// set changed.
func (set *SelectionSet) Add(value string) bool {
	if set.seen == nil {
		set.seen = make(map[string]struct{})
	}
	if _, exists := set.seen[value]; exists {
		return false
	}
	set.seen[value] = struct{}{}
	set.values = append(set.values, value)
	return true
}

// Remove deletes value. Returns true if the set changed; removing an
// absent value is a no-op.
func (set *SelectionSet) Remove(value string) bool {
	if _, exists := set.seen[value]; !exists {
		return false
	}
	delete(set.seen, value)
	for index, existing := range set.values {
		if existing == value {
			set.values = append(set.values[:index], set.values[index+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether value is in the set.
func (set *SelectionSet) Contains(value string) bool {
	_, exists := set.seen[value]
	return exists
}

// Len returns the number of values in the set.
func (set *SelectionSet) Len() int {
	return len(set.values)
}

// Values returns a copy of the set's values in insertion order.
func (set *SelectionSet) Values() []string {
	result := make([]string, len(set.values))
	copy(result, set.values)
	return result
}

// Clear empties the set.
func (set *SelectionSet) Clear() {
	set.values = nil
	set.seen = nil
}

// Join concatenates the values in insertion order with separator.
// This is the wire form of a multi-select field.
func (set *SelectionSet) Join(separator string) string {
	return strings.Join(set.values, separator)
}
