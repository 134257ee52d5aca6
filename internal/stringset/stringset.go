// Package stringset provides the username set type shared by extraction,
// aggregation, and diffing.
package stringset

import "sort"

// Set is an unordered collection of unique strings.
// Membership is case-sensitive exact match.
type Set map[string]struct{}

// New creates a Set containing the given elements.
func New(elements ...string) Set {
	s := make(Set, len(elements))
	for _, element := range elements {
		s[element] = struct{}{}
	}
	return s
}

// Add inserts an element into the set.
func (s Set) Add(element string) {
	s[element] = struct{}{}
}

// Contains reports whether the element is in the set.
func (s Set) Contains(element string) bool {
	_, ok := s[element]
	return ok
}

// Len returns the number of elements in the set.
func (s Set) Len() int {
	return len(s)
}

// Union adds all elements of other into s.
func (s Set) Union(other Set) {
	for element := range other {
		s[element] = struct{}{}
	}
}

// Subtract returns a new set with the elements of s that are not in other.
func (s Set) Subtract(other Set) Set {
	result := make(Set)
	for element := range s {
		if _, ok := other[element]; !ok {
			result[element] = struct{}{}
		}
	}
	return result
}

// Sorted returns the elements in ascending lexicographic order.
func (s Set) Sorted() []string {
	elements := make([]string, 0, len(s))
	for element := range s {
		elements = append(elements, element)
	}
	sort.Strings(elements)
	return elements
}
