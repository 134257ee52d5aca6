// Package username validates Instagram-style account handles.
package username

import "regexp"

// Handles are 1-30 characters: letters, digits, underscores, periods.
// Anchored so partial matches never pass.
var handlePattern = regexp.MustCompile(`^[a-zA-Z0-9_.]{1,30}$`)

// Valid reports whether s is a syntactically valid handle.
// It is a pure predicate; callers use it as a filter and silently
// discard values that fail.
func Valid(s string) bool {
	return handlePattern.MatchString(s)
}
