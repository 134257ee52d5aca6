// Package diff computes the asymmetric differences between the followers and
// following username sets.
package diff

import "github.com/harrison/followcheck/internal/stringset"

// Result holds the two asymmetric differences, each sorted ascending.
type Result struct {
	// NotFollowingBack are accounts you follow that do not follow you.
	NotFollowingBack []string
	// YouDontFollowBack are accounts that follow you but you do not follow.
	YouDontFollowBack []string
}

// Compute returns the two set differences as sorted lists. Pure and
// deterministic; neither input set is modified.
func Compute(followers, following stringset.Set) Result {
	return Result{
		NotFollowingBack:  following.Subtract(followers).Sorted(),
		YouDontFollowBack: followers.Subtract(following).Sorted(),
	}
}
