// Package discover locates the followers and following JSON files inside a
// data export directory tree.
//
// Export layouts are not stable across export versions, so discovery is
// heuristic: every .json file whose path mentions a role keyword is a
// candidate, and files under the canonical followers_and_following folder are
// scored higher. Scoring orders candidates but never excludes them; a
// basename-based filter then resolves the keyword overlap between the two
// roles ("following" is a substring neighbour of "followers" in most paths).
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Role keywords matched against normalized candidate paths.
const (
	KeywordFollowers = "followers"
	KeywordFollowing = "following"
)

// canonicalDir is the folder Instagram exports place both roles under.
const canonicalDir = "followers_and_following"

// Candidate scores.
const (
	baseScore      = 1
	canonicalBoost = 10
)

// Candidate is a JSON file that may hold one role's data, with a relevance
// score. Higher score means a more canonical location. The score orders
// candidates for diagnostics; it never excludes a file.
type Candidate struct {
	Path  string
	Score int
}

// Result holds the surviving candidate files per role, sorted by score
// descending. An empty list means discovery failed for that role.
type Result struct {
	Followers []Candidate
	Following []Candidate
}

// FollowersFound reports whether any followers candidate survived filtering.
func (r *Result) FollowersFound() bool {
	return len(r.Followers) > 0
}

// FollowingFound reports whether any following candidate survived filtering.
func (r *Result) FollowingFound() bool {
	return len(r.Following) > 0
}

// FindCandidates walks root for .json files (extension matched
// case-insensitively) whose normalized path contains keyword, scoring each
// candidate. Paths are normalized to lower-cased forward-slash form before
// matching. Unreadable entries are skipped so one bad subtree cannot abort
// the scan; the returned list is unordered.
func FindCandidates(root, keyword string) ([]Candidate, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	var candidates []Candidate
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries, continue walking
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		normalized := strings.ToLower(filepath.ToSlash(path))
		if !strings.Contains(normalized, keyword) {
			return nil
		}

		score := baseScore
		if strings.Contains(normalized, canonicalDir) {
			score += canonicalBoost
		}
		candidates = append(candidates, Candidate{Path: path, Score: score})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return candidates, nil
}

// Discover runs candidate search for both roles and applies the
// disambiguation policy:
//
//   - candidates are sorted by score descending (stable otherwise),
//   - the followers role drops files named exactly "following.json",
//   - the following role drops files whose name starts with "followers",
//
// both basename checks case-insensitive. The policy tolerates zero, one, or
// many files per role (exports paginate followers across followers_1.json,
// followers_2.json, ...).
func Discover(root string) (*Result, error) {
	followers, err := FindCandidates(root, KeywordFollowers)
	if err != nil {
		return nil, err
	}
	following, err := FindCandidates(root, KeywordFollowing)
	if err != nil {
		return nil, err
	}

	sortByScore(followers)
	sortByScore(following)

	result := &Result{}
	for _, c := range followers {
		if strings.EqualFold(filepath.Base(c.Path), "following.json") {
			continue
		}
		result.Followers = append(result.Followers, c)
	}
	for _, c := range following {
		name := strings.ToLower(filepath.Base(c.Path))
		if strings.HasPrefix(name, "followers") {
			continue
		}
		result.Following = append(result.Following, c)
	}

	return result, nil
}

// Paths returns just the file paths of the candidates, in order.
func Paths(candidates []Candidate) []string {
	paths := make([]string, 0, len(candidates))
	for _, c := range candidates {
		paths = append(paths, c.Path)
	}
	return paths
}

func sortByScore(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}
