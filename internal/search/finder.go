// Package search implements the fuzzy directory finder behind the edit
// prompt suggestions.
package search

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultDepth bounds how many directory levels below the search root are
// considered for suggestions.
const DefaultDepth = 3

// Finder walks a directory tree to a fixed depth and fuzzy-ranks the
// directories it finds against a query string.
type Finder struct {
	Root  string
	Depth int
}

// NewFinder creates a finder rooted at root. A depth <= 0 falls back to
// DefaultDepth.
func NewFinder(root string, depth int) *Finder {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Finder{Root: root, Depth: depth}
}

// Search collects directories under the query path (or the finder root when
// the query is empty) up to the depth bound and returns them ranked against
// the query. A root that cannot be walked yields an error; callers are
// expected to keep their previous suggestions in that case.
func (f *Finder) Search(query string) ([]string, error) {
	root := strings.TrimSpace(query)
	if root == "" {
		root = f.Root
	}
	dirs, err := f.collect(root)
	if err != nil {
		return nil, err
	}
	return rank(dirs, query), nil
}

func (f *Finder) collect(root string) ([]string, error) {
	dirs := []string{}
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable subtree: skip it, keep the rest.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if depthBelow(root, path) > f.Depth {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return dirs, nil
}

func depthBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// rank orders candidates by fuzzy distance to the query, best first. Ties
// keep their walk order. Candidates that do not match at all are dropped;
// when nothing matches, the unranked candidates are returned so the list
// never collapses merely because the query text is an unmatched prefix.
func rank(candidates []string, query string) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return candidates
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, candidates)
	if len(ranks) == 0 {
		return candidates
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	ordered := make([]string, 0, len(ranks))
	for _, r := range ranks {
		ordered = append(ordered, r.Target)
	}
	return ordered
}
