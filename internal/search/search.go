// Package search provides fuzzy title matching for the quick-filter overlay.
// This is a looser, typo-tolerant complement to the exact substring search
// the query engine performs.
package search

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/smymedia/mediavault/internal/domain"
)

// Rank orders the indexes of titles by match quality against query, best
// first. Every index is kept: external results stay visible even when the
// match is weak, just pushed down the list.
func Rank(query string, titles []string) []int {
	query = strings.ToLower(strings.TrimSpace(query))

	type ranked struct {
		idx   int
		score int // Lower is better
	}
	out := make([]ranked, len(titles))
	for i, title := range titles {
		out[i] = ranked{idx: i, score: matchScore(strings.ToLower(title), query)}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].score < out[j].score
	})

	indexes := make([]int, len(out))
	for i, r := range out {
		indexes[i] = r.idx
	}
	return indexes
}

// matchScore rates how well title matches query, lower = better.
func matchScore(title, query string) int {
	if query == "" || title == query {
		return 0
	}
	if strings.HasPrefix(title, query) {
		return 10
	}
	if strings.Contains(title, query) {
		return 50
	}
	return 100 + lfuzzy.LevenshteinDistance(query, title)
}

// Match pairs an item with its match metadata for highlighting.
type Match struct {
	Item           domain.MediaItem
	MatchedIndexes []int // Rune positions in the title that matched
	Score          int   // Higher is better
}

// Index holds pre-lowered titles for repeated fuzzy queries against a fixed
// collection. It implements fuzzy.Source.
type Index struct {
	items       []domain.MediaItem
	lowerTitles []string
}

// NewIndex builds a quick-filter index over items.
func NewIndex(items []domain.MediaItem) *Index {
	idx := &Index{
		items:       items,
		lowerTitles: make([]string, len(items)),
	}
	for i, item := range items {
		idx.lowerTitles[i] = strings.ToLower(item.Title)
	}
	return idx
}

// String returns the lowercase title at i (implements fuzzy.Source).
func (idx *Index) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of indexed items (implements fuzzy.Source).
func (idx *Index) Len() int { return len(idx.items) }

// Filter returns items fuzzily matching query, best match first. An empty
// query returns every item in index order with no highlights.
func (idx *Index) Filter(query string) []Match {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		out := make([]Match, len(idx.items))
		for i, item := range idx.items {
			out[i] = Match{Item: item}
		}
		return out
	}

	results := fuzzy.FindFrom(query, idx)
	out := make([]Match, 0, len(results))
	for _, r := range results {
		out = append(out, Match{
			Item:           idx.items[r.Index],
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		})
	}
	return out
}

