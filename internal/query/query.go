// Package query derives filtered, sorted, grouped, and paginated views of a
// catalog. Everything here is a pure function of its inputs: no mutation of
// the source slice, no persistence.
package query

import (
	"sort"
	"strings"

	"github.com/smymedia/mediavault/internal/domain"
)

// SortField selects the field a view is ordered by.
type SortField string

const (
	SortByTitle      SortField = "title"
	SortByAddedAt    SortField = "addedAt"
	SortByLastViewed SortField = "lastViewed"
	SortByRating     SortField = "rating"
	SortByYear       SortField = "year"
)

// SortSpec pairs a sort field with a direction.
type SortSpec struct {
	Field      SortField
	Descending bool
}

// Filters are exact-match constraints, each independently optional and
// composed with logical AND. Zero values mean "no constraint"; IsFavorite is
// a pointer because false is a meaningful filter value.
type Filters struct {
	Type       domain.MediaType
	Status     domain.MediaStatus
	Category   string
	Platform   string
	Year       int
	IsFavorite *bool
	MinRating  int      // Entries rated at least this many stars
	Tags       []string // Entry must carry every listed tag
}

// Apply returns the entries matching term and filters, ordered by spec.
// The text search is a case-insensitive substring match against title,
// description, and each tag; an empty term matches everything.
func Apply(items []domain.MediaItem, term string, f Filters, spec SortSpec) []domain.MediaItem {
	out := make([]domain.MediaItem, 0, len(items))
	term = strings.ToLower(strings.TrimSpace(term))

	for _, item := range items {
		if term != "" && !matchesTerm(item, term) {
			continue
		}
		if !matchesFilters(item, f) {
			continue
		}
		out = append(out, item)
	}

	Sort(out, spec)
	return out
}

func matchesTerm(item domain.MediaItem, term string) bool {
	if strings.Contains(strings.ToLower(item.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), term) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func matchesFilters(item domain.MediaItem, f Filters) bool {
	if f.Type != "" && item.Type != f.Type {
		return false
	}
	if f.Status != "" && item.Status != f.Status {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Platform != "" && item.Platform != f.Platform {
		return false
	}
	if f.Year != 0 && item.Year != f.Year {
		return false
	}
	if f.IsFavorite != nil && item.IsFavorite != *f.IsFavorite {
		return false
	}
	if f.MinRating > 0 && (item.Rating == nil || *item.Rating < f.MinRating) {
		return false
	}
	for _, tag := range f.Tags {
		if !item.HasTag(tag) {
			return false
		}
	}
	return true
}

// Sort orders items in place, stably. Entries missing the sort field compare
// as the lowest value, so they lead in ascending order and trail descending.
func Sort(items []domain.MediaItem, spec SortSpec) {
	less := lessFunc(spec.Field)
	if less == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if spec.Descending {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func lessFunc(field SortField) func(a, b domain.MediaItem) bool {
	switch field {
	case SortByTitle:
		return func(a, b domain.MediaItem) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByAddedAt:
		return func(a, b domain.MediaItem) bool {
			return a.AddedTime().Before(b.AddedTime())
		}
	case SortByLastViewed:
		return func(a, b domain.MediaItem) bool {
			return a.LastViewedTime().Before(b.LastViewedTime())
		}
	case SortByRating:
		return func(a, b domain.MediaItem) bool {
			return ratingOf(a) < ratingOf(b)
		}
	case SortByYear:
		return func(a, b domain.MediaItem) bool {
			return a.Year < b.Year
		}
	default:
		return nil
	}
}

func ratingOf(item domain.MediaItem) int {
	if item.Rating == nil {
		return 0
	}
	return *item.Rating
}
