package query

import "github.com/smymedia/mediavault/internal/domain"

// PageSizes are the selectable pagination windows.
var PageSizes = []int{5, 10, 20, 50}

// DefaultPageSize is used when no explicit size is configured.
const DefaultPageSize = 10

// Page is one pagination window over an already filtered and sorted view.
type Page struct {
	Items      []domain.MediaItem
	Number     int // 1-indexed
	TotalPages int
	TotalItems int
}

// Paginate slices items into the 1-indexed page of the given size. A page
// beyond range yields an empty slice, not an error. Sizes below 1 fall back
// to DefaultPageSize.
func Paginate(items []domain.MediaItem, page, size int) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := (len(items) + size - 1) / size

	p := Page{Number: page, TotalPages: total, TotalItems: len(items)}

	start := (page - 1) * size
	if start >= len(items) {
		p.Items = []domain.MediaItem{}
		return p
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}
	p.Items = items[start:end]
	return p
}
