// Package stats derives summary counts from the current catalog. Collections
// stay small (hundreds of entries), so every call recomputes from scratch
// rather than maintaining incremental counters.
package stats

import "github.com/smymedia/mediavault/internal/domain"

// Collect builds the full summary for items. Every enumerated type and
// status appears in the maps even when its count is zero; categories are
// collected dynamically from the items themselves.
func Collect(items []domain.MediaItem) domain.Stats {
	s := domain.Stats{
		Total:      len(items),
		ByType:     make(map[domain.MediaType]int, len(domain.MediaTypes)),
		ByStatus:   make(map[domain.MediaStatus]int, len(domain.MediaStatuses)),
		ByCategory: make(map[string]int),
	}

	for _, t := range domain.MediaTypes {
		s.ByType[t] = 0
	}
	for _, st := range domain.MediaStatuses {
		s.ByStatus[st] = 0
	}

	for _, item := range items {
		s.ByType[item.Type]++
		s.ByStatus[item.Status]++
		if item.Category != "" {
			s.ByCategory[item.Category]++
		}
		if item.IsFavorite {
			s.Favorites++
		}
		switch item.Status {
		case domain.StatusCompleted:
			s.Completed++
		case domain.StatusToWatch:
			s.ToWatch++
		}
	}

	return s
}
