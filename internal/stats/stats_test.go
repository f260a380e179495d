package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smymedia/mediavault/internal/domain"
)

func TestCollect(t *testing.T) {
	rate := func(n int) *int { return &n }

	t.Run("empty catalog still enumerates every type and status", func(t *testing.T) {
		s := Collect(nil)

		assert.Zero(t, s.Total)
		assert.Len(t, s.ByType, len(domain.MediaTypes))
		assert.Len(t, s.ByStatus, len(domain.MediaStatuses))
		for _, mt := range domain.MediaTypes {
			count, ok := s.ByType[mt]
			assert.True(t, ok, "type %s missing", mt)
			assert.Zero(t, count)
		}
		for _, st := range domain.MediaStatuses {
			count, ok := s.ByStatus[st]
			assert.True(t, ok, "status %s missing", st)
			assert.Zero(t, count)
		}
		assert.Empty(t, s.ByCategory)
	})

	t.Run("counts across all dimensions", func(t *testing.T) {
		items := []domain.MediaItem{
			{Type: domain.TypeMovie, Status: domain.StatusCompleted, Category: "Sci-Fi", IsFavorite: true, Rating: rate(5)},
			{Type: domain.TypeMovie, Status: domain.StatusToWatch, Category: "Sci-Fi"},
			{Type: domain.TypeSeries, Status: domain.StatusWatching, Category: "Drama", IsFavorite: true},
			{Type: domain.TypeBook, Status: domain.StatusCompleted},
			{Type: domain.TypeGame, Status: domain.StatusOnHold, Category: "RPG"},
		}

		s := Collect(items)

		assert.Equal(t, 5, s.Total)
		assert.Equal(t, 2, s.ByType[domain.TypeMovie])
		assert.Equal(t, 1, s.ByType[domain.TypeSeries])
		assert.Zero(t, s.ByType[domain.TypePodcast])
		assert.Equal(t, 2, s.ByStatus[domain.StatusCompleted])
		assert.Equal(t, map[string]int{"Sci-Fi": 2, "Drama": 1, "RPG": 1}, s.ByCategory)
		assert.Equal(t, 2, s.Favorites)
		assert.Equal(t, 2, s.Completed)
		assert.Equal(t, 1, s.ToWatch)
	})

	t.Run("uncategorized entries do not create a bucket", func(t *testing.T) {
		s := Collect([]domain.MediaItem{{Type: domain.TypeMovie, Status: domain.StatusToWatch}})
		assert.Empty(t, s.ByCategory)
	})
}
