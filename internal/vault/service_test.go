package vault

import (
	"errors"
	"fmt"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smymedia/mediavault/internal/domain"
	"github.com/smymedia/mediavault/internal/store"
)

// emptyVault returns a service whose backing store holds an explicitly empty
// collection, so LoadAll does not seed.
func emptyVault(t *testing.T) (*Service, *store.VaultStore) {
	t.Helper()
	st, err := store.Open("")
	require.NoError(t, err)
	require.NoError(t, st.Save(store.KeyEntries, []domain.MediaItem{}))

	svc := NewService(st, nil)
	require.Empty(t, svc.LoadAll())
	return svc, st
}

func duneDraft() domain.Draft {
	return domain.Draft{
		Title:  "Dune",
		URL:    "https://x",
		Type:   domain.TypeMovie,
		Status: domain.StatusToWatch,
		Tags:   []string{"sci-fi"},
	}
}

func TestLoadAll(t *testing.T) {
	t.Run("first run seeds sample data", func(t *testing.T) {
		st, err := store.Open("")
		require.NoError(t, err)

		svc := NewService(st, nil)
		items := svc.LoadAll()
		require.Len(t, items, 8)

		// The seed must have been persisted immediately
		var persisted []domain.MediaItem
		require.True(t, st.Load(store.KeyEntries, &persisted))
		assert.Equal(t, items, persisted)
	})

	t.Run("unparsable blob starts empty, not seeded", func(t *testing.T) {
		st, err := store.Open("")
		require.NoError(t, err)
		require.NoError(t, st.Save(store.KeyEntries, "not a collection"))

		svc := NewService(st, nil)
		assert.Empty(t, svc.LoadAll())
	})

	t.Run("existing collection is returned as stored", func(t *testing.T) {
		st, err := store.Open("")
		require.NoError(t, err)
		require.NoError(t, st.Save(store.KeyEntries, SeedItems()[:3]))

		svc := NewService(st, nil)
		assert.Len(t, svc.LoadAll(), 3)
	})
}

func TestAdd(t *testing.T) {
	t.Run("add to empty collection", func(t *testing.T) {
		svc, st := emptyVault(t)

		before := time.Now().UTC().Add(-time.Second)
		item, err := svc.Add(duneDraft())
		require.NoError(t, err)

		assert.NotEmpty(t, item.ID)
		assert.Equal(t, "Dune", item.Title)
		assert.Equal(t, "https://x", item.URL)
		assert.Equal(t, domain.TypeMovie, item.Type)
		assert.Equal(t, domain.StatusToWatch, item.Status)
		assert.Equal(t, []string{"sci-fi"}, item.Tags)
		assert.False(t, item.IsFavorite)

		added := item.AddedTime()
		assert.False(t, added.Before(before))
		assert.False(t, added.After(time.Now().UTC().Add(time.Second)))

		// Re-loading the store yields the same entry
		reloaded := NewService(st, nil).LoadAll()
		require.Len(t, reloaded, 1)
		assert.Equal(t, item, reloaded[0])
	})

	t.Run("ids are pairwise distinct", func(t *testing.T) {
		svc, _ := emptyVault(t)

		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			d := duneDraft()
			d.Title = fmt.Sprintf("Entry %d", i)
			item, err := svc.Add(d)
			require.NoError(t, err)
			assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
			seen[item.ID] = true
		}
	})

	t.Run("new entries are prepended", func(t *testing.T) {
		svc, _ := emptyVault(t)

		first, err := svc.Add(duneDraft())
		require.NoError(t, err)
		d := duneDraft()
		d.Title = "Arrival"
		second, err := svc.Add(d)
		require.NoError(t, err)

		items := svc.Items()
		require.Len(t, items, 2)
		assert.Equal(t, second.ID, items[0].ID)
		assert.Equal(t, first.ID, items[1].ID)
	})

	t.Run("duplicate tags collapse", func(t *testing.T) {
		svc, _ := emptyVault(t)

		d := duneDraft()
		d.Tags = []string{"sci-fi", "sci-fi", "desert"}
		item, err := svc.Add(d)
		require.NoError(t, err)
		assert.Equal(t, []string{"sci-fi", "desert"}, item.Tags)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := emptyVault(t)
		var verr *domain.ValidationError

		d := duneDraft()
		d.Title = ""
		_, err := svc.Add(d)
		require.ErrorAs(t, err, &verr)

		d = duneDraft()
		d.URL = ""
		_, err = svc.Add(d)
		require.ErrorAs(t, err, &verr)

		d = duneDraft()
		d.Type = "hologram"
		_, err = svc.Add(d)
		require.ErrorAs(t, err, &verr)

		d = duneDraft()
		r := 6
		d.Rating = &r
		_, err = svc.Add(d)
		require.ErrorAs(t, err, &verr)

		assert.Zero(t, svc.Len(), "rejected drafts must not mutate state")
	})
}

func TestUpdate(t *testing.T) {
	t.Run("shallow merge keeps omitted fields", func(t *testing.T) {
		svc, _ := emptyVault(t)
		d := duneDraft()
		d.Notes = "original notes"
		item, err := svc.Add(d)
		require.NoError(t, err)

		title := "Dune: Part One"
		updated, err := svc.Update(item.ID, domain.ItemPatch{Title: &title})
		require.NoError(t, err)

		assert.Equal(t, "Dune: Part One", updated.Title)
		assert.Equal(t, "original notes", updated.Notes)
		assert.Equal(t, item.URL, updated.URL)
	})

	t.Run("creation metadata is immutable", func(t *testing.T) {
		svc, _ := emptyVault(t)
		item, err := svc.Add(duneDraft())
		require.NoError(t, err)

		status := domain.StatusCompleted
		updated, err := svc.Update(item.ID, domain.ItemPatch{Status: &status})
		require.NoError(t, err)

		assert.Equal(t, item.ID, updated.ID)
		assert.Equal(t, item.AddedAt, updated.AddedAt)
	})

	t.Run("rating validated on every mutation path", func(t *testing.T) {
		svc, _ := emptyVault(t)
		item, err := svc.Add(duneDraft())
		require.NoError(t, err)

		bad := 0
		_, err = svc.Update(item.ID, domain.ItemPatch{Rating: &bad})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)

		good := 5
		updated, err := svc.Update(item.ID, domain.ItemPatch{Rating: &good})
		require.NoError(t, err)
		require.NotNil(t, updated.Rating)
		assert.Equal(t, 5, *updated.Rating)

		cleared, err := svc.Update(item.ID, domain.ItemPatch{ClearRating: true})
		require.NoError(t, err)
		assert.Nil(t, cleared.Rating)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := emptyVault(t)
		title := "anything"
		_, err := svc.Update("nope", domain.ItemPatch{Title: &title})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestRemove(t *testing.T) {
	svc, _ := emptyVault(t)
	item, err := svc.Add(duneDraft())
	require.NoError(t, err)

	require.NoError(t, svc.Remove(item.ID))
	assert.Zero(t, svc.Len())

	// Second removal is a no-op signalled as not-found
	err = svc.Remove(item.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Zero(t, svc.Len())
}

func TestTouchAndTags(t *testing.T) {
	svc, _ := emptyVault(t)
	item, err := svc.Add(duneDraft())
	require.NoError(t, err)
	assert.Empty(t, item.LastViewed)

	require.NoError(t, svc.Touch(item.ID))
	got := svc.Items()[0]
	assert.NotEmpty(t, got.LastViewed)
	assert.False(t, got.LastViewedTime().IsZero())

	require.NoError(t, svc.AddTag(item.ID, "classic"))
	require.NoError(t, svc.AddTag(item.ID, "classic")) // Already present, no-op
	assert.Equal(t, []string{"sci-fi", "classic"}, svc.Items()[0].Tags)

	err = svc.AddTag(item.ID, "")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestReplaceAll(t *testing.T) {
	t.Run("valid import replaces wholesale", func(t *testing.T) {
		svc, _ := emptyVault(t)
		_, err := svc.Add(duneDraft())
		require.NoError(t, err)

		require.NoError(t, svc.ReplaceAll(SeedItems()[:2]))
		assert.Equal(t, 2, svc.Len())
	})

	t.Run("record without id is rejected, state untouched", func(t *testing.T) {
		svc, _ := emptyVault(t)
		existing, err := svc.Add(duneDraft())
		require.NoError(t, err)

		bad := []domain.MediaItem{{Title: "no id"}}
		err = svc.ReplaceAll(bad)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)

		items := svc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, existing.ID, items[0].ID)
	})

	t.Run("non-array payload is rejected", func(t *testing.T) {
		svc, _ := emptyVault(t)
		existing, err := svc.Add(duneDraft())
		require.NoError(t, err)

		err = svc.ImportSnapshot([]byte(`{"not":"an array"}`))
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)

		items := svc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, existing.ID, items[0].ID)
	})

	t.Run("export round trips through import", func(t *testing.T) {
		svc, _ := emptyVault(t)
		require.NoError(t, svc.ReplaceAll(SeedItems()))

		data, err := svc.ExportSnapshot()
		require.NoError(t, err)

		var parsed []domain.MediaItem
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.Equal(t, svc.Items(), parsed)

		other, _ := emptyVault(t)
		require.NoError(t, other.ImportSnapshot(data))
		assert.Equal(t, svc.Items(), other.Items())
	})
}

// failingStore reads fine but refuses every write.
type failingStore struct {
	inner *store.VaultStore
}

func (f *failingStore) Load(key string, dest interface{}) bool { return f.inner.Load(key, dest) }
func (f *failingStore) Save(string, interface{}) error         { return errors.New("quota exceeded") }
func (f *failingStore) SizeOf(key string) int                  { return f.inner.SizeOf(key) }

func TestPersistenceFailureIsNonFatal(t *testing.T) {
	inner, err := store.Open("")
	require.NoError(t, err)
	require.NoError(t, inner.Save(store.KeyEntries, []domain.MediaItem{}))

	svc := NewService(&failingStore{inner: inner}, nil)
	svc.LoadAll()

	item, err := svc.Add(duneDraft())
	var perr *domain.PersistenceError
	require.ErrorAs(t, err, &perr)

	// The entry is still usable in memory for the rest of the session
	assert.NotEmpty(t, item.ID)
	require.Equal(t, 1, svc.Len())
	assert.Equal(t, item.ID, svc.Items()[0].ID)
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 13, 30, 0, 0, time.UTC)
	assert.Equal(t, "media-vault-2026-09-01.json", ExportFilename(now))
}
