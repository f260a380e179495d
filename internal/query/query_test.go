package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smymedia/mediavault/internal/domain"
)

func entry(title string, mods ...func(*domain.MediaItem)) domain.MediaItem {
	item := domain.MediaItem{
		ID:      title,
		Title:   title,
		Type:    domain.TypeMovie,
		Status:  domain.StatusToWatch,
		AddedAt: "2024-01-15T10:00:00Z",
	}
	for _, mod := range mods {
		mod(&item)
	}
	return item
}

func titles(items []domain.MediaItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func TestApplySearch(t *testing.T) {
	items := []domain.MediaItem{
		entry("The Matrix", func(m *domain.MediaItem) { m.Description = "simulated reality" }),
		entry("Inception"),
		entry("Dune", func(m *domain.MediaItem) { m.Tags = []string{"matrix-adjacent"} }),
		entry("Blade Runner", func(m *domain.MediaItem) { m.Description = "Replicants in LA" }),
	}
	for i := 0; i < 6; i++ {
		items = append(items, entry(fmt.Sprintf("Filler %d", i)))
	}

	t.Run("matches title case-insensitively", func(t *testing.T) {
		got := Apply(items, "matrix", Filters{}, SortSpec{})
		assert.ElementsMatch(t, []string{"The Matrix", "Dune"}, titles(got))
	})

	t.Run("matches description and tags", func(t *testing.T) {
		got := Apply(items, "replicants", Filters{}, SortSpec{})
		require.Len(t, got, 1)
		assert.Equal(t, "Blade Runner", got[0].Title)
	})

	t.Run("whitespace-only term matches everything", func(t *testing.T) {
		assert.Len(t, Apply(items, "   ", Filters{}, SortSpec{}), len(items))
	})

	t.Run("no hits yields empty, non-nil result", func(t *testing.T) {
		got := Apply(items, "zzzz", Filters{}, SortSpec{})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestApplyFilters(t *testing.T) {
	rated := func(n int) func(*domain.MediaItem) {
		return func(m *domain.MediaItem) { m.Rating = &n }
	}
	items := []domain.MediaItem{
		entry("A", func(m *domain.MediaItem) { m.Type = domain.TypeMovie; m.IsFavorite = true }, rated(5)),
		entry("B", func(m *domain.MediaItem) { m.Type = domain.TypeSeries; m.Status = domain.StatusWatching }),
		entry("C", func(m *domain.MediaItem) { m.Type = domain.TypeMovie; m.Category = "Sci-Fi" }, rated(3)),
		entry("D", func(m *domain.MediaItem) { m.Type = domain.TypeGame; m.Platform = "PC"; m.Year = 2020 }),
		entry("E", func(m *domain.MediaItem) { m.Tags = []string{"noir", "classic"} }),
	}

	t.Run("single filter", func(t *testing.T) {
		got := Apply(items, "", Filters{Type: domain.TypeMovie}, SortSpec{})
		assert.ElementsMatch(t, []string{"A", "C", "E"}, titles(got))
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		got := Apply(items, "", Filters{Type: domain.TypeMovie, Category: "Sci-Fi"}, SortSpec{})
		assert.Equal(t, []string{"C"}, titles(got))
	})

	t.Run("favorite false is a real constraint", func(t *testing.T) {
		no := false
		got := Apply(items, "", Filters{IsFavorite: &no}, SortSpec{})
		assert.ElementsMatch(t, []string{"B", "C", "D", "E"}, titles(got))
	})

	t.Run("min rating excludes unrated", func(t *testing.T) {
		got := Apply(items, "", Filters{MinRating: 3}, SortSpec{})
		assert.ElementsMatch(t, []string{"A", "C"}, titles(got))
	})

	t.Run("must carry every listed tag", func(t *testing.T) {
		got := Apply(items, "", Filters{Tags: []string{"noir", "classic"}}, SortSpec{})
		assert.Equal(t, []string{"E"}, titles(got))
		got = Apply(items, "", Filters{Tags: []string{"noir", "missing"}}, SortSpec{})
		assert.Empty(t, got)
	})

	t.Run("platform and year", func(t *testing.T) {
		got := Apply(items, "", Filters{Platform: "PC", Year: 2020}, SortSpec{})
		assert.Equal(t, []string{"D"}, titles(got))
	})

	t.Run("search and filters intersect", func(t *testing.T) {
		got := Apply(items, "a", Filters{Type: domain.TypeGame}, SortSpec{})
		assert.Empty(t, got)
	})
}

func TestSort(t *testing.T) {
	rated := func(n int) *int { return &n }

	t.Run("title is case-insensitive", func(t *testing.T) {
		items := []domain.MediaItem{entry("banana"), entry("Apple"), entry("cherry")}
		Sort(items, SortSpec{Field: SortByTitle})
		assert.Equal(t, []string{"Apple", "banana", "cherry"}, titles(items))
	})

	t.Run("descending reverses", func(t *testing.T) {
		items := []domain.MediaItem{entry("banana"), entry("Apple"), entry("cherry")}
		Sort(items, SortSpec{Field: SortByTitle, Descending: true})
		assert.Equal(t, []string{"cherry", "banana", "Apple"}, titles(items))
	})

	t.Run("missing rating sorts lowest", func(t *testing.T) {
		items := []domain.MediaItem{
			entry("Mid", func(m *domain.MediaItem) { m.Rating = rated(3) }),
			entry("Unrated"),
			entry("Top", func(m *domain.MediaItem) { m.Rating = rated(5) }),
		}
		Sort(items, SortSpec{Field: SortByRating})
		assert.Equal(t, []string{"Unrated", "Mid", "Top"}, titles(items))

		Sort(items, SortSpec{Field: SortByRating, Descending: true})
		assert.Equal(t, []string{"Top", "Mid", "Unrated"}, titles(items))
	})

	t.Run("malformed timestamp sorts as missing", func(t *testing.T) {
		items := []domain.MediaItem{
			entry("Old", func(m *domain.MediaItem) { m.AddedAt = "2023-06-01T00:00:00Z" }),
			entry("Broken", func(m *domain.MediaItem) { m.AddedAt = "yesterday-ish" }),
			entry("New", func(m *domain.MediaItem) { m.AddedAt = "2024-06-01T00:00:00Z" }),
		}
		Sort(items, SortSpec{Field: SortByAddedAt})
		assert.Equal(t, []string{"Broken", "Old", "New"}, titles(items))
	})

	t.Run("unknown field leaves order alone", func(t *testing.T) {
		items := []domain.MediaItem{entry("b"), entry("a")}
		Sort(items, SortSpec{Field: "unknown"})
		assert.Equal(t, []string{"b", "a"}, titles(items))
	})
}

func TestGroupByPeriod(t *testing.T) {
	at := func(ts string) func(*domain.MediaItem) {
		return func(m *domain.MediaItem) { m.AddedAt = ts }
	}
	items := []domain.MediaItem{
		entry("Jan A", at("2024-01-15T10:00:00Z")),
		entry("Jan B", at("2024-01-20T10:00:00Z")),
		entry("Dec", at("2023-12-10T10:00:00Z")),
		entry("Nov", at("2023-11-05T10:00:00Z")),
		entry("Oct", at("2023-10-12T10:00:00Z")),
	}

	keys := func(groups []Group) []string {
		out := make([]string, len(groups))
		for i, g := range groups {
			out[i] = g.Key
		}
		return out
	}

	t.Run("month buckets, newest first", func(t *testing.T) {
		groups := GroupByPeriod(items, GroupByMonth)
		assert.Equal(t, []string{"January 2024", "December 2023", "November 2023", "October 2023"}, keys(groups))
		assert.Equal(t, []string{"Jan A", "Jan B"}, titles(groups[0].Items))
	})

	t.Run("quarter buckets", func(t *testing.T) {
		groups := GroupByPeriod(items, GroupByQuarter)
		assert.Equal(t, []string{"Q1 2024", "Q4 2023"}, keys(groups))
		assert.Len(t, groups[1].Items, 3)
	})

	t.Run("year buckets", func(t *testing.T) {
		groups := GroupByPeriod(items, GroupByYear)
		assert.Equal(t, []string{"2024", "2023"}, keys(groups))
	})

	t.Run("every item lands in exactly one bucket", func(t *testing.T) {
		for _, period := range []GroupPeriod{GroupByMonth, GroupByQuarter, GroupByYear} {
			total := 0
			for _, g := range GroupByPeriod(items, period) {
				total += len(g.Items)
			}
			assert.Equal(t, len(items), total, "period %s", period)
		}
	})

	t.Run("empty input yields no buckets", func(t *testing.T) {
		assert.Empty(t, GroupByPeriod(nil, GroupByMonth))
	})
}

func TestPaginate(t *testing.T) {
	var items []domain.MediaItem
	for i := 0; i < 23; i++ {
		items = append(items, entry(fmt.Sprintf("Entry %02d", i)))
	}

	t.Run("full middle page", func(t *testing.T) {
		p := Paginate(items, 2, 10)
		assert.Equal(t, 2, p.Number)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, 23, p.TotalItems)
		require.Len(t, p.Items, 10)
		assert.Equal(t, "Entry 10", p.Items[0].Title)
	})

	t.Run("short last page", func(t *testing.T) {
		p := Paginate(items, 3, 10)
		require.Len(t, p.Items, 3)
		assert.Equal(t, "Entry 20", p.Items[0].Title)
	})

	t.Run("page beyond range is empty, not an error", func(t *testing.T) {
		p := Paginate(items, 9, 10)
		assert.NotNil(t, p.Items)
		assert.Empty(t, p.Items)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("size below one falls back to default", func(t *testing.T) {
		p := Paginate(items, 1, 0)
		assert.Len(t, p.Items, DefaultPageSize)
	})

	t.Run("empty input", func(t *testing.T) {
		p := Paginate(nil, 1, 10)
		assert.Empty(t, p.Items)
		assert.Zero(t, p.TotalPages)
		assert.Zero(t, p.TotalItems)
	})
}
