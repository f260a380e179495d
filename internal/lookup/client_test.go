package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/smymedia/mediavault/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", nil)
	c.baseURL = srv.URL
	return c
}

func TestSearchMovies(t *testing.T) {
	t.Run("parses a result page", func(t *testing.T) {
		var gotPath, gotQuery string
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query().Get("query")
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			w.Write([]byte(`{
				"results": [
					{"id": 603, "title": "The Matrix", "release_date": "1999-03-31", "vote_average": 8.2},
					{"id": 604, "title": "The Matrix Reloaded"}
				],
				"total_results": 2,
				"total_pages": 1
			}`))
		})

		resp, err := c.SearchMovies(context.Background(), "matrix", 1)
		require.NoError(t, err)

		assert.Equal(t, "/search/movie", gotPath)
		assert.Equal(t, "matrix", gotQuery)
		assert.Equal(t, 2, resp.TotalResults)
		require.Len(t, resp.Results, 2)
		assert.Equal(t, 603, resp.Results[0].ID)
		assert.Equal(t, "The Matrix", resp.Results[0].Title)
	})

	t.Run("page numbers below one are clamped", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "1", r.URL.Query().Get("page"))
			w.Write([]byte(`{"results": []}`))
		})
		_, err := c.SearchMovies(context.Background(), "x", 0)
		require.NoError(t, err)
	})

	t.Run("non-200 surfaces the status", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := c.SearchMovies(context.Background(), "matrix", 1)
		var rerr *domain.RequestError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, http.StatusUnauthorized, rerr.Status)
	})

	t.Run("malformed body is a request error", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})

		_, err := c.SearchMovies(context.Background(), "matrix", 1)
		var rerr *domain.RequestError
		assert.ErrorAs(t, err, &rerr)
	})
}

func TestTrending(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/week", r.URL.Path)
		w.Write([]byte(`{"results": [{"id": 1, "title": "Something"}]}`))
	})

	// Unknown windows fall back to the weekly feed
	resp, err := c.Trending(context.Background(), "fortnight", 1)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
}

func TestMovieDetails(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		w.Write([]byte(`{
			"id": 603,
			"title": "The Matrix",
			"runtime": 136,
			"tagline": "Welcome to the Real World",
			"genres": [{"id": 28, "name": "Action"}]
		}`))
	})

	details, err := c.MovieDetails(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, 136, details.Runtime)
	require.Len(t, details.Genres, 1)
	assert.Equal(t, "Action", details.Genres[0].Name)
}

func TestNotConfigured(t *testing.T) {
	c := NewClient("", nil)
	assert.False(t, c.IsConfigured())

	_, err := c.SearchMovies(context.Background(), "matrix", 1)
	assert.ErrorIs(t, err, domain.ErrLookupNotConfigured)
}

func TestRateLimit(t *testing.T) {
	calls := 0
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"results": []}`))
	})
	c.limiter = rate.NewLimiter(rate.Limit(0), 2)

	for i := 0; i < 2; i++ {
		_, err := c.SearchMovies(context.Background(), "x", 1)
		require.NoError(t, err)
	}

	_, err := c.SearchMovies(context.Background(), "x", 1)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Equal(t, 2, calls, "denied requests must not reach the network")
}

func TestPosterURL(t *testing.T) {
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", PosterURL("/abc.jpg", ""))
	assert.Equal(t, "https://image.tmdb.org/t/p/w185/abc.jpg", PosterURL("/abc.jpg", "w185"))
	assert.Empty(t, PosterURL("", "w500"))

	assert.Equal(t, "https://image.tmdb.org/t/p/w780/bg.jpg", BackdropURL("/bg.jpg", ""))
	assert.Empty(t, BackdropURL("", ""))
}
