// Package lookup is a best-effort client for third-party movie metadata.
// Lookup failures never touch the catalog; they surface as informational
// errors the UI renders and moves on from.
package lookup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/smymedia/mediavault/internal/domain"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	defaultTimeout = 30 * time.Second
	userAgent      = "MediaVault/1.0"
)

// Result is one candidate record from a metadata search.
type Result struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// SearchResponse is a page of search or trending results.
type SearchResponse struct {
	Results      []Result `json:"results"`
	TotalResults int      `json:"total_results"`
	TotalPages   int      `json:"total_pages"`
}

// Details carries the extended record for a single movie.
type Details struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	Runtime      int     `json:"runtime"`
	VoteAverage  float64 `json:"vote_average"`
	Tagline      string  `json:"tagline"`
	Genres       []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

// Client calls the TMDB v3 API. A client with no API key returns
// domain.ErrLookupNotConfigured from every call without doing any I/O.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a lookup client. The limiter allows 40 requests per
// 10 seconds, matching TMDB's documented budget.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(10*time.Second/40), 40),
		logger:  logger,
	}
}

// IsConfigured reports whether an API key is present.
func (c *Client) IsConfigured() bool { return c.apiKey != "" }

// SearchMovies searches for movies matching query. Pages are 1-indexed.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", fmt.Sprintf("%d", max(page, 1)))

	var resp SearchResponse
	if err := c.doRequest(ctx, "/search/movie", params, &resp); err != nil {
		return nil, err
	}
	c.logger.Debug("movie search complete", "query", query, "results", resp.TotalResults)
	return &resp, nil
}

// Trending returns trending movies for the given window ("day" or "week").
func (c *Client) Trending(ctx context.Context, window string, page int) (*SearchResponse, error) {
	if window != "day" {
		window = "week"
	}
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", max(page, 1)))

	var resp SearchResponse
	if err := c.doRequest(ctx, "/trending/movie/"+window, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MovieDetails fetches the extended record for one movie.
func (c *Client) MovieDetails(ctx context.Context, movieID int) (*Details, error) {
	var details Details
	if err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", movieID), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *Client) doRequest(ctx context.Context, path string, params url.Values, dest interface{}) error {
	if c.apiKey == "" {
		return domain.ErrLookupNotConfigured
	}
	if !c.limiter.Allow() {
		return domain.ErrRateLimited
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &domain.RequestError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("lookup request failed", "path", path, "error", err)
		return &domain.RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		c.logger.Warn("lookup request rejected", "path", path, "status", resp.StatusCode)
		return &domain.RequestError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.RequestError{Err: err}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &domain.RequestError{Err: fmt.Errorf("malformed response: %w", err)}
	}
	return nil
}

// PosterURL builds a full image URL for a poster path. Valid sizes include
// w92, w154, w185, w342, w500, w780, and original.
func PosterURL(posterPath, size string) string {
	if posterPath == "" {
		return ""
	}
	if size == "" {
		size = "w500"
	}
	return fmt.Sprintf("https://image.tmdb.org/t/p/%s%s", size, posterPath)
}

// BackdropURL builds a full image URL for a backdrop path. Valid sizes are
// w300, w780, w1280, and original.
func BackdropURL(backdropPath, size string) string {
	if backdropPath == "" {
		return ""
	}
	if size == "" {
		size = "w780"
	}
	return fmt.Sprintf("https://image.tmdb.org/t/p/%s%s", size, backdropPath)
}
