package domain

import "time"

// MediaType distinguishes the kind of content an item links to.
type MediaType string

const (
	TypeMovie       MediaType = "movie"
	TypeSeries      MediaType = "series"
	TypeBook        MediaType = "book"
	TypeGame        MediaType = "game"
	TypePodcast     MediaType = "podcast"
	TypeYouTube     MediaType = "youtube"
	TypeArticle     MediaType = "article"
	TypeMusic       MediaType = "music"
	TypeDocumentary MediaType = "documentary"
	TypeOther       MediaType = "other"
)

// MediaTypes lists every valid media type, in display order.
var MediaTypes = []MediaType{
	TypeMovie, TypeSeries, TypeBook, TypeGame, TypePodcast,
	TypeYouTube, TypeArticle, TypeMusic, TypeDocumentary, TypeOther,
}

// Valid reports whether t is one of the closed set of media types.
func (t MediaType) Valid() bool {
	for _, known := range MediaTypes {
		if t == known {
			return true
		}
	}
	return false
}

// MediaStatus tracks where an item sits in the user's watch/read/play cycle.
type MediaStatus string

const (
	StatusToWatch   MediaStatus = "to-watch"
	StatusWatching  MediaStatus = "watching"
	StatusCompleted MediaStatus = "completed"
	StatusAbandoned MediaStatus = "abandoned"
	StatusOnHold    MediaStatus = "on-hold"
)

// MediaStatuses lists every valid status, in display order.
var MediaStatuses = []MediaStatus{
	StatusToWatch, StatusWatching, StatusCompleted, StatusAbandoned, StatusOnHold,
}

// Valid reports whether s is one of the closed set of statuses.
func (s MediaStatus) Valid() bool {
	for _, known := range MediaStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// MediaItem is a single tracked media record: a link plus the metadata the
// user annotates it with. Timestamps are stored as RFC3339 strings so the
// persisted form stays portable across exports.
type MediaItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url"`
	Type        MediaType   `json:"type"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Rating      *int        `json:"rating,omitempty"` // 1-5 stars
	Status      MediaStatus `json:"status"`
	AddedAt     string      `json:"addedAt"`              // Set once at creation, never mutated
	LastViewed  string      `json:"lastViewed,omitempty"` // Updated via Touch only
	Notes       string      `json:"notes,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Year        int         `json:"year,omitempty"`
	Duration    string      `json:"duration,omitempty"` // Free text: "2h 16m", "5 seasons"
	Seasons     int         `json:"seasons,omitempty"`
	Episodes    int         `json:"episodes,omitempty"`
	Author      string      `json:"author,omitempty"`
	Platform    string      `json:"platform,omitempty"` // Netflix, Steam, etc.
	IsFavorite  bool        `json:"isFavorite"`
}

// AddedTime parses the creation timestamp. The zero time is returned for
// malformed values so callers can treat them as "oldest".
func (m MediaItem) AddedTime() time.Time {
	t, err := time.Parse(time.RFC3339, m.AddedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// LastViewedTime parses the last-viewed timestamp, zero if unset or malformed.
func (m MediaItem) LastViewedTime() time.Time {
	if m.LastViewed == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, m.LastViewed)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HasTag reports whether the item already carries tag (exact match).
func (m MediaItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Draft holds the caller-supplied fields for a new item. ID and AddedAt are
// deliberately absent: the repository assigns them at creation.
type Draft struct {
	Title       string
	Description string
	URL         string
	Type        MediaType
	Category    string
	Tags        []string
	Rating      *int
	Status      MediaStatus
	Notes       string
	ImageURL    string
	Year        int
	Duration    string
	Seasons     int
	Episodes    int
	Author      string
	Platform    string
	IsFavorite  bool
}

// ItemPatch is a partial update: nil fields keep their prior values. ID and
// AddedAt have no representation here, so the merge cannot alter them.
type ItemPatch struct {
	Title       *string
	Description *string
	URL         *string
	Type        *MediaType
	Category    *string
	Tags        *[]string
	Rating      *int
	ClearRating bool // True removes an existing rating
	Status      *MediaStatus
	LastViewed  *string
	Notes       *string
	ImageURL    *string
	Year        *int
	Duration    *string
	Seasons     *int
	Episodes    *int
	Author      *string
	Platform    *string
	IsFavorite  *bool
}

// Stats summarizes the current collection. Every enumerated type and status
// is present in the maps, zero-valued when absent from the collection;
// categories are whatever the collection actually contains.
type Stats struct {
	Total      int
	ByType     map[MediaType]int
	ByStatus   map[MediaStatus]int
	ByCategory map[string]int
	Favorites  int
	Completed  int
	ToWatch    int
}
