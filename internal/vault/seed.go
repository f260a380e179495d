package vault

import "github.com/smymedia/mediavault/internal/domain"

func ptr(n int) *int { return &n }

// SeedItems returns the first-run sample collection. The spread of dates
// across 2023 and 2024 gives the timeline views something to group.
func SeedItems() []domain.MediaItem {
	return []domain.MediaItem{
		{
			ID:          "1",
			Title:       "The Matrix",
			Description: "A computer hacker learns from mysterious rebels about the true nature of his reality.",
			URL:         "https://example.com/matrix",
			Type:        domain.TypeMovie,
			Category:    "Science Fiction",
			Tags:        []string{"action", "sci-fi", "philosophy"},
			Rating:      ptr(5),
			Status:      domain.StatusCompleted,
			AddedAt:     "2024-01-15T10:30:00Z",
			LastViewed:  "2024-01-20T15:45:00Z",
			Notes:       "Mind-bending classic that still holds up today.",
			ImageURL:    "/images/matrix.jpg",
			Year:        1999,
			Duration:    "2h 16m",
			Platform:    "Netflix",
			IsFavorite:  true,
		},
		{
			ID:          "2",
			Title:       "Breaking Bad",
			Description: "A high school chemistry teacher turned methamphetamine manufacturer.",
			URL:         "https://example.com/breaking-bad",
			Type:        domain.TypeSeries,
			Category:    "Drama",
			Tags:        []string{"crime", "drama", "thriller"},
			Rating:      ptr(5),
			Status:      domain.StatusCompleted,
			AddedAt:     "2024-01-10T14:20:00Z",
			LastViewed:  "2024-01-25T20:15:00Z",
			Notes:       "One of the greatest TV series ever made.",
			ImageURL:    "/images/breaking-bad.jpg",
			Year:        2008,
			Duration:    "5 seasons",
			Seasons:     5,
			Episodes:    62,
			Platform:    "Netflix",
			IsFavorite:  true,
		},
		{
			ID:          "3",
			Title:       "1984 by George Orwell",
			Description: "A dystopian novel about totalitarianism and surveillance.",
			URL:         "https://example.com/1984",
			Type:        domain.TypeBook,
			Category:    "Literature",
			Tags:        []string{"dystopian", "classic", "political"},
			Rating:      ptr(4),
			Status:      domain.StatusCompleted,
			AddedAt:     "2024-01-05T09:15:00Z",
			LastViewed:  "2024-01-18T16:30:00Z",
			Notes:       "Timeless classic that remains relevant.",
			ImageURL:    "/images/1984.jpg",
			Year:        1949,
			Author:      "George Orwell",
			Platform:    "Local Library",
			IsFavorite:  false,
		},
		{
			ID:          "4",
			Title:       "Cyberpunk 2077",
			Description: "An open-world action-adventure story set in Night City.",
			URL:         "https://example.com/cyberpunk",
			Type:        domain.TypeGame,
			Category:    "RPG",
			Tags:        []string{"rpg", "cyberpunk", "open-world"},
			Rating:      ptr(4),
			Status:      domain.StatusWatching,
			AddedAt:     "2024-01-20T11:45:00Z",
			LastViewed:  "2024-01-26T22:00:00Z",
			Notes:       "Great story and atmosphere, some bugs remain.",
			ImageURL:    "/images/cyberpunk.jpg",
			Year:        2020,
			Platform:    "Steam",
			IsFavorite:  false,
		},
		{
			ID:          "5",
			Title:       "The Joe Rogan Experience",
			Description: "Long-form conversations with interesting people.",
			URL:         "https://example.com/jre",
			Type:        domain.TypePodcast,
			Category:    "Talk Show",
			Tags:        []string{"podcast", "conversation", "long-form"},
			Rating:      ptr(4),
			Status:      domain.StatusWatching,
			AddedAt:     "2024-01-12T13:00:00Z",
			LastViewed:  "2024-01-26T22:00:00Z",
			Notes:       "Great for long drives and workouts.",
			ImageURL:    "/images/jre.jpg",
			Platform:    "Spotify",
			IsFavorite:  true,
		},
		{
			ID:          "6",
			Title:       "Inception",
			Description: "A thief who steals corporate secrets through dream-sharing technology.",
			URL:         "https://example.com/inception",
			Type:        domain.TypeMovie,
			Category:    "Science Fiction",
			Tags:        []string{"action", "sci-fi", "thriller"},
			Rating:      ptr(5),
			Status:      domain.StatusCompleted,
			AddedAt:     "2023-12-20T16:30:00Z",
			LastViewed:  "2023-12-25T19:15:00Z",
			Notes:       "Mind-bending masterpiece by Nolan.",
			ImageURL:    "/images/inception.jpg",
			Year:        2010,
			Duration:    "2h 28m",
			Platform:    "HBO Max",
			IsFavorite:  true,
		},
		{
			ID:          "7",
			Title:       "The Witcher 3: Wild Hunt",
			Description: "An action role-playing game with a gripping story.",
			URL:         "https://example.com/witcher3",
			Type:        domain.TypeGame,
			Category:    "RPG",
			Tags:        []string{"rpg", "fantasy", "open-world"},
			Rating:      ptr(5),
			Status:      domain.StatusCompleted,
			AddedAt:     "2023-11-15T10:00:00Z",
			LastViewed:  "2023-12-10T18:45:00Z",
			Notes:       "One of the best RPGs ever made.",
			ImageURL:    "/images/witcher3.jpg",
			Year:        2015,
			Platform:    "Steam",
			IsFavorite:  true,
		},
		{
			ID:          "8",
			Title:       "The Lord of the Rings",
			Description: "Epic fantasy trilogy about a quest to destroy a powerful ring.",
			URL:         "https://example.com/lotr",
			Type:        domain.TypeBook,
			Category:    "Fantasy",
			Tags:        []string{"fantasy", "classic", "epic"},
			Rating:      ptr(5),
			Status:      domain.StatusCompleted,
			AddedAt:     "2023-10-05T14:20:00Z",
			LastViewed:  "2023-11-20T16:30:00Z",
			Notes:       "The definitive fantasy epic.",
			ImageURL:    "/images/lotr.jpg",
			Year:        1954,
			Author:      "J.R.R. Tolkien",
			Platform:    "Local Library",
			IsFavorite:  true,
		},
	}
}
