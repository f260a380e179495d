package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/smymedia/mediavault/internal/domain"
)

// Color palette
var (
	Purple    = lipgloss.Color("#A855F7")
	Pink      = lipgloss.Color("#EC4899")
	SlateDark = lipgloss.Color("#1F2937")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
	Green     = lipgloss.Color("#10B981")
	Yellow    = lipgloss.Color("#F59E0B")
	Red       = lipgloss.Color("#EF4444")
	Blue      = lipgloss.Color("#3B82F6")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Purple)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Purple).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(SlateDark).
			Bold(true).
			Padding(0, 2)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(LightGray)
)

// typeIcons maps each media type to its display glyph. Unknown types fall
// back through TypeIcon; stored values are never rewritten to fit the map.
var typeIcons = map[domain.MediaType]string{
	domain.TypeMovie:       "🎬",
	domain.TypeSeries:      "📺",
	domain.TypeBook:        "📚",
	domain.TypeGame:        "🎮",
	domain.TypePodcast:     "🎧",
	domain.TypeYouTube:     "📹",
	domain.TypeArticle:     "📰",
	domain.TypeMusic:       "🎵",
	domain.TypeDocumentary: "🎥",
	domain.TypeOther:       "📌",
}

// TypeIcon returns the glyph for a media type, with a fallback for values
// outside the known set.
func TypeIcon(t domain.MediaType) string {
	if icon, ok := typeIcons[t]; ok {
		return icon
	}
	return "📌"
}

var statusLabels = map[domain.MediaStatus]string{
	domain.StatusToWatch:   "To Watch",
	domain.StatusWatching:  "Watching",
	domain.StatusCompleted: "Completed",
	domain.StatusAbandoned: "Abandoned",
	domain.StatusOnHold:    "On Hold",
}

// StatusLabel returns the display label for a status, "Unknown" for values
// outside the known set.
func StatusLabel(s domain.MediaStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

var statusColors = map[domain.MediaStatus]lipgloss.Color{
	domain.StatusToWatch:   Blue,
	domain.StatusWatching:  Yellow,
	domain.StatusCompleted: Green,
	domain.StatusAbandoned: Red,
	domain.StatusOnHold:    DimGray,
}

// StatusStyle returns a style colored for the given status.
func StatusStyle(s domain.MediaStatus) lipgloss.Style {
	color, ok := statusColors[s]
	if !ok {
		color = DimGray
	}
	return lipgloss.NewStyle().Foreground(color)
}

// Stars renders a 1-5 rating as filled and empty stars, empty string for
// unrated items.
func Stars(rating *int) string {
	if rating == nil {
		return ""
	}
	out := ""
	for i := 1; i <= 5; i++ {
		if i <= *rating {
			out += "★"
		} else {
			out += "☆"
		}
	}
	return out
}
