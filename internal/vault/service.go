// Package vault owns the in-memory catalog for the active session and its
// durability backing. Every mutation validates first, applies in memory, and
// then writes the whole collection through the store; a failed write is
// reported but never rolls the in-memory state back.
package vault

import (
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/smymedia/mediavault/internal/domain"
	"github.com/smymedia/mediavault/internal/stats"
	"github.com/smymedia/mediavault/internal/store"
)

// Store is the persistence boundary the vault writes through. Load reports
// absence (missing or unparsable blob) as false rather than an error.
type Store interface {
	Load(key string, dest interface{}) bool
	Save(key string, value interface{}) error
	SizeOf(key string) int
}

// Service is the catalog repository: the authoritative entry collection for
// the session. Construct one per session and pass it by reference; there is
// no package-level instance.
type Service struct {
	store  Store
	logger *slog.Logger
	items  []domain.MediaItem
}

// NewService creates a vault service backed by st. The collection is empty
// until LoadAll runs.
func NewService(st Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, logger: logger}
}

// LoadAll reads the persisted collection. On first run (no entries blob) the
// vault is seeded with the sample set and persisted immediately. A blob that
// exists but cannot be parsed is treated as absence of data and logged, so
// the session starts empty instead of failing.
func (s *Service) LoadAll() []domain.MediaItem {
	var items []domain.MediaItem
	if !s.store.Load(store.KeyEntries, &items) {
		if s.store.SizeOf(store.KeyEntries) > 0 {
			s.logger.Warn("entries blob unreadable, starting empty")
			s.items = []domain.MediaItem{}
			return s.snapshot()
		}
		s.logger.Info("no entries found, seeding sample data")
		s.items = SeedItems()
		if err := s.persist("seed"); err != nil {
			s.logger.Error("failed to persist seed data", "error", err)
		}
		return s.snapshot()
	}
	s.items = items
	s.logger.Debug("loaded entries", "count", len(items))
	return s.snapshot()
}

// Items returns a copy of the current collection, newest first.
func (s *Service) Items() []domain.MediaItem {
	return s.snapshot()
}

// Len returns the current collection size.
func (s *Service) Len() int { return len(s.items) }

// Stats summarizes the current collection.
func (s *Service) Stats() domain.Stats {
	return stats.Collect(s.items)
}

// Add validates draft, assigns an ID and creation timestamp, prepends the
// new entry, and persists. The created entry is returned; a persistence
// failure comes back alongside it as a non-fatal *domain.PersistenceError.
func (s *Service) Add(draft domain.Draft) (domain.MediaItem, error) {
	if err := validateDraft(draft); err != nil {
		return domain.MediaItem{}, err
	}

	item := domain.MediaItem{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		URL:         draft.URL,
		Type:        draft.Type,
		Category:    draft.Category,
		Tags:        dedupeTags(draft.Tags),
		Rating:      draft.Rating,
		Status:      draft.Status,
		AddedAt:     time.Now().UTC().Format(time.RFC3339),
		Notes:       draft.Notes,
		ImageURL:    draft.ImageURL,
		Year:        draft.Year,
		Duration:    draft.Duration,
		Seasons:     draft.Seasons,
		Episodes:    draft.Episodes,
		Author:      draft.Author,
		Platform:    draft.Platform,
		IsFavorite:  draft.IsFavorite,
	}

	s.items = append([]domain.MediaItem{item}, s.items...)
	s.logger.Info("added entry", "id", item.ID, "title", item.Title, "type", item.Type)

	return item, s.persist("add")
}

// Update merges patch over the entry with the given id. Omitted (nil) fields
// keep their prior values; ID and AddedAt are not representable in the patch
// and therefore cannot change. Rating is revalidated on every update.
func (s *Service) Update(id string, patch domain.ItemPatch) (domain.MediaItem, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.MediaItem{}, domain.ErrItemNotFound
	}

	if err := validatePatch(patch); err != nil {
		return domain.MediaItem{}, err
	}

	merged := merge(s.items[i], patch)
	s.items[i] = merged
	s.logger.Info("updated entry", "id", id)

	return merged, s.persist("update")
}

// Remove deletes the entry with the given id outright. Removing an id twice
// yields ErrItemNotFound the second time with no further state change.
// Confirmation before destructive calls is the caller's responsibility.
func (s *Service) Remove(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrItemNotFound
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	s.logger.Info("removed entry", "id", id)

	return s.persist("remove")
}

// Touch stamps the entry's last-viewed time with now. This is the only
// mutation path for LastViewed.
func (s *Service) Touch(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrItemNotFound
	}

	s.items[i].LastViewed = time.Now().UTC().Format(time.RFC3339)
	return s.persist("touch")
}

// AddTag appends tag to the entry unless it already carries it.
func (s *Service) AddTag(id, tag string) error {
	if tag == "" {
		return &domain.ValidationError{Field: "tag", Reason: "must not be empty"}
	}
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrItemNotFound
	}
	if s.items[i].HasTag(tag) {
		return nil
	}

	s.items[i].Tags = append(s.items[i].Tags, tag)
	return s.persist("tag")
}

// ReplaceAll swaps in a wholesale imported collection. Every record must
// carry at least an id and a title; a rejected payload leaves the prior
// collection untouched.
func (s *Service) ReplaceAll(items []domain.MediaItem) error {
	for i, item := range items {
		if item.ID == "" {
			return &domain.ValidationError{Field: "id", Reason: fmt.Sprintf("record %d has no id", i)}
		}
		if item.Title == "" {
			return &domain.ValidationError{Field: "title", Reason: fmt.Sprintf("record %d has no title", i)}
		}
	}

	s.items = append([]domain.MediaItem(nil), items...)
	s.logger.Info("replaced collection", "count", len(items))

	return s.persist("import")
}

// ImportSnapshot parses an exported file and replaces the collection with
// its contents. Anything that is not a JSON array of entries is rejected
// before any state changes.
func (s *Service) ImportSnapshot(data []byte) error {
	var items []domain.MediaItem
	if err := json.Unmarshal(data, &items); err != nil {
		return &domain.ValidationError{Field: "import", Reason: "file is not a JSON array of media entries"}
	}
	return s.ReplaceAll(items)
}

// ExportSnapshot serializes the full current collection, pretty-printed.
// It is a pure read: persisted storage is not touched.
func (s *Service) ExportSnapshot() ([]byte, error) {
	return json.MarshalIndent(s.items, "", "  ")
}

// ExportFilename names an export file with the current date embedded.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("media-vault-%s.json", now.Format("2006-01-02"))
}

func (s *Service) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) snapshot() []domain.MediaItem {
	return append([]domain.MediaItem(nil), s.items...)
}

// persist writes the whole collection through the store. Failures are
// wrapped and logged but the in-memory collection stays authoritative.
func (s *Service) persist(op string) error {
	if err := s.store.Save(store.KeyEntries, s.items); err != nil {
		s.logger.Error("persist failed", "op", op, "error", err)
		return &domain.PersistenceError{Op: op, Err: err}
	}
	return nil
}

func validateDraft(d domain.Draft) error {
	if d.Title == "" {
		return &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if d.URL == "" {
		return &domain.ValidationError{Field: "url", Reason: "must not be empty"}
	}
	if !d.Type.Valid() {
		return &domain.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown media type %q", d.Type)}
	}
	if !d.Status.Valid() {
		return &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", d.Status)}
	}
	return validateRating(d.Rating)
}

func validatePatch(p domain.ItemPatch) error {
	if p.Title != nil && *p.Title == "" {
		return &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if p.URL != nil && *p.URL == "" {
		return &domain.ValidationError{Field: "url", Reason: "must not be empty"}
	}
	if p.Type != nil && !p.Type.Valid() {
		return &domain.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown media type %q", *p.Type)}
	}
	if p.Status != nil && !p.Status.Valid() {
		return &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", *p.Status)}
	}
	return validateRating(p.Rating)
}

func validateRating(r *int) error {
	if r != nil && (*r < 1 || *r > 5) {
		return &domain.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	return nil
}

// merge applies patch over item field by field. The guarded shape (no ID or
// AddedAt in the patch type) is what enforces creation-metadata immutability.
func merge(item domain.MediaItem, p domain.ItemPatch) domain.MediaItem {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.URL != nil {
		item.URL = *p.URL
	}
	if p.Type != nil {
		item.Type = *p.Type
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Tags != nil {
		item.Tags = dedupeTags(*p.Tags)
	}
	if p.ClearRating {
		item.Rating = nil
	} else if p.Rating != nil {
		item.Rating = p.Rating
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.LastViewed != nil {
		item.LastViewed = *p.LastViewed
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.Year != nil {
		item.Year = *p.Year
	}
	if p.Duration != nil {
		item.Duration = *p.Duration
	}
	if p.Seasons != nil {
		item.Seasons = *p.Seasons
	}
	if p.Episodes != nil {
		item.Episodes = *p.Episodes
	}
	if p.Author != nil {
		item.Author = *p.Author
	}
	if p.Platform != nil {
		item.Platform = *p.Platform
	}
	if p.IsFavorite != nil {
		item.IsFavorite = *p.IsFavorite
	}
	return item
}

func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
