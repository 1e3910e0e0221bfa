package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/GregMSThompson/report-cms/internal/dto"
	"github.com/GregMSThompson/report-cms/internal/errs"
	"github.com/GregMSThompson/report-cms/internal/models"
	"github.com/GregMSThompson/report-cms/pkg/logger"
)

const (
	newItemPrefix  = "new-"
	dupItemPrefix  = "dup-"
	duplicateTitle = " (Cópia)"

	newItemTitle    = "Novo Conteúdo"
	newItemSubtitle = "Editar"
	newItemBody     = "Adicione seu texto aqui..."
)

// documentStore persists the single report document.
type documentStore interface {
	Get(ctx context.Context) (*models.AppData, error)
	Put(ctx context.Context, d *models.AppData) error
}

type ContentOption func(*contentService)

// WithClock replaces the clock used for generated item ids and save times.
func WithClock(now func() time.Time) ContentOption {
	return func(s *contentService) { s.now = now }
}

// WithSeed replaces the built-in default document.
func WithSeed(d *models.AppData) ContentOption {
	return func(s *contentService) {
		if d != nil {
			s.seed = d.Clone()
		}
	}
}

// contentService is the single point of truth for the report document. Reads
// are served from the cache once it is hydrated; every mutation computes a new
// document, swaps it into the cache and issues exactly one store write. A
// failed write is reported but the cache keeps the mutation.
type contentService struct {
	store documentStore
	seed  *models.AppData
	now   func() time.Time

	mu    sync.Mutex
	cache *docCache
}

func NewContentService(store documentStore, opts ...ContentOption) *contentService {
	s := &contentService{
		store: store,
		seed:  models.DefaultDocument(),
		now:   time.Now,
		cache: newDocCache(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed.Settings == nil {
		def := models.DefaultSettings()
		s.seed.Settings = &def
	}
	return s
}

// Initialize hydrates the cache. It never fails: a missing document is
// replaced by the seed and an unreadable store falls back to the seed.
func (s *contentService) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked(ctx)
}

func (s *contentService) hydrateLocked(ctx context.Context) {
	if s.cache.ready() {
		return
	}
	log := logger.FromContext(ctx)

	d, err := s.store.Get(ctx)
	var nf *errs.NotFoundError
	switch {
	case err == nil:
		s.backfill(d)
		s.cache.hydrate(d)
	case errors.As(err, &nf):
		seed := s.seed.Clone()
		if err := s.store.Put(ctx, seed); err != nil {
			log.Warn("seed document not persisted, using in-memory default", "error", err)
		} else {
			log.Info("seed document written")
		}
		s.cache.hydrate(seed)
	default:
		log.Warn("document read failed, using in-memory default", "error", err)
		s.cache.hydrate(s.seed.Clone())
	}
}

func (s *contentService) backfill(d *models.AppData) {
	if d.Settings == nil {
		def := *s.seed.Settings
		d.Settings = &def
	}
	if d.Sections == nil {
		d.Sections = []models.ReportSection{}
	}
}

// GetData returns a copy of the current document, hydrating on first use.
func (s *contentService) GetData(ctx context.Context) *models.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked(ctx)
	return s.cache.doc.Clone()
}

// Invalidate drops the cache; the next read hydrates from the store again.
func (s *contentService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.invalidate()
}

func (s *contentService) SyncStatus() dto.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.status()
}

// SaveData replaces the whole document.
func (s *contentService) SaveData(ctx context.Context, d *models.AppData) error {
	if d == nil {
		return errs.NewValidationError("document is required")
	}
	next := d.Clone()
	s.backfill(next)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(ctx, next)
}

// ResetData overwrites the document with the seed.
func (s *contentService) ResetData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(ctx, s.seed.Clone())
}

func (s *contentService) commitLocked(ctx context.Context, next *models.AppData) error {
	s.cache.swap(next)
	if err := s.store.Put(ctx, next); err != nil {
		var se *errs.StoreError
		if !errors.As(err, &se) {
			err = errs.NewStoreError(errs.OpWrite, "saving document", err)
		}
		s.cache.failed(err)
		logger.FromContext(ctx).Error("document not saved", "error", err)
		return err
	}
	s.cache.saved(s.now())
	if logger.IsDebugEnabled(ctx) {
		logger.FromContext(ctx).Debug("document saved",
			"sections", len(next.Sections), "items", next.ItemCount())
	}
	return nil
}

// mutate applies fn to a copy of the cached document. The copy is committed
// only when fn reports a change.
func (s *contentService) mutate(ctx context.Context, fn func(d *models.AppData) (bool, error)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked(ctx)

	next := s.cache.doc.Clone()
	changed, err := fn(next)
	if err != nil || !changed {
		return false, err
	}
	return true, s.commitLocked(ctx, next)
}

// UpdateSettings replaces the settings wholesale. The returned flag tells the
// caller to reload any presentation state derived from them.
func (s *contentService) UpdateSettings(ctx context.Context, settings models.GlobalSettings) (bool, error) {
	_, err := s.mutate(ctx, func(d *models.AppData) (bool, error) {
		d.Settings = &settings
		return true, nil
	})
	return true, err
}

func (s *contentService) UpdateSectionTitle(ctx context.Context, sectionID, title string) (bool, error) {
	return s.mutate(ctx, func(d *models.AppData) (bool, error) {
		i := d.SectionIndex(sectionID)
		if i < 0 {
			return false, nil
		}
		d.Sections[i].MenuTitle = title
		return true, nil
	})
}

// AddSection appends an empty section and returns its id, derived from the
// title. A taken id gets a numeric suffix.
func (s *contentService) AddSection(ctx context.Context, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errs.NewValidationError("section title is required")
	}
	var id string
	_, err := s.mutate(ctx, func(d *models.AppData) (bool, error) {
		id = uniqueSlug(d, slugify(title))
		d.Sections = append(d.Sections, models.ReportSection{
			ID:        id,
			MenuTitle: title,
			Items:     []models.ContentItem{},
		})
		return true, nil
	})
	return id, err
}

func (s *contentService) RemoveSection(ctx context.Context, sectionID string) (bool, error) {
	return s.mutate(ctx, func(d *models.AppData) (bool, error) {
		i := d.SectionIndex(sectionID)
		if i < 0 {
			return false, nil
		}
		d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
		return true, nil
	})
}

// ReorderSection swaps the section with its neighbour. Moving past either end
// is a no-op.
func (s *contentService) ReorderSection(ctx context.Context, sectionID string, dir models.Direction) (bool, error) {
	if !dir.Valid() {
		return false, errs.NewValidationError(fmt.Sprintf("invalid direction: %q", dir))
	}
	return s.mutate(ctx, func(d *models.AppData) (bool, error) {
		return swapAdjacent(d.Sections, d.SectionIndex(sectionID), dir), nil
	})
}

// AddContentItem appends a placeholder item of type t. ok is false when the
// section does not exist.
func (s *contentService) AddContentItem(ctx context.Context, sectionID string, t models.ItemType) (string, bool, error) {
	payload, valid := models.NewPayload(t)
	if !valid {
		return "", false, errs.NewValidationError(fmt.Sprintf("unknown item type: %q", t))
	}
	var id string
	ok, err := s.mutate(ctx, func(d *models.AppData) (bool, error) {
		i := d.SectionIndex(sectionID)
		if i < 0 {
			return false, nil
		}
		id = s.newItemID(d, newItemPrefix)
		d.Sections[i].Items = append(d.Sections[i].Items, models.ContentItem{
			ID:       id,
			Title:    newItemTitle,
			Subtitle: newItemSubtitle,
			Body:     newItemBody,
			BgColor:  models.BgWhite,
			Layout:   models.LayoutLeft,
			Payload:  payload,
		})
		return true, nil
	})
	if !ok {
		id = ""
	}
	return id, ok, err
}

// UpdateSectionItem replaces the item with item.ID wholesale.
func (s *contentService) UpdateSectionItem(ctx context.Context, sectionID string, item models.ContentItem) (bool, error) {
	if !item.Type().Valid() {
		return false, errs.NewValidationError(fmt.Sprintf("unknown item type: %q", item.Type()))
	}
	item = item.Clone()
	return s.mutate(ctx, func(d *models.AppData) (bool, error) {
		i := d.SectionIndex(sectionID)
		if i < 0 {
			return false, nil
		}
		j := d.Sections[i].ItemIndex(item.ID)
		if j < 0 {
			return false, nil
		}
		d.Sections[i].Items[j] = item
		return true, nil
	})
}

// DuplicateContentItem inserts a copy of the item directly after it.
func (s *contentService) DuplicateContentItem(ctx context.Context, sectionID, itemID string) (string, bool, error) {
	var id string
	ok, err := s.mutate(ctx, func(d *models.AppData) (bool, error) {
		i := d.SectionIndex(sectionID)
		if i < 0 {
			return false, nil
		}
		items := d.Sections[i].Items
		j := d.Sections[i].ItemIndex(itemID)
		if j < 0 {
			return false, nil
		}
		dup := items[j].Clone()
		dup.ID = s.newItemID(d, dupItemPrefix)
		dup.Title += duplicateTitle
		id = dup.ID

		out := make([]models.ContentItem, 0, len(items)+1)
		out = append(out, items[:j+1]...)
		out = append(out, dup)
		out = append(out, items[j+1:]...)
		d.Sections[i].Items = out
		return true, nil
	})
	if !ok {
		id = ""
	}
	return id, ok, err
}

func (s *contentService) ReorderContentItem(ctx context.Context, sectionID, itemID string, dir models.Direction) (bool, error) {
	if !dir.Valid() {
		return false, errs.NewValidationError(fmt.Sprintf("invalid direction: %q", dir))
	}
	return s.mutate(ctx, func(d *models.AppData) (bool, error) {
		i := d.SectionIndex(sectionID)
		if i < 0 {
			return false, nil
		}
		sec := &d.Sections[i]
		return swapAdjacent(sec.Items, sec.ItemIndex(itemID), dir), nil
	})
}

func (s *contentService) RemoveContentItem(ctx context.Context, sectionID, itemID string) (bool, error) {
	return s.mutate(ctx, func(d *models.AppData) (bool, error) {
		i := d.SectionIndex(sectionID)
		if i < 0 {
			return false, nil
		}
		sec := &d.Sections[i]
		j := sec.ItemIndex(itemID)
		if j < 0 {
			return false, nil
		}
		sec.Items = append(sec.Items[:j], sec.Items[j+1:]...)
		return true, nil
	})
}

// GetSection returns one section of the current document.
func (s *contentService) GetSection(ctx context.Context, sectionID string) (models.ReportSection, error) {
	d := s.GetData(ctx)
	i := d.SectionIndex(sectionID)
	if i < 0 {
		return models.ReportSection{}, errs.NewNotFoundError("section not found: " + sectionID)
	}
	return d.Sections[i], nil
}

func (s *contentService) GetItem(ctx context.Context, sectionID, itemID string) (models.ContentItem, error) {
	sec, err := s.GetSection(ctx, sectionID)
	if err != nil {
		return models.ContentItem{}, err
	}
	j := sec.ItemIndex(itemID)
	if j < 0 {
		return models.ContentItem{}, errs.NewNotFoundError("item not found: " + itemID)
	}
	return sec.Items[j], nil
}

// Overview counts pages and blocks for the admin dashboard.
func (s *contentService) Overview(ctx context.Context) dto.Overview {
	d := s.GetData(ctx)
	return dto.Overview{Pages: len(d.Sections), Blocks: d.ItemCount()}
}

// newItemID returns prefix+unix millis, moving forward one millisecond at a
// time until the id is unused in d.
func (s *contentService) newItemID(d *models.AppData, prefix string) string {
	ms := s.now().UnixMilli()
	for {
		id := prefix + strconv.FormatInt(ms, 10)
		if !d.HasItemID(id) {
			return id
		}
		ms++
	}
}

func swapAdjacent[T any](list []T, i int, dir models.Direction) bool {
	if i < 0 {
		return false
	}
	j := i - 1
	if dir == models.DirectionDown {
		j = i + 1
	}
	if j < 0 || j >= len(list) {
		return false
	}
	list[i], list[j] = list[j], list[i]
	return true
}

// slugify lower-cases title and replaces every character outside [a-z0-9]
// with '-'.
func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func uniqueSlug(d *models.AppData, base string) string {
	id := base
	for n := 2; d.SectionIndex(id) >= 0; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	return id
}
