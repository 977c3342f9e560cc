package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/cache"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/kanban"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/logger"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/migration"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/realtime"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/validator"
)

// ContentService implements the content aggregate operations. Searches are
// served from a versioned cache that every write invalidates.
type ContentService struct {
	repo      repository.ContentRepository
	validator *validator.Validator
	cache     *cache.Versioned[[]domain.ContentItem]
	notifier  ChangeNotifier
	now       func() time.Time
}

// NewContentService creates a new ContentService. notifier may be nil.
func NewContentService(repo repository.ContentRepository, v *validator.Validator, notifier ChangeNotifier) *ContentService {
	return &ContentService{
		repo:      repo,
		validator: v,
		cache:     cache.New[[]domain.ContentItem](),
		notifier:  notifier,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ParseID checks that id is a well-formed record identifier.
func ParseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidIdentifier, id)
	}
	return nil
}

// Create stores a new item. Every status starts pending before the supplied
// fields are applied.
func (s *ContentService) Create(ctx context.Context, fields map[string]any) (*domain.ContentItem, error) {
	changes, err := parseReplaceFields(fields)
	if err != nil {
		return nil, err
	}

	now := s.now()
	item := domain.NewContentItem(uuid.New().String(), "", now)
	changes.apply(item, now)

	if err := s.validate(item); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	s.changed(realtime.EventContentCreated, item.ID)
	logger.Info("Content created", slog.String("content_id", item.ID))
	return item, nil
}

// Get returns one item.
func (s *ContentService) Get(ctx context.Context, id string) (*domain.ContentItem, error) {
	if err := ParseID(id); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// List searches content, serving repeated searches from the cache until the
// next write.
func (s *ContentService) List(ctx context.Context, filter repository.ContentFilter) (ContentList, error) {
	key := filter.Query + "\x00" + filter.Tag

	items, version, ok := s.cache.Get(key)
	if ok {
		return ContentList{Items: items, Version: version}, nil
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return ContentList{}, fmt.Errorf("list content: %w", err)
	}
	s.cache.Set(key, version, items)
	return ContentList{Items: items, Version: version}, nil
}

// Replace applies a full update. Only whitelisted fields are written.
func (s *ContentService) Replace(ctx context.Context, id string, fields map[string]any) (*domain.ContentItem, error) {
	if err := ParseID(id); err != nil {
		return nil, err
	}
	changes, err := parseReplaceFields(fields)
	if err != nil {
		return nil, err
	}
	return s.modify(ctx, id, func(item *domain.ContentItem, now time.Time) error {
		changes.apply(item, now)
		return nil
	})
}

// PatchPublication applies a partial update of publication flags and dates.
// A body without any of those fields is rejected before anything is read or
// written.
func (s *ContentService) PatchPublication(ctx context.Context, id string, fields map[string]any) (*domain.ContentItem, error) {
	if err := ParseID(id); err != nil {
		return nil, err
	}
	changes, err := parsePublicationFields(fields)
	if err != nil {
		return nil, err
	}
	return s.modify(ctx, id, func(item *domain.ContentItem, now time.Time) error {
		changes.applyPublication(item, now)
		return nil
	})
}

// SetStatus sets the top-level status of one language.
func (s *ContentService) SetStatus(ctx context.Context, id, lang, status string) (*domain.ContentItem, error) {
	if err := ParseID(id); err != nil {
		return nil, err
	}
	l, err := domain.ParseLang(lang)
	if err != nil {
		return nil, domain.NewValidationError("lang", "invalid_language")
	}
	st, err := domain.ParseStatus(status)
	if err != nil {
		return nil, domain.NewValidationError("status", "invalid_status")
	}
	return s.modify(ctx, id, func(item *domain.ContentItem, now time.Time) error {
		item.SetStatus(l, st, now)
		return nil
	})
}

// SetPlatformStatus sets the status of one language on one platform. Items
// without platform blocks are seeded first.
func (s *ContentService) SetPlatformStatus(ctx context.Context, id, platform, lang, status string, url *string) (*domain.ContentItem, error) {
	if err := ParseID(id); err != nil {
		return nil, err
	}
	p, err := domain.ParsePlatform(platform)
	if err != nil {
		return nil, domain.NewValidationError("platform", "invalid_platform")
	}
	l, err := domain.ParseLang(lang)
	if err != nil {
		return nil, domain.NewValidationError("lang", "invalid_language")
	}
	st, err := domain.ParseStatus(status)
	if err != nil {
		return nil, domain.NewValidationError("status", "invalid_status")
	}
	return s.modify(ctx, id, func(item *domain.ContentItem, now time.Time) error {
		if migration.NeedsPlatform(item) {
			if err := migration.SeedPlatforms(item); err != nil {
				return err
			}
		}
		block := item.Block(p)
		if block == nil {
			block = domain.NewPlatformBlock()
			item.PlatformStatus[p] = block
		}
		block.SetStatus(l, st, url, now)
		return nil
	})
}

// MoveCard moves an item to a content board column by writing both
// languages through the status model.
func (s *ContentService) MoveCard(ctx context.Context, id, column string) (*domain.ContentItem, error) {
	if err := ParseID(id); err != nil {
		return nil, err
	}
	col, err := kanban.ParseColumn(column)
	if err != nil {
		return nil, domain.NewValidationError("column", "invalid_column")
	}
	es, en := kanban.Flags(col)
	return s.modify(ctx, id, func(item *domain.ContentItem, now time.Time) error {
		item.SetPublished(domain.LangEs, es, now)
		item.SetPublished(domain.LangEn, en, now)
		return nil
	})
}

// Delete removes the whole aggregate.
func (s *ContentService) Delete(ctx context.Context, id string) error {
	if err := ParseID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.changed(realtime.EventContentDeleted, id)
	logger.Info("Content deleted", slog.String("content_id", id))
	return nil
}

// InvalidateAll drops the cache after a bulk write and tells clients to
// reload everything.
func (s *ContentService) InvalidateAll() {
	s.changed(realtime.EventContentReset, "")
}

// modify runs a read-modify-write of one item. The last write wins.
func (s *ContentService) modify(ctx context.Context, id string, fn func(item *domain.ContentItem, now time.Time) error) (*domain.ContentItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := fn(item, now); err != nil {
		return nil, err
	}
	item.UpdatedAt = now

	if err := s.validate(item); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.changed(realtime.EventContentUpdated, id)
	return item, nil
}

func (s *ContentService) validate(item *domain.ContentItem) error {
	return validator.ToDomainError(s.validator.ValidateContent(item))
}

func (s *ContentService) changed(eventType, id string) {
	version := s.cache.Invalidate()
	if s.notifier != nil {
		s.notifier.ContentChanged(eventType, version, id)
	}
}
