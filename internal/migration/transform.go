package migration

import (
	"time"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

// NeedsStatus reports whether an item lacks a top-level status.
func NeedsStatus(item *domain.ContentItem) bool {
	return item.StatusEs == "" || item.StatusEn == ""
}

// NeedsPlatform reports whether an item lacks the platform map or its
// default youtube block.
func NeedsPlatform(item *domain.ContentItem) bool {
	return item.PlatformStatus == nil || item.PlatformStatus[domain.PlatformYouTube] == nil
}

// Needs reports whether mode would change item.
func Needs(item *domain.ContentItem, mode Mode) bool {
	switch mode {
	case ModeStatus:
		return NeedsStatus(item)
	case ModePlatform:
		return NeedsPlatform(item)
	case ModeAll:
		return NeedsStatus(item) || NeedsPlatform(item)
	}
	return false
}

// Apply fills the gaps selected by mode in place. A present status outside
// the enum yields ErrInvalidStatus and leaves item unchanged.
func Apply(item *domain.ContentItem, mode Mode) error {
	if (mode == ModeStatus || mode == ModeAll) && NeedsStatus(item) {
		if err := FillStatus(item); err != nil {
			return err
		}
	}
	if (mode == ModePlatform || mode == ModeAll) && NeedsPlatform(item) {
		if err := SeedPlatforms(item); err != nil {
			return err
		}
	}
	return nil
}

// FillStatus writes the derived status for each language missing one. The
// present status, if any, must be valid.
func FillStatus(item *domain.ContentItem) error {
	es, err := resolveStatus(item, domain.LangEs)
	if err != nil {
		return err
	}
	en, err := resolveStatus(item, domain.LangEn)
	if err != nil {
		return err
	}
	item.StatusEs, item.StatusEn = es, en
	return nil
}

// resolveStatus returns the stored status when valid, else the derivation
// of the legacy flag.
func resolveStatus(item *domain.ContentItem, lang domain.Lang) (domain.Status, error) {
	if stored := item.StoredStatus(lang); stored != "" {
		return domain.ParseStatus(string(stored))
	}
	return domain.DeriveStatus(item.Flag(lang)), nil
}

// SeedPlatforms builds the youtube block from the top-level fields and adds
// a pending block for every other platform that has none.
func SeedPlatforms(item *domain.ContentItem) error {
	yt := &domain.PlatformBlock{}
	for _, lang := range domain.Langs {
		status, err := resolveStatus(item, lang)
		if err != nil {
			return err
		}
		date := copyTime(item.LanguageDate(lang))
		if date == nil && status == domain.StatusPublished {
			date = copyTime(item.PublishedDate)
		}
		if lang == domain.LangEn {
			yt.StatusEn, yt.UrlEn, yt.PublishedDateEn = status, item.PublishedUrlEn, date
		} else {
			yt.StatusEs, yt.UrlEs, yt.PublishedDateEs = status, item.PublishedUrlEs, date
		}
	}

	if item.PlatformStatus == nil {
		item.PlatformStatus = make(map[domain.Platform]*domain.PlatformBlock, len(domain.Platforms))
	}
	item.PlatformStatus[domain.PlatformYouTube] = yt
	for _, p := range domain.Platforms {
		if item.PlatformStatus[p] == nil {
			item.PlatformStatus[p] = domain.NewPlatformBlock()
		}
	}
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := *t
	return &v
}
