package domain

import (
	"strings"
	"time"
)

// ContentItem is a bilingual piece of social-media content with its
// publication state per language and per platform.
//
// StatusEs/StatusEn are authoritative. PublishedEs/PublishedEn are the
// legacy flags; the service only ever writes them as the projection of the
// status (see SyncFlags). An empty status means the field is absent from the
// stored document, which only happens for records predating the enum.
type ContentItem struct {
	ID    string `json:"id" bson:"_id"`
	Title string `json:"title" bson:"title"`

	TeleprompterEs  string `json:"teleprompterEs" bson:"teleprompterEs"`
	TeleprompterEn  string `json:"teleprompterEn" bson:"teleprompterEn"`
	DescriptionEs   string `json:"descriptionEs" bson:"descriptionEs"`
	DescriptionEn   string `json:"descriptionEn" bson:"descriptionEn"`
	PinnedCommentEs string `json:"pinnedCommentEs" bson:"pinnedCommentEs"`
	PinnedCommentEn string `json:"pinnedCommentEn" bson:"pinnedCommentEn"`

	Captions map[Platform]Caption `json:"captions,omitempty" bson:"captions,omitempty"`

	StatusEs Status `json:"statusEs,omitempty" bson:"statusEs,omitempty"`
	StatusEn Status `json:"statusEn,omitempty" bson:"statusEn,omitempty"`

	PublishedEs bool `json:"publishedEs" bson:"publishedEs"`
	PublishedEn bool `json:"publishedEn" bson:"publishedEn"`

	PublishedDateEs *time.Time `json:"publishedDateEs" bson:"publishedDateEs"`
	PublishedDateEn *time.Time `json:"publishedDateEn" bson:"publishedDateEn"`
	// Alternate-named date fields written by older clients. Read only.
	PublishedEsDate *time.Time `json:"publishedEsDate,omitempty" bson:"publishedEsDate,omitempty"`
	PublishedEnDate *time.Time `json:"publishedEnDate,omitempty" bson:"publishedEnDate,omitempty"`
	// PublishedDate is the shared, non-language-specific legacy date.
	PublishedDate *time.Time `json:"publishedDate,omitempty" bson:"publishedDate,omitempty"`

	PublishedUrlEs string `json:"publishedUrlEs" bson:"publishedUrlEs"`
	PublishedUrlEn string `json:"publishedUrlEn" bson:"publishedUrlEn"`

	PlatformStatus map[Platform]*PlatformBlock `json:"platformStatus,omitempty" bson:"platformStatus,omitempty"`

	Tags []string `json:"tags" bson:"tags"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Caption holds a platform caption in both languages.
type Caption struct {
	Es string `json:"es" bson:"es"`
	En string `json:"en" bson:"en"`
}

// PlatformBlock is the per-platform copy of the status/url/date trio.
type PlatformBlock struct {
	StatusEs        Status     `json:"statusEs" bson:"statusEs"`
	StatusEn        Status     `json:"statusEn" bson:"statusEn"`
	UrlEs           string     `json:"urlEs" bson:"urlEs"`
	UrlEn           string     `json:"urlEn" bson:"urlEn"`
	PublishedDateEs *time.Time `json:"publishedDateEs" bson:"publishedDateEs"`
	PublishedDateEn *time.Time `json:"publishedDateEn" bson:"publishedDateEn"`
}

// NewPlatformBlock returns a block with both languages pending and empty.
func NewPlatformBlock() *PlatformBlock {
	return &PlatformBlock{StatusEs: StatusPending, StatusEn: StatusPending}
}

// NewPlatformStatus returns a pending block for every platform.
func NewPlatformStatus() map[Platform]*PlatformBlock {
	ps := make(map[Platform]*PlatformBlock, len(Platforms))
	for _, p := range Platforms {
		ps[p] = NewPlatformBlock()
	}
	return ps
}

// Status returns the block's status for lang.
func (b *PlatformBlock) Status(lang Lang) Status {
	if lang == LangEn {
		return b.StatusEn
	}
	return b.StatusEs
}

// SetStatus updates the status for lang and stamps the date on a transition
// into published. Leaving published keeps the date.
func (b *PlatformBlock) SetStatus(lang Lang, s Status, url *string, now time.Time) {
	status, date, u := &b.StatusEs, &b.PublishedDateEs, &b.UrlEs
	if lang == LangEn {
		status, date, u = &b.StatusEn, &b.PublishedDateEn, &b.UrlEn
	}
	if s == StatusPublished && *status != StatusPublished {
		t := now
		*date = &t
	}
	*status = s
	if url != nil {
		*u = *url
	}
}

// NewContentItem returns an item with every status pending.
func NewContentItem(id, title string, now time.Time) *ContentItem {
	return &ContentItem{
		ID:             id,
		Title:          title,
		StatusEs:       StatusPending,
		StatusEn:       StatusPending,
		PlatformStatus: NewPlatformStatus(),
		Tags:           []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// StoredStatus returns the status field as stored, empty when absent.
func (c *ContentItem) StoredStatus(lang Lang) Status {
	if lang == LangEn {
		return c.StatusEn
	}
	return c.StatusEs
}

// EffectiveStatus returns the stored status, or the status derived from the
// legacy flag when the enum is absent.
func (c *ContentItem) EffectiveStatus(lang Lang) Status {
	if s := c.StoredStatus(lang); s != "" {
		return s
	}
	return DeriveStatus(c.Flag(lang))
}

// Flag returns the legacy published flag for lang.
func (c *ContentItem) Flag(lang Lang) bool {
	if lang == LangEn {
		return c.PublishedEn
	}
	return c.PublishedEs
}

// SetStatus writes the canonical status for lang, stamps the publish date on
// a transition into published and refreshes the legacy flag.
func (c *ContentItem) SetStatus(lang Lang, s Status, now time.Time) {
	prev := c.EffectiveStatus(lang)
	status, date := &c.StatusEs, &c.PublishedDateEs
	if lang == LangEn {
		status, date = &c.StatusEn, &c.PublishedDateEn
	}
	if s == StatusPublished && prev != StatusPublished {
		t := now
		*date = &t
	}
	*status = s
	c.SyncFlags()
}

// SetPublished applies a legacy flag write through the status model. true
// publishes; false moves a published item back to pending and leaves a
// pending or in-progress item alone. Dates are never cleared.
func (c *ContentItem) SetPublished(lang Lang, published bool, now time.Time) {
	cur := c.EffectiveStatus(lang)
	switch {
	case published:
		c.SetStatus(lang, StatusPublished, now)
	case cur == StatusPublished:
		c.SetStatus(lang, StatusPending, now)
	default:
		c.SetStatus(lang, cur, now)
	}
}

// SyncFlags rewrites the legacy flags from the present statuses.
func (c *ContentItem) SyncFlags() {
	if c.StatusEs != "" {
		c.PublishedEs = DeriveFlag(c.StatusEs)
	}
	if c.StatusEn != "" {
		c.PublishedEn = DeriveFlag(c.StatusEn)
	}
}

// LanguageDate returns the language-specific publish date field.
func (c *ContentItem) LanguageDate(lang Lang) *time.Time {
	if lang == LangEn {
		return c.PublishedDateEn
	}
	return c.PublishedDateEs
}

// SetLanguageDate overwrites the language-specific publish date field.
func (c *ContentItem) SetLanguageDate(lang Lang, t *time.Time) {
	if lang == LangEn {
		c.PublishedDateEn = t
		return
	}
	c.PublishedDateEs = t
}

// LanguageURL returns the top-level published url for lang.
func (c *ContentItem) LanguageURL(lang Lang) string {
	if lang == LangEn {
		return c.PublishedUrlEn
	}
	return c.PublishedUrlEs
}

// EffectivePublishDate resolves the date a language was published on:
// language-specific field, then the alternate-named field, then the shared
// date. Creation time is never used.
func (c *ContentItem) EffectivePublishDate(lang Lang) *time.Time {
	alt := c.PublishedEsDate
	if lang == LangEn {
		alt = c.PublishedEnDate
	}
	for _, t := range []*time.Time{c.LanguageDate(lang), alt, c.PublishedDate} {
		if t != nil && !t.IsZero() {
			return t
		}
	}
	return nil
}

// Block returns the block for p, nil when absent.
func (c *ContentItem) Block(p Platform) *PlatformBlock {
	if c.PlatformStatus == nil {
		return nil
	}
	return c.PlatformStatus[p]
}

// Clone returns a deep copy of the item.
func (c *ContentItem) Clone() *ContentItem {
	out := *c
	out.PublishedDateEs = cloneTime(c.PublishedDateEs)
	out.PublishedDateEn = cloneTime(c.PublishedDateEn)
	out.PublishedEsDate = cloneTime(c.PublishedEsDate)
	out.PublishedEnDate = cloneTime(c.PublishedEnDate)
	out.PublishedDate = cloneTime(c.PublishedDate)
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	if c.Captions != nil {
		out.Captions = make(map[Platform]Caption, len(c.Captions))
		for k, v := range c.Captions {
			out.Captions[k] = v
		}
	}
	if c.PlatformStatus != nil {
		out.PlatformStatus = make(map[Platform]*PlatformBlock, len(c.PlatformStatus))
		for k, v := range c.PlatformStatus {
			if v == nil {
				out.PlatformStatus[k] = nil
				continue
			}
			b := *v
			b.PublishedDateEs = cloneTime(v.PublishedDateEs)
			b.PublishedDateEn = cloneTime(v.PublishedDateEn)
			out.PlatformStatus[k] = &b
		}
	}
	return &out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// NormalizeTags trims, drops empties and removes duplicates while keeping the
// first occurrence order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SplitTags parses a comma-separated tag string.
func SplitTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}
