package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

// Date layouts accepted for date fields, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var textFields = map[string]func(c *domain.ContentItem) *string{
	"title":           func(c *domain.ContentItem) *string { return &c.Title },
	"teleprompterEs":  func(c *domain.ContentItem) *string { return &c.TeleprompterEs },
	"teleprompterEn":  func(c *domain.ContentItem) *string { return &c.TeleprompterEn },
	"descriptionEs":   func(c *domain.ContentItem) *string { return &c.DescriptionEs },
	"descriptionEn":   func(c *domain.ContentItem) *string { return &c.DescriptionEn },
	"pinnedCommentEs": func(c *domain.ContentItem) *string { return &c.PinnedCommentEs },
	"pinnedCommentEn": func(c *domain.ContentItem) *string { return &c.PinnedCommentEn },
	"publishedUrlEs":  func(c *domain.ContentItem) *string { return &c.PublishedUrlEs },
	"publishedUrlEn":  func(c *domain.ContentItem) *string { return &c.PublishedUrlEn },
}

var dateFields = map[string]func(c *domain.ContentItem) **time.Time{
	"publishedDateEs": func(c *domain.ContentItem) **time.Time { return &c.PublishedDateEs },
	"publishedDateEn": func(c *domain.ContentItem) **time.Time { return &c.PublishedDateEn },
	"publishedDate":   func(c *domain.ContentItem) **time.Time { return &c.PublishedDate },
}

var flagFields = map[string]domain.Lang{
	"publishedEs": domain.LangEs,
	"publishedEn": domain.LangEn,
}

var statusFields = map[string]domain.Lang{
	"statusEs": domain.LangEs,
	"statusEn": domain.LangEn,
}

// patchDateFields are the date fields a partial publication update may carry.
var patchDateFields = map[string]domain.Lang{
	"publishedDateEs": domain.LangEs,
	"publishedDateEn": domain.LangEn,
}

// contentChanges is a parsed, coerced set of field writes.
type contentChanges struct {
	text     map[string]string
	dates    map[string]*time.Time
	flags    map[domain.Lang]bool
	statuses map[domain.Lang]domain.Status
	tags     []string
	hasTags  bool
	captions map[domain.Platform]domain.Caption
}

func newContentChanges() *contentChanges {
	return &contentChanges{
		text:     map[string]string{},
		dates:    map[string]*time.Time{},
		flags:    map[domain.Lang]bool{},
		statuses: map[domain.Lang]domain.Status{},
	}
}

func (c *contentChanges) empty() bool {
	return len(c.text) == 0 && len(c.dates) == 0 && len(c.flags) == 0 &&
		len(c.statuses) == 0 && !c.hasTags && c.captions == nil
}

// parseReplaceFields keeps the whitelisted fields of a full update and coerces
// them. Unknown keys are dropped.
func parseReplaceFields(fields map[string]any) (*contentChanges, error) {
	changes := newContentChanges()
	invalid := map[string]string{}

	for key, raw := range fields {
		switch {
		case textFields[key] != nil:
			changes.text[key] = coerceString(raw)
		case dateFields[key] != nil:
			t, err := coerceDate(raw)
			if err != nil {
				invalid[key] = err.Error()
				continue
			}
			changes.dates[key] = t
		case key == "tags":
			tags, err := coerceTags(raw)
			if err != nil {
				invalid[key] = err.Error()
				continue
			}
			changes.tags, changes.hasTags = tags, true
		case key == "captions":
			captions, err := coerceCaptions(raw)
			if err != nil {
				invalid[key] = err.Error()
				continue
			}
			changes.captions = captions
		default:
			if lang, ok := flagFields[key]; ok {
				b, err := coerceBool(raw)
				if err != nil {
					invalid[key] = err.Error()
					continue
				}
				changes.flags[lang] = b
			} else if lang, ok := statusFields[key]; ok {
				s, err := domain.ParseStatus(coerceString(raw))
				if err != nil {
					invalid[key] = "invalid_status"
					continue
				}
				changes.statuses[lang] = s
			}
		}
	}

	if len(invalid) > 0 {
		return nil, &domain.ValidationError{Fields: invalid}
	}
	return changes, nil
}

// parsePublicationFields keeps only the publication flags and their dates.
// It returns domain.ErrEmptyUpdate when none is present.
func parsePublicationFields(fields map[string]any) (*contentChanges, error) {
	changes := newContentChanges()
	invalid := map[string]string{}

	for key, raw := range fields {
		if lang, ok := flagFields[key]; ok {
			b, err := coerceBool(raw)
			if err != nil {
				invalid[key] = err.Error()
				continue
			}
			changes.flags[lang] = b
			continue
		}
		if _, ok := patchDateFields[key]; ok {
			t, err := coerceDate(raw)
			if err != nil {
				invalid[key] = err.Error()
				continue
			}
			changes.dates[key] = t
		}
	}

	if len(invalid) > 0 {
		return nil, &domain.ValidationError{Fields: invalid}
	}
	if changes.empty() {
		return nil, domain.ErrEmptyUpdate
	}
	return changes, nil
}

// apply writes the changes onto item. A supplied status wins over the flag of
// the same language; explicit dates are written last so they override the
// stamp of a publish transition.
func (c *contentChanges) apply(item *domain.ContentItem, now time.Time) {
	for key, v := range c.text {
		*textFields[key](item) = v
	}
	if c.hasTags {
		item.Tags = c.tags
	}
	if c.captions != nil {
		item.Captions = c.captions
	}
	for _, lang := range domain.Langs {
		if s, ok := c.statuses[lang]; ok {
			item.SetStatus(lang, s, now)
			continue
		}
		if b, ok := c.flags[lang]; ok {
			item.SetPublished(lang, b, now)
		}
	}
	for key, t := range c.dates {
		*dateFields[key](item) = t
	}
}

// applyPublication writes a partial publication update. true stamps the paired
// date with now unless a date was supplied; false leaves the date alone.
func (c *contentChanges) applyPublication(item *domain.ContentItem, now time.Time) {
	for _, lang := range domain.Langs {
		b, ok := c.flags[lang]
		if !ok {
			continue
		}
		item.SetPublished(lang, b, now)
		if b {
			stamp := now
			item.SetLanguageDate(lang, &stamp)
		}
	}
	for key, t := range c.dates {
		item.SetLanguageDate(patchDateFields[key], t)
	}
}

func coerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

func coerceBool(v any) (bool, error) {
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	case float64:
		return x != 0, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("not a boolean")
		}
		return b, nil
	default:
		return false, fmt.Errorf("not a boolean")
	}
}

func coerceDate(v any) (*time.Time, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil, nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				t = t.UTC()
				return &t, nil
			}
		}
		return nil, fmt.Errorf("not a date")
	default:
		return nil, fmt.Errorf("not a date")
	}
}

func coerceTags(v any) ([]string, error) {
	switch x := v.(type) {
	case nil:
		return []string{}, nil
	case string:
		return domain.SplitTags(x), nil
	case []string:
		return domain.NormalizeTags(x), nil
	case []any:
		tags := make([]string, 0, len(x))
		for _, t := range x {
			tags = append(tags, coerceString(t))
		}
		return domain.NormalizeTags(tags), nil
	default:
		return nil, fmt.Errorf("tags must be a list or a comma separated string")
	}
}

func coerceCaptions(v any) (map[domain.Platform]domain.Caption, error) {
	if v == nil {
		return map[domain.Platform]domain.Caption{}, nil
	}
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("captions must be an object")
	}
	out := make(map[domain.Platform]domain.Caption, len(raw))
	for key, value := range raw {
		p, err := domain.ParsePlatform(key)
		if err != nil {
			return nil, fmt.Errorf("unknown platform %q", key)
		}
		var caption domain.Caption
		if m, ok := value.(map[string]any); ok {
			caption.Es = coerceString(m["es"])
			caption.En = coerceString(m["en"])
		} else if value != nil {
			return nil, fmt.Errorf("caption for %s must be an object", key)
		}
		out[p] = caption
	}
	return out, nil
}
