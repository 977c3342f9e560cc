package validator

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

const (
	maxTitleLength = 300
	maxTagLength   = 64
)

var (
	validContentStatus = statusValues()
	validTaskStatus    = taskStatusValues()
	validThemes        = themeValues()
)

func statusValues() []interface{} {
	out := make([]interface{}, 0, len(domain.ValidContentStatuses))
	for _, s := range domain.ValidContentStatuses {
		out = append(out, s)
	}
	return out
}

func taskStatusValues() []interface{} {
	out := make([]interface{}, 0, len(domain.ValidTaskStatuses))
	for _, s := range domain.ValidTaskStatuses {
		out = append(out, s)
	}
	return out
}

func themeValues() []interface{} {
	out := make([]interface{}, 0, len(domain.ValidThemes))
	for _, s := range domain.ValidThemes {
		out = append(out, s)
	}
	return out
}

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateContent validates a ContentItem before it is saved. An absent
// status is allowed; a present one must belong to the enum.
func (v *Validator) ValidateContent(c *domain.ContentItem) error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(0, maxTitleLength).Error("title_too_long"),
		),
		validation.Field(&c.StatusEs,
			validation.In(validContentStatus...).Error("invalid_status"),
		),
		validation.Field(&c.StatusEn,
			validation.In(validContentStatus...).Error("invalid_status"),
		),
		validation.Field(&c.PublishedUrlEs, is.URL.Error("invalid_url")),
		validation.Field(&c.PublishedUrlEn, is.URL.Error("invalid_url")),
		validation.Field(&c.Tags, validation.Each(
			validation.Required.Error("empty_tag"),
			validation.RuneLength(0, maxTagLength).Error("tag_too_long"),
		)),
	)
	if err != nil {
		return err
	}

	for _, p := range domain.Platforms {
		b := c.Block(p)
		if b == nil {
			continue
		}
		if err := validatePlatformBlock(b); err != nil {
			return validation.Errors{"platformStatus." + string(p): err}
		}
	}

	return nil
}

func validatePlatformBlock(b *domain.PlatformBlock) error {
	return validation.ValidateStruct(b,
		validation.Field(&b.StatusEs,
			validation.Required.Error("status_required"),
			validation.In(validContentStatus...).Error("invalid_status"),
		),
		validation.Field(&b.StatusEn,
			validation.Required.Error("status_required"),
			validation.In(validContentStatus...).Error("invalid_status"),
		),
		validation.Field(&b.UrlEs, is.URL.Error("invalid_url")),
		validation.Field(&b.UrlEn, is.URL.Error("invalid_url")),
	)
}

// ValidateTask validates a Task entity.
func (v *Validator) ValidateTask(t *domain.Task) error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(0, maxTitleLength).Error("title_too_long"),
		),
		validation.Field(&t.Status,
			validation.Required.Error("status_required"),
			validation.In(validTaskStatus...).Error("invalid_status"),
		),
		validation.Field(&t.ContentID,
			validation.Required.Error("content_id_required"),
			is.UUID.Error("invalid_content_id"),
		),
	)
}

// ValidatePrompt validates a Prompt entity.
func (v *Validator) ValidatePrompt(p *domain.Prompt) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(0, maxTitleLength).Error("title_too_long"),
		),
		validation.Field(&p.Body,
			validation.Required.Error("body_required"),
		),
	)
}

// ValidatePreferences validates the preferences document. Only the theme
// setting has a fixed shape; other settings are opaque.
func (v *Validator) ValidatePreferences(p *domain.Preferences) error {
	theme, ok := p.Settings[domain.ThemeSetting]
	if !ok {
		return nil
	}
	return validation.Errors{
		"settings.theme": validation.Validate(theme, validation.By(themeRule)),
	}.Filter()
}

func themeRule(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("invalid_theme", "theme must be a string")
	}
	return validation.Validate(s, validation.In(validThemes...).Error("invalid_theme"))
}

// ToDomainError converts ozzo validation errors to a domain.ValidationError
// carrying one reason per field. Other errors are returned unchanged.
func ToDomainError(err error) error {
	if err == nil {
		return nil
	}
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}
	out := &domain.ValidationError{Fields: make(map[string]string, len(ve))}
	flatten("", ve, out.Fields)
	return out
}

func flatten(prefix string, ve validation.Errors, into map[string]string) {
	for field, fieldErr := range ve {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		var nested validation.Errors
		if errors.As(fieldErr, &nested) {
			flatten(key, nested, into)
			continue
		}
		into[key] = fieldErr.Error()
	}
}

// ConvertValidationErrors converts ozzo validation errors to domain
// RecordErrors for one record of a restore section.
func ConvertValidationErrors(section string, rowNum int, err error) []domain.RecordError {
	var recordErrors []domain.RecordError

	var ve *domain.ValidationError
	if errors.As(ToDomainError(err), &ve) {
		for field, reason := range ve.Fields {
			recordErrors = append(recordErrors, domain.RecordError{
				Section: section,
				Row:     rowNum,
				Field:   field,
				Reason:  reason,
			})
		}
	} else if err != nil {
		recordErrors = append(recordErrors, domain.RecordError{
			Section: section,
			Row:     rowNum,
			Field:   "unknown",
			Reason:  err.Error(),
		})
	}

	return recordErrors
}

// Describe renders record errors as a single line.
func Describe(errs []domain.RecordError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, fmt.Sprintf("%s[%d].%s: %s", e.Section, e.Row, e.Field, e.Reason))
	}
	return strings.Join(parts, "; ")
}
