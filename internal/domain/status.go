package domain

import (
	"fmt"
	"strings"
)

// Status is the canonical publication state of a content item for one
// language, either at the top level or inside a platform block.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusPublished  Status = "published"
)

// ValidContentStatuses contains all valid publication statuses.
var ValidContentStatuses = []Status{StatusPending, StatusInProgress, StatusPublished}

// IsValid reports whether s is one of the tri-state values.
func (s Status) IsValid() bool {
	for _, v := range ValidContentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ParseStatus parses a stored or submitted status value. Unknown values are
// an integrity error and are never coerced.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// DeriveStatus maps a legacy published flag to a status. It never yields
// StatusInProgress; that value only exists once the enum has been written.
func DeriveStatus(published bool) Status {
	if published {
		return StatusPublished
	}
	return StatusPending
}

// DeriveFlag maps a status back to the legacy published flag.
func DeriveFlag(s Status) bool {
	return s == StatusPublished
}

// Lang identifies one of the two content languages.
type Lang string

const (
	LangEs Lang = "es"
	LangEn Lang = "en"
)

// Langs lists the content languages in display order.
var Langs = []Lang{LangEs, LangEn}

// ParseLang accepts "es"/"en" in any case.
func ParseLang(raw string) (Lang, error) {
	switch Lang(strings.ToLower(strings.TrimSpace(raw))) {
	case LangEs:
		return LangEs, nil
	case LangEn:
		return LangEn, nil
	}
	return "", fmt.Errorf("%w: unknown language %q", ErrValidationFailed, raw)
}

// Platform identifies a publishing platform.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
)

// Platforms lists every supported platform. YouTube is the default platform
// and is seeded from the top-level fields during migration.
var Platforms = []Platform{PlatformYouTube, PlatformTikTok, PlatformInstagram, PlatformTwitter, PlatformFacebook}

// ParsePlatform validates a platform name.
func ParsePlatform(raw string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(raw)))
	for _, v := range Platforms {
		if v == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown platform %q", ErrValidationFailed, raw)
}
