package domain

import "time"

// ThemeSetting is the settings key holding the UI theme.
const ThemeSetting = "theme"

// ValidThemes contains all valid theme names.
var ValidThemes = []string{"light", "dark", "system"}

// Preferences is the single preferences document of the installation.
type Preferences struct {
	Settings  map[string]any  `json:"settings"`
	Cookies   map[string]bool `json:"cookies"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// DefaultPreferences returns the preferences used before anything is saved.
func DefaultPreferences() Preferences {
	return Preferences{
		Settings: map[string]any{ThemeSetting: "system"},
		Cookies:  map[string]bool{},
	}
}
