package domain

import "time"

// BackupVersion is the version written into every backup document.
const BackupVersion = "1.0"

// BackupType selects what a backup contains.
type BackupType string

const (
	BackupTypeFull    BackupType = "full"
	BackupTypeContent BackupType = "content"
)

// IsValidBackupType checks if a backup type is valid.
func IsValidBackupType(t string) bool {
	return t == string(BackupTypeFull) || t == string(BackupTypeContent)
}

// Backup is the client-held backup document. It is never stored server side.
type Backup struct {
	Version   string     `json:"version"`
	Type      BackupType `json:"type"`
	Timestamp time.Time  `json:"timestamp"`
	Data      BackupData `json:"data"`
}

// BackupData holds the optional sections of a backup. Absent sections are
// skipped on restore.
type BackupData struct {
	Content     []ContentItem      `json:"content,omitempty"`
	Kanban      []Task             `json:"kanban,omitempty"`
	Preferences *BackupPreferences `json:"preferences,omitempty"`
}

// BackupPreferences is the preferences section of a backup.
type BackupPreferences struct {
	Cookies  map[string]bool `json:"cookies,omitempty"`
	Settings map[string]any  `json:"settings,omitempty"`
}
