package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// maxRestoreFileSize bounds the multipart memory used by a restore upload.
const maxRestoreFileSize = 32 << 20
