package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// SecureFilename strips path components and replaces characters outside
// [A-Za-z0-9._-] so the result is safe to use as a filename.
func SecureFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}

// UploadName prefixes a sanitized filename with a unix timestamp to
// avoid collisions between uploads sharing a name.
func UploadName(original string, now time.Time) string {
	clean := SecureFilename(original)
	if clean == "" {
		clean = "upload"
	}
	return fmt.Sprintf("%d_%s", now.Unix(), clean)
}
