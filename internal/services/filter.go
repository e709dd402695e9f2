package services

import (
	"path/filepath"
	"strings"
)

// matchesFilter reports whether a file name passes the scan filter. The
// filter is deliberately not a glob engine:
//
//   - "*" and "*.*" match every file
//   - "*.<ext>" matches when the file's extension equals <ext>
//     case-insensitively (a file with no extension never matches)
//   - anything else currently matches every file
//
// The match-everything fallback for unrecognized patterns mirrors the
// shipped behavior; it looks like an unfinished pattern language rather
// than a deliberate choice, but callers rely on it.
// Directories are never filtered and must not be passed here.
func matchesFilter(filter, name string) bool {
	if filter == "*" || filter == "*.*" {
		return true
	}
	if strings.HasPrefix(filter, "*.") {
		want := strings.TrimPrefix(filter, "*.")
		ext := filepath.Ext(name)
		if ext == "" {
			return false
		}
		return strings.EqualFold(strings.TrimPrefix(ext, "."), want)
	}
	return true
}
