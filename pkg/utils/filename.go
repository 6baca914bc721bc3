package utils

import (
	"regexp"
	"strings"
)

// invalidFilenameChars matches characters that are not safe in file names
// on common filesystems, including control bytes.
var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// SanitizeFilename makes a string safe for use as a file name: invalid
// characters are dropped and the remaining fields are joined with
// underscores. An empty result becomes "untitled".
func SanitizeFilename(name string) string {
	cleaned := invalidFilenameChars.ReplaceAllString(name, " ")
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return "untitled"
	}
	return strings.Join(fields, "_")
}
