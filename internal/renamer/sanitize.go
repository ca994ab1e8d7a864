// internal/renamer/sanitize.go
package renamer

import (
	"path/filepath"
	"regexp"
	"strings"
)

// illegalChars are characters not allowed in filenames on common filesystems.
var illegalChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// fullwidthColon is U+FF1A, common in titles returned by metadata providers.
const fullwidthColon = "\uff1a"

// SanitizeFilename makes one name component safe to embed in a filename.
// Illegal characters are dropped, not replaced, and a full-width colon
// becomes "-". Sanitizing twice gives the same result as sanitizing once.
func SanitizeFilename(name string) string {
	name = illegalChars.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, fullwidthColon, "-")
}

// ValidatePath ensures the path is within the expected root directory.
// Returns ErrPathTraversal if the path would escape the root.
func ValidatePath(path, expectedRoot string) error {
	cleanPath := filepath.Clean(path)
	cleanRoot := filepath.Clean(expectedRoot)

	if cleanPath == cleanRoot {
		return nil
	}

	prefix := cleanRoot
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(cleanPath, prefix) {
		return ErrPathTraversal
	}
	return nil
}
