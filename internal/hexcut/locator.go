package hexcut

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no source image exists for a name under any of
// the candidate extensions.
var ErrNotFound = errors.New("source image not found")

// DefaultExtensions is the search order for source images.
var DefaultExtensions = []string{".png", ".jpeg", ".jpg"}

// Locator finds the source file for a named image.
//
// Extensions are tried in order and matched case-sensitively; the first path
// for which Exists reports true wins. A nil Exists checks the real filesystem
// for a regular file.
type Locator struct {
	Extensions []string
	Exists     func(path string) bool
}

// DefaultLocator searches the filesystem using DefaultExtensions.
func DefaultLocator() Locator {
	return Locator{Extensions: DefaultExtensions, Exists: IsRegularFile}
}

// Resolve returns <dir>/<name><ext> for the first existing extension, or an
// error wrapping ErrNotFound.
func (l Locator) Resolve(dir, name string) (string, error) {
	exists := l.Exists
	if exists == nil {
		exists = IsRegularFile
	}
	exts := l.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	base := filepath.Join(dir, name)
	for _, ext := range exts {
		if candidate := base + ext; exists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s (tried %v)", ErrNotFound, name, dir, exts)
}

// IsRegularFile reports whether path names an existing regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
