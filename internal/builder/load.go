// internal/builder/load.go
package builder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"
)

// ErrMissingContentRoot reports that the content directory does not
// exist. Callers treat it as an empty collection rather than a fatal
// failure.
var ErrMissingContentRoot = errors.New("content root does not exist")

// sourceExt marks a file as a content document.
const sourceExt = ".md"

// ListSources returns the markdown filenames directly under contentDir,
// sorted by name. File contents are not inspected here.
func ListSources(contentDir string) ([]string, error) {
	entries, err := os.ReadDir(contentDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingContentRoot, contentDir)
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != sourceExt {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ReadSource reads one source document as UTF-8 text.
func ReadSource(contentDir, filename string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(contentDir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("content file is not valid UTF-8: %s", filename)
	}
	return raw, nil
}
