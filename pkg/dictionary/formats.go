package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// textExtensions are the extensions expected for a names file. Other
// extensions are accepted with a debug note.
var textExtensions = []string{".txt", ".lst", ""}

// ValidateNamesFile checks that path exists and is a regular file.
func ValidateNamesFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	known := false
	for _, e := range textExtensions {
		if ext == e {
			known = true
			break
		}
	}
	if !known {
		log.Debugf("Names file %s has unusual extension %s, reading as plain text", path, ext)
	}
	if info.Size() == 0 {
		log.Warnf("Names file %s is empty", path)
	}
	return nil
}
