package arffsql

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// validator handles input validation for DBBuilder
type validator struct{}

// newValidator creates a new validator instance
func newValidator() *validator {
	return &validator{}
}

// validatePath validates a single file or directory path and returns its
// file info for directory dispatch.
func (v *validator) validatePath(path string) (fs.FileInfo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load file: path does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to stat path %s: %w", path, err)
	}

	// For files, check the extension; directories are filtered during walk
	if !info.IsDir() && !IsSupportedFile(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return info, nil
}
