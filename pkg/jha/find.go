package jha

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindFile locates the workbook in dir: defaultName when present, otherwise
// the first .xlsx or .xls file in name order.
func FindFile(dir, defaultName string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if defaultName != "" {
		candidate := filepath.Join(dir, defaultName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	for _, e := range entries {
		// Skip directories and Office lock files
		if e.IsDir() || strings.HasPrefix(e.Name(), "~$") {
			continue
		}
		name := strings.ToLower(e.Name())
		if strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xls") {
			return filepath.Join(dir, e.Name()), nil
		}
	}

	return "", fmt.Errorf("%w in %s", ErrFileNotFound, dir)
}
