package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// inputExtension is the extension of the delimited data files picked up
// from the data directory.
const inputExtension = ".csv"

// Discover lists the data files directly under dataDir and returns their
// paths sorted lexicographically, so phase 2 always visits files in the
// same order. An unreadable directory is fatal to the run.
func Discover(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", dataDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), inputExtension) {
			files = append(files, filepath.Join(dataDir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
