package utils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// RecordExtension is the extension of every serialized record file.
const RecordExtension = ".record"

// OutputManager hands out unique paths for record files under a base
// output directory. Every worker writes to a distinct freshly named file,
// so the directory is shared without any locking.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// EnsureOutputDirExists creates the base output directory; a pre-existing
// directory is not an error.
func (om *OutputManager) EnsureOutputDirExists() error {
	return os.MkdirAll(om.BaseOutputDir, 0755)
}

// NewRecordPath returns a fresh output path named by a time-ordered
// UUIDv7, so record files sort by creation time.
func (om *OutputManager) NewRecordPath() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the entropy source does
		id = uuid.New()
	}
	return filepath.Join(om.BaseOutputDir, id.String()+RecordExtension)
}

// ListRecordFiles returns the record files currently under the output
// directory, sorted by name.
func (om *OutputManager) ListRecordFiles() ([]string, error) {
	entries, err := os.ReadDir(om.BaseOutputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), RecordExtension) {
			files = append(files, filepath.Join(om.BaseOutputDir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
