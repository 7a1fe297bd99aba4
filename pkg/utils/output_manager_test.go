package utils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureOutputDirExists(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "out")
	om := NewOutputManager(base)

	require.NoError(t, om.EnsureOutputDirExists())
	// A second call on the now-existing directory is not an error
	require.NoError(t, om.EnsureOutputDirExists())

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewRecordPathIsUniqueAndOrdered(t *testing.T) {
	om := NewOutputManager(t.TempDir())

	const n = 100
	paths := make([]string, 0, n)
	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		path := om.NewRecordPath()
		assert.True(t, strings.HasSuffix(path, RecordExtension))
		assert.Equal(t, om.BaseOutputDir, filepath.Dir(path))
		assert.False(t, seen[path], "path %s handed out twice", path)
		seen[path] = true
		paths = append(paths, path)
	}

	// UUIDv7 names are time-ordered, so generation order sorts
	assert.True(t, sort.StringsAreSorted(paths))
}

func TestListRecordFiles(t *testing.T) {
	dir := t.TempDir()
	om := NewOutputManager(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.record"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.record"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	files, err := om.ListRecordFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.record"),
		filepath.Join(dir, "b.record"),
	}, files)
}
