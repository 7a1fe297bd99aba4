package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty file", content: "", want: 0},
		{name: "three lines", content: "a,1\nb,2\nc,3\n", want: 3},
		{name: "no trailing newline", content: "a,1\nb,2", want: 2},
		{name: "blank lines count", content: "\n\n\n", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "data.csv", tt.content)
			got, err := CountLines(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountLinesMissingFile(t *testing.T) {
	_, err := CountLines(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "x,1\n")
	writeFile(t, dir, "a.csv", "y,2\n")
	writeFile(t, dir, "notes.txt", "ignored\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0755))

	files, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.csv"),
	}, files, "only data files, sorted by path")
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
