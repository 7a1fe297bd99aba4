package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpecFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJobSpec(t *testing.T) {
	path := writeSpecFile(t, `
data_dir: ./data/names
out_dir: output
workers: 8
timeout: 10m
`)

	spec, err := LoadJobSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "./data/names", spec.DataDir)
	assert.Equal(t, "output", spec.OutDir)
	assert.Equal(t, 8, spec.Workers)
	assert.Equal(t, "10m", spec.Timeout)
}

func TestLoadJobSpecRejectsMissingDirs(t *testing.T) {
	path := writeSpecFile(t, "workers: 4\n")

	_, err := LoadJobSpec(path)
	assert.Error(t, err)
}

func TestLoadJobSpecMissingFile(t *testing.T) {
	_, err := LoadJobSpec(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoadJobSpecMalformedYAML(t *testing.T) {
	path := writeSpecFile(t, "data_dir: [unclosed\n")

	_, err := LoadJobSpec(path)
	assert.Error(t, err)
}
