package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go-record-pipeline/internal/model"
	"go-record-pipeline/internal/store"
	"go-record-pipeline/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestStore(t *testing.T) {
	t.Helper()
	require.NoError(t, store.InitDB(filepath.Join(t.TempDir(), "pipeline.db")))
}

func saveTestRun(t *testing.T, spec model.ConversionJobSpec) string {
	t.Helper()
	runID := "test-run"
	require.NoError(t, store.SaveRun(runID, spec))
	return runID
}

func TestRunConvertsEveryLineAcrossFiles(t *testing.T) {
	initTestStore(t)
	dataDir := t.TempDir()
	writeFile(t, dataDir, "first.csv", "Alice,30\nBob,25\nCarol,41\n")
	writeFile(t, dataDir, "second.csv", "Dave,19\nEve,52\nFrank,33\nGrace,27\nHeidi,64\n")

	spec := model.ConversionJobSpec{
		DataDir: dataDir,
		OutDir:  filepath.Join(t.TempDir(), "out"),
		Workers: 3,
	}
	runID := saveTestRun(t, spec)

	require.NoError(t, Run(context.Background(), runID, spec))

	// Phase 1 total must be the sum across files no matter which file's
	// count finished first, and phase 2 must consume exactly that many.
	progress, err := store.GetRunProgress(runID)
	require.NoError(t, err)
	assert.Equal(t, 8, progress["total"])
	assert.Equal(t, 8, progress["processed"])
	assert.Equal(t, "completed", progress["status"])

	files, err := utils.NewOutputManager(spec.OutDir).ListRecordFiles()
	require.NoError(t, err)
	assert.Len(t, files, 8)

	errors, err := store.GetRunErrors(runID)
	require.NoError(t, err)
	assert.Empty(t, errors)
}

func TestRunRecordsPerLineFailuresAndContinues(t *testing.T) {
	initTestStore(t)
	dataDir := t.TempDir()
	writeFile(t, dataDir, "names.csv", "Alice,30\nBob\nCarol,41\n")

	spec := model.ConversionJobSpec{
		DataDir: dataDir,
		OutDir:  filepath.Join(t.TempDir(), "out"),
		Workers: 2,
	}
	runID := saveTestRun(t, spec)

	require.NoError(t, Run(context.Background(), runID, spec))

	// Progress still reaches the full total; only the valid lines
	// produced record files.
	progress, err := store.GetRunProgress(runID)
	require.NoError(t, err)
	assert.Equal(t, 3, progress["total"])
	assert.Equal(t, 3, progress["processed"])

	files, err := utils.NewOutputManager(spec.OutDir).ListRecordFiles()
	require.NoError(t, err)
	assert.Len(t, files, 2)

	errors, err := store.GetRunErrors(runID)
	require.NoError(t, err)
	require.Len(t, errors, 1)
	assert.Equal(t, filepath.Join(dataDir, "names.csv"), errors[0]["sourceFile"])
	assert.Equal(t, "Expected to find 2 fields but found 1", errors[0]["message"])
}

func TestRunAcceptsExistingOutputDir(t *testing.T) {
	initTestStore(t)
	dataDir := t.TempDir()
	writeFile(t, dataDir, "names.csv", "Alice,30\n")

	outDir := t.TempDir() // already exists
	spec := model.ConversionJobSpec{DataDir: dataDir, OutDir: outDir, Workers: 1}
	runID := saveTestRun(t, spec)

	require.NoError(t, Run(context.Background(), runID, spec))

	files, err := utils.NewOutputManager(outDir).ListRecordFiles()
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestRunFailsOnMissingDataDir(t *testing.T) {
	initTestStore(t)
	spec := model.ConversionJobSpec{
		DataDir: filepath.Join(t.TempDir(), "absent"),
		OutDir:  filepath.Join(t.TempDir(), "out"),
		Workers: 1,
	}
	runID := saveTestRun(t, spec)

	require.Error(t, Run(context.Background(), runID, spec))

	run, err := store.GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, "failed", run["status"])

	errors, err := store.GetRunErrors(runID)
	require.NoError(t, err)
	require.Len(t, errors, 1)
}

func TestRunHandlesEmptyDataDir(t *testing.T) {
	initTestStore(t)
	spec := model.ConversionJobSpec{
		DataDir: t.TempDir(),
		OutDir:  filepath.Join(t.TempDir(), "out"),
		Workers: 2,
	}
	runID := saveTestRun(t, spec)

	require.NoError(t, Run(context.Background(), runID, spec))

	progress, err := store.GetRunProgress(runID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress["total"])
	assert.Equal(t, 0, progress["processed"])
	assert.Equal(t, "completed", progress["status"])

	// The output directory is still created
	_, err = os.Stat(spec.OutDir)
	assert.NoError(t, err)
}

func TestCountPhaseMatchesProcessedLines(t *testing.T) {
	// Summing CountLines over the files equals the number of lines
	// phase 2 consumes for the same files.
	dataDir := t.TempDir()
	writeFile(t, dataDir, "a.csv", "x,1\ny,2\n")
	writeFile(t, dataDir, "b.csv", "z,3\n")

	files, err := Discover(dataDir)
	require.NoError(t, err)

	total := 0
	for _, f := range files {
		n, err := CountLines(f)
		require.NoError(t, err)
		total += n
	}
	assert.Equal(t, 3, total)
}
