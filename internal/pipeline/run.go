package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go-record-pipeline/internal/model"
	"go-record-pipeline/internal/store"
	"go-record-pipeline/pkg/utils"
)

// pendingBuffer bounds how far line submission may run ahead of result
// consumption during phase 2.
const pendingBuffer = 64

// ------------------- Pipeline Runner -------------------

// Run executes one conversion run: count every line across the data files
// in parallel, then convert each line into its own record file through the
// same worker pool. Per-line failures are logged and recorded but never
// abort the run; directory and file-level failures do.
func Run(ctx context.Context, runID string, spec model.ConversionJobSpec) (err error) {
	start := time.Now()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	store.UpdateRunStatus(runID, "running")

	// Record the failure before the caller sees it
	defer func() {
		if err != nil {
			store.UpdateRunStatus(runID, "failed")
			store.SaveRunError(runID, err)
		}
	}()

	out := utils.NewOutputManager(spec.OutDir)
	if err := out.EnsureOutputDirExists(); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", spec.OutDir, err)
	}

	files, err := Discover(spec.DataDir)
	if err != nil {
		return err
	}

	worker := NewWorker(out, JSONCodec{})
	pool := NewPool(spec.Workers, func(item model.WorkItem) model.WorkResult {
		switch item.Kind {
		case model.CountJob:
			n, err := CountLines(item.Path)
			return model.WorkResult{Count: n, Err: err}
		default:
			return model.WorkResult{Status: worker.Process(item.Line)}
		}
	})
	defer pool.Close()

	// --- Phase 1: counting ---
	logger.Printf("🧮 Counting the number of lines in the %d supplied files", len(files))
	store.SaveRunLog(runID, "count", "info", "Counting input lines", map[string]interface{}{
		"files": len(files),
	})

	total, err := countAll(pool, files, logger)
	if err != nil {
		return err
	}

	logger.Printf("🧮 Found %d total inputs", total)
	store.SaveRunProgress(runID, 0, total)
	store.SaveRunLog(runID, "count", "info", "Counted input lines", map[string]interface{}{
		"total": total,
	})

	// --- Phase 2: processing ---
	progress := NewProgress(logger, runID, total)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := processFile(pool, path, runID, progress, logger); err != nil {
			return err
		}
	}
	progress.Finish()

	store.UpdateRunStatus(runID, "completed")
	store.SaveRunLog(runID, "process", "info", "Run completed", map[string]interface{}{
		"processed":   progress.Processed(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	logger.Printf("✅ All done! Processed %d lines in %v", progress.Processed(), time.Since(start))
	return nil
}

// countAll submits one CountJob per file and sums the counts in whatever
// order they complete; the sum does not depend on completion order. The
// first count failure aborts the run after all counts have drained.
func countAll(pool *Pool, files []string, logger *log.Logger) (int, error) {
	results := make(chan model.WorkResult, len(files))
	for _, path := range files {
		t := pool.Submit(model.WorkItem{Kind: model.CountJob, Path: path})
		go func() { results <- t.Wait() }()
	}

	total := 0
	var firstErr error
	for i := 0; i < len(files); i++ {
		res := <-results
		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		total += res.Count
		logger.Printf("🧮 Counted %d/%d files", i+1, len(files))
	}
	if firstErr != nil {
		return 0, firstErr
	}
	return total, nil
}

// processFile streams one file's lines through the pool and consumes the
// results in submission order, so progress and the error log follow the
// in-file line order even though execution across workers does not.
func processFile(pool *Pool, path, runID string, progress *Progress, logger *log.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer f.Close()

	pending := make(chan *Task, pendingBuffer)
	readErr := make(chan error, 1)
	go func() {
		defer close(pending)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			pending <- pool.Submit(model.WorkItem{
				Kind: model.ProcessJob,
				Line: model.InputLine{Text: scanner.Text(), Source: path},
			})
		}
		readErr <- scanner.Err()
	}()

	for t := range pending {
		status := t.Wait().Status
		if !status.Ok() {
			logger.Printf("❌ Error processing line in %s: %s", path, status.Message)
			store.SaveLineError(runID, path, status)
		}
		progress.Advance()
	}

	if err := <-readErr; err != nil {
		return fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	return nil
}
