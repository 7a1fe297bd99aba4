package pipeline

import (
	"log"

	"go-record-pipeline/internal/store"
)

// progressStride is how many consumed results pass between progress
// reports.
const progressStride = 100

// Progress tracks phase-2 completion against the phase-1 total. It is
// only ever touched from the goroutine consuming pool results, so it
// needs no locking. At normal termination Processed() equals Total()
// regardless of how many individual lines failed.
type Progress struct {
	logger    *log.Logger
	runID     string
	total     int
	processed int
}

// NewProgress creates a progress tracker expecting total results.
func NewProgress(logger *log.Logger, runID string, total int) *Progress {
	return &Progress{logger: logger, runID: runID, total: total}
}

// Advance records one consumed result, success or failure alike, and
// periodically reports.
func (p *Progress) Advance() {
	p.processed++
	if p.processed%progressStride == 0 {
		p.report()
	}
}

// Finish flushes the final progress state.
func (p *Progress) Finish() {
	p.report()
}

// Processed returns the number of results consumed so far.
func (p *Progress) Processed() int {
	return p.processed
}

// Total returns the phase-1 line total.
func (p *Progress) Total() int {
	return p.total
}

func (p *Progress) report() {
	pct := 100.0
	if p.total > 0 {
		pct = float64(p.processed) * 100 / float64(p.total)
	}
	p.logger.Printf("⏳ Progress: %d/%d lines (%.1f%%)", p.processed, p.total, pct)
	store.SaveRunProgress(p.runID, p.processed, p.total)
}
