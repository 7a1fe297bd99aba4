package pipeline

import (
	"runtime"
	"sync"

	"go-record-pipeline/internal/model"
)

// Task is the handle for one submitted WorkItem.
type Task struct {
	item model.WorkItem
	done chan model.WorkResult
}

// Wait blocks until the task's result is available.
func (t *Task) Wait() model.WorkResult {
	return <-t.done
}

// Pool runs a fixed set of workers over submitted WorkItems. Workers own
// only the item they are executing and communicate exclusively through
// task result channels. Create a Pool with NewPool and Close it when no
// more work will be submitted.
type Pool struct {
	tasks     chan *Task
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewPool starts n workers executing exec for every submitted item. A
// non-positive n falls back to the host's logical core count.
func NewPool(n int, exec func(model.WorkItem) model.WorkResult) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}

	p := &Pool{tasks: make(chan *Task, n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for t := range p.tasks {
				t.done <- exec(t.item)
			}
		}()
	}
	return p
}

// Submit queues one item and returns its handle. Submit blocks when every
// worker is busy and the queue is full.
func (p *Pool) Submit(item model.WorkItem) *Task {
	t := &Task{item: item, done: make(chan model.WorkResult, 1)}
	p.tasks <- t
	return t
}

// Close stops accepting submissions and waits for in-flight work to
// finish. Safe to call more than once, so it can be deferred on every
// exit path.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
		p.wg.Wait()
	})
}
