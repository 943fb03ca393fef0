package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/osse101/SpinForge_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs queued jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	stopOnce sync.Once
	failed   atomic.Int64
}

// NewPool creates a new worker pool. workers below 1 run one worker.
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
	}
}

// Start starts the workers. Jobs run with ctx; once it is cancelled the
// remaining queued jobs are skipped.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker is the worker loop
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	log := logger.FromContext(ctx)
	for job := range p.jobQueue {
		if ctx.Err() != nil {
			p.failed.Add(1)
			log.Debug(LogMsgWorkerJobSkipped)
			continue
		}
		if err := job.Process(ctx); err != nil {
			p.failed.Add(1)
			log.Error(LogMsgWorkerJobFailed, "error", err)
		}
	}
}

// Enqueue adds a job to the queue, blocking while it is full.
// It must not be called after Stop.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop closes the queue and waits until every queued job has been handled
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.jobQueue) })
	p.wg.Wait()
}

// Failed counts jobs that returned an error or were skipped
func (p *Pool) Failed() int64 {
	return p.failed.Load()
}
