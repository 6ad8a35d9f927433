package grading

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrPoolClosed is returned by Submit once the pool has shut down.
var ErrPoolClosed = errors.New("worker pool is closed")

type Job interface {
	Execute(ctx context.Context) error
}

// WorkerPool runs sheet-scoring jobs across a fixed set of goroutines.
// Sheets are independent and read-only, so any completion order is fine;
// callers own result ordering.
type WorkerPool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc

	// mu orders Submit against Close: no send may race the channel close.
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool creates a pool with the given size; size 0 means CPU-based
// sizing with a reserve for the rest of the process.
func NewWorkerPool(ctx context.Context, size int) *WorkerPool {
	if size <= 0 {
		totalCPU := runtime.NumCPU()
		systemReserve := max(1, totalCPU/4)
		size = max(1, totalCPU-systemReserve)
	}
	log.Info().
		Int("workers", size).
		Msg("Grading worker pool initialized")
	poolCtx, cancel := context.WithCancel(ctx)

	pool := &WorkerPool{
		workers:  size,
		jobQueue: make(chan Job, size*2),
		ctx:      poolCtx,
		cancel:   cancel,
	}

	pool.start()

	return pool
}

func (p *WorkerPool) start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			if err := job.Execute(p.ctx); err != nil {
				log.Error().Err(err).Msg("Worker failed to execute job")
			}
		}
	}
}

// Submit queues a job; it fails only once the pool is shut down.
func (p *WorkerPool) Submit(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case <-p.ctx.Done():
		return p.ctx.Err()
	case p.jobQueue <- job:
		return nil
	}
}

// Close shuts the pool down. Jobs already queued still run; the workers drain
// the queue, exit on its close, and only then is the pool context cancelled.
// Close is idempotent.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.jobQueue)
	p.wg.Wait()
	p.cancel()
}

// Size returns the number of workers.
func (p *WorkerPool) Size() int {
	return p.workers
}
