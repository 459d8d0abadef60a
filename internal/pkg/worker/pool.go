// Package worker provides the bounded goroutine pool that per-file scans run
// on. Naked goroutines are avoided; all fan-out goes through a Pool.
package worker

import (
	"runtime"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/corey/hanscan/internal/pkg/logger"
)

// Pool wraps ants.Pool. Submission blocks when all workers are busy, so the
// pool size is the hard bound on parallel file scans.
type Pool struct {
	pool *ants.Pool
}

// New creates a pool with the given size; size <= 0 means one worker per CPU.
func New(size int) (*Pool, error) {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	panicHandler := func(p interface{}) {
		logger.Error("worker panic recovered",
			zap.Any("panic", p),
			zap.Stack("stack"),
		)
	}

	inner, err := ants.NewPool(size,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &Pool{pool: inner}, nil
}

// Submit schedules task on a worker, blocking until one is free.
func (p *Pool) Submit(task func()) error {
	return p.pool.Submit(task)
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return p.pool.Cap()
}

// Release shuts the pool down. Pending tasks already submitted still run.
func (p *Pool) Release() {
	p.pool.Release()
}
