// Package worker runs background jobs on a bounded pool. The dashboard uses
// it to precompute views into the view cache after the dataset loads, so the
// first visitor of a tab does not pay for the aggregation.
package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vctstats/cluster-dashboard/internal/metrics"
)

// Job is a unit of work for the pool
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	Logger      *zap.Logger
}

// Pool runs jobs on a fixed number of workers
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger

	mu     sync.Mutex
	closed bool
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
	)
}

// Enqueue adds a job without blocking. A full queue or a stopped pool drops
// the job and returns false.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		metrics.WarmupJobs.WithLabelValues("dropped").Inc()
		return false
	}

	select {
	case p.jobQueue <- job:
		metrics.WarmupQueueDepth.Set(float64(len(p.jobQueue)))
		return true
	default:
		p.logger.Warnw("Worker queue full, dropping job", "job", job.Name)
		metrics.WarmupJobs.WithLabelValues("dropped").Inc()
		return false
	}
}

// Drain closes the queue and waits until every queued job has run
func (p *Pool) Drain() {
	p.close()
	p.wg.Wait()
}

// Stop cancels running jobs, discards the queue and waits for the workers
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")
	if p.cancel != nil {
		p.cancel()
	}
	p.close()
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

func (p *Pool) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.jobQueue)
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobQueue {
		metrics.WarmupQueueDepth.Set(float64(len(p.jobQueue)))
		if p.ctx.Err() != nil {
			metrics.WarmupJobs.WithLabelValues("dropped").Inc()
			continue
		}

		start := time.Now()
		if err := job.Run(p.ctx); err != nil {
			p.logger.Warnw("Job failed", "worker", id, "job", job.Name, "error", err)
			metrics.WarmupJobs.WithLabelValues("failed").Inc()
			continue
		}
		p.logger.Debugw("Job done", "worker", id, "job", job.Name, "duration", time.Since(start))
		metrics.WarmupJobs.WithLabelValues("ok").Inc()
	}
}
