package mail

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// sendTimeout bounds a single SMTP delivery attempt.
const sendTimeout = 30 * time.Second

// WorkerPool drains a JobQueue with a fixed number of workers, sending each
// job through the configured Transport. Failed sends are logged and dropped.
type WorkerPool struct {
	queue      *JobQueue
	transport  Transport
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	count      int
	logger     *slog.Logger
}

// NewWorkerPool creates a worker pool consuming from queue. count workers
// are started by Start; count must be at least 1.
func NewWorkerPool(queue *JobQueue, transport Transport, count int, logger *slog.Logger) *WorkerPool {
	if count < 1 {
		count = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		queue:      queue,
		transport:  transport,
		ctx:        ctx,
		cancelFunc: cancel,
		count:      count,
		logger:     logger,
	}
}

// Start launches the worker goroutines.
func (p *WorkerPool) Start() {
	for i := 0; i < p.count; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.logger.Info("mail worker pool started", "worker_count", p.count)
}

// Stop closes the queue, waits for buffered jobs to drain, then stops the
// workers. Safe to call once during shutdown.
func (p *WorkerPool) Stop() {
	p.queue.Close()
	p.wg.Wait()
	p.cancelFunc()
	p.logger.Info("mail worker pool stopped")
}

// worker delivers jobs from the queue until it is closed and drained.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	p.logger.Debug("starting mail worker", "worker_id", id)

	for job := range p.queue.GetChannel() {
		p.deliver(job, id)
	}

	p.logger.Debug("mail queue drained, stopping worker", "worker_id", id)
}

// deliver sends one job. Delivery failures are terminal: the job is logged
// and dropped so a bad address or flaky relay never wedges the queue.
func (p *WorkerPool) deliver(job Job, workerID int) {
	ctx, cancel := context.WithTimeout(p.ctx, sendTimeout)
	defer cancel()

	start := time.Now()
	err := p.transport.Send(ctx, job.To, Subject, job.Body)
	elapsed := time.Since(start)

	if err != nil {
		mailSendFailures.Inc()
		p.logger.Error("mail delivery failed",
			"worker_id", workerID,
			"to", job.To,
			"elapsed_ms", elapsed.Milliseconds(),
			"error", err)
		return
	}

	mailSendTotal.Inc()
	p.logger.Debug("mail delivered",
		"worker_id", workerID,
		"to", job.To,
		"elapsed_ms", elapsed.Milliseconds())
}
