package mail

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Common errors returned by the JobQueue
var (
	ErrQueueClosed = errors.New("mail queue is closed")
	ErrQueueFull   = errors.New("mail queue is full")
)

// JobQueue is a bounded buffer between notification dispatch and the mail
// workers. Enqueue never blocks: when the buffer is full the new job is
// rejected so request latency stays flat under mail backlog.
type JobQueue struct {
	jobs   chan Job
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewJobQueue creates a new mail queue with the specified buffer size.
func NewJobQueue(size int, logger *slog.Logger) *JobQueue {
	return &JobQueue{
		jobs:   make(chan Job, size),
		logger: logger,
	}
}

// Enqueue adds a job to the queue for delivery.
// Returns ErrQueueFull or ErrQueueClosed if the job cannot be accepted.
func (q *JobQueue) Enqueue(job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		mailEnqueueRejected.Inc()
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		q.logger.Debug("mail job enqueued",
			"to", job.To,
			"queue_len", len(q.jobs),
			"queue_cap", cap(q.jobs))
		return nil
	default:
		mailEnqueueRejected.Inc()
		return fmt.Errorf("%w: queue capacity %d reached", ErrQueueFull, cap(q.jobs))
	}
}

// Close closes the queue, preventing further submissions. Jobs already
// buffered remain available to the workers.
func (q *JobQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.jobs)
		q.logger.Info("mail queue closed")
	}
}

// GetChannel returns a read-only channel for consuming jobs.
func (q *JobQueue) GetChannel() <-chan Job {
	return q.jobs
}
