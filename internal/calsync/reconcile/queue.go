package reconcile

import (
	"context"
	"log/slog"
	"sync"
)

const (
	DefaultQueueSize    = 64
	DefaultQueueWorkers = 2
)

type batchProcessor interface {
	ProcessBatch(ctx context.Context, batch []Notification) []Outcome
}

type job struct {
	ctx   context.Context
	batch []Notification
}

// Queue runs notification batches on a fixed pool of workers, so a webhook
// delivery can be acknowledged before any provider round trip happens.
type Queue struct {
	log       *slog.Logger
	processor batchProcessor
	size      int
	workers   int

	mu   sync.RWMutex
	jobs chan job
	wg   sync.WaitGroup
}

func NewQueue(log *slog.Logger, processor batchProcessor, size, workers int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if workers <= 0 {
		workers = DefaultQueueWorkers
	}

	return &Queue{
		log:       log.With(slog.String("op", "calsync.reconcile.Queue")),
		processor: processor,
		size:      size,
		workers:   workers,
	}
}

// Start launches the workers. Calling Start on a running Queue does nothing.
func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.jobs != nil {
		return
	}

	q.jobs = make(chan job, q.size)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.work(q.jobs)
	}

	q.log.Info("notification queue started", slog.Int("size", q.size), slog.Int("workers", q.workers))
}

// Enqueue hands the batch over without blocking. It reports false when the
// queue is full or not running. The batch keeps ctx values but not its
// cancellation.
func (q *Queue) Enqueue(ctx context.Context, batch []Notification) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.jobs == nil {
		return false
	}

	select {
	case q.jobs <- job{ctx: context.WithoutCancel(ctx), batch: batch}:
		return true
	default:
		return false
	}
}

// Stop refuses new batches and waits for the queued ones to finish.
func (q *Queue) Stop() {
	q.mu.Lock()
	jobs := q.jobs
	q.jobs = nil
	q.mu.Unlock()

	if jobs == nil {
		return
	}

	close(jobs)
	q.wg.Wait()

	q.log.Info("notification queue stopped")
}

func (q *Queue) work(jobs <-chan job) {
	defer q.wg.Done()

	for j := range jobs {
		outcomes := q.processor.ProcessBatch(j.ctx, j.batch)

		counts := make(map[Outcome]int, len(outcomes))
		for _, o := range outcomes {
			counts[o]++
		}

		q.log.Info("notification batch processed",
			slog.Int("notifications", len(j.batch)),
			slog.Any("outcomes", counts),
		)
	}
}
