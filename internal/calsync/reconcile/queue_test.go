package reconcile

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roomBooker/internal/lib/logger/handlers/slogdiscard"
)

type ctxKey struct{}

type blockingProcessor struct {
	release   chan struct{}
	processed atomic.Int32
	sawValue  atomic.Bool
	cancelled atomic.Bool
}

func (p *blockingProcessor) ProcessBatch(ctx context.Context, batch []Notification) []Outcome {
	<-p.release
	if ctx.Value(ctxKey{}) == "req-1" {
		p.sawValue.Store(true)
	}
	if ctx.Err() != nil {
		p.cancelled.Store(true)
	}
	p.processed.Add(int32(len(batch)))
	return make([]Outcome, len(batch))
}

func TestQueueRunsBatchesDetachedFromRequest(t *testing.T) {
	t.Parallel()

	p := &blockingProcessor{release: make(chan struct{})}
	q := NewQueue(slogdiscard.NewDiscardLogger(), p, 4, 1)
	q.Start()

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "req-1"))
	assert.True(t, q.Enqueue(ctx, []Notification{{SubscriptionID: "S1"}}))
	cancel()

	close(p.release)
	assert.Eventually(t, func() bool { return p.processed.Load() == 1 }, time.Second, 5*time.Millisecond)

	q.Stop()

	assert.True(t, p.sawValue.Load())
	assert.False(t, p.cancelled.Load())
}

func TestQueueRejectsWhenFull(t *testing.T) {
	t.Parallel()

	p := &blockingProcessor{release: make(chan struct{})}
	q := NewQueue(slogdiscard.NewDiscardLogger(), p, 1, 1)
	q.Start()

	one := []Notification{{SubscriptionID: "S1"}}

	// The worker holds the first batch, the buffer holds the second.
	assert.True(t, q.Enqueue(context.Background(), one))
	assert.Eventually(t, func() bool { return q.Enqueue(context.Background(), one) }, time.Second, 5*time.Millisecond)
	assert.False(t, q.Enqueue(context.Background(), one))

	close(p.release)
	q.Stop()

	assert.Equal(t, int32(2), p.processed.Load())
}

func TestQueueStopDrainsAndRefuses(t *testing.T) {
	t.Parallel()

	p := &blockingProcessor{release: make(chan struct{})}
	close(p.release)

	q := NewQueue(slogdiscard.NewDiscardLogger(), p, 8, 2)

	assert.False(t, q.Enqueue(context.Background(), []Notification{{}}), "not started")

	q.Start()
	// A second Start is ignored.
	q.Start()

	for i := 0; i < 5; i++ {
		assert.True(t, q.Enqueue(context.Background(), []Notification{{}}))
	}

	q.Stop()
	assert.Equal(t, int32(5), p.processed.Load())

	assert.False(t, q.Enqueue(context.Background(), []Notification{{}}))

	// Stopping twice is safe.
	q.Stop()
}
