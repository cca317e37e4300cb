package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"ialynk-server/internal/observability"
)

var (
	ErrQueueFull       = errors.New("call event queue is full")
	ErrPublisherClosed = errors.New("call event publisher is closed")
)

// Sink is the blocking publisher drained by AsyncPublisher.
type Sink interface {
	Publish(ctx context.Context, event CallEvent) error
}

// AsyncPublisher queues events and publishes them from a single goroutine, so
// webhook responses never wait on the broker. Queue order is publish order.
type AsyncPublisher struct {
	sink    Sink
	timeout time.Duration
	logger  *observability.Logger

	queue chan queuedEvent
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

type queuedEvent struct {
	ctx   context.Context
	event CallEvent
}

func NewAsyncPublisher(sink Sink, size int, timeout time.Duration, logger *observability.Logger) *AsyncPublisher {
	if size <= 0 {
		size = 1
	}
	p := &AsyncPublisher{
		sink:    sink,
		timeout: timeout,
		logger:  logger,
		queue:   make(chan queuedEvent, size),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish enqueues the event without blocking. The event is stamped now so the
// broker sees the time the call changed, not the time it was drained.
func (p *AsyncPublisher) Publish(ctx context.Context, event CallEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *AsyncPublisher) run() {
	defer close(p.done)
	for item := range p.queue {
		ctx, cancel := context.WithTimeout(item.ctx, p.timeout)
		if err := p.sink.Publish(ctx, item.event); err != nil {
			p.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "call_id", Value: item.event.CallID},
				observability.Field{Key: "event_type", Value: item.event.Type},
			), "failed to publish queued call event", err)
		}
		cancel()
	}
}

// Close stops accepting events and waits for the queue to drain.
func (p *AsyncPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	return nil
}
