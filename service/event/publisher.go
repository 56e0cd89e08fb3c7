package event

import (
	"context"

	"github.com/viant/stepflow/service/messaging"
	"github.com/viant/stepflow/service/messaging/memory"
)

// Publisher publishes typed events onto a queue.
type Publisher[T any] struct {
	queue messaging.Queue[Event[T]]
}

// NewPublisher creates a publisher over the supplied queue; a nil queue gets
// an in-memory one with the default buffer.
func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	if queue == nil {
		queue = memory.NewQueue[Event[T]](memory.DefaultConfig())
	}
	return &Publisher[T]{queue: queue}
}

// Publish places the event on the queue.
func (p *Publisher[T]) Publish(ctx context.Context, event *Event[T]) error {
	return p.queue.Publish(ctx, event)
}

// Consume retrieves and acknowledges the next event.
func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}
