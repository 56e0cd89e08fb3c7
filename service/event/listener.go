package event

import (
	"context"
	"log"
)

// Listener consumes events from a publisher's queue on a background
// goroutine and hands them to a handler.
type Listener[T any] struct {
	publisher *Publisher[T]
	handler   func(*Event[T])
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewListener creates a stopped listener; call Start to begin consuming.
func NewListener[T any](publisher *Publisher[T], handler func(*Event[T])) *Listener[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Listener[T]{
		publisher: publisher,
		handler:   handler,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start begins consuming events until Stop is called.
func (l *Listener[T]) Start() {
	go func() {
		for {
			event, err := l.publisher.Consume(l.ctx)
			if err != nil {
				if l.ctx.Err() != nil {
					return
				}
				log.Printf("failed to consume event: %v", err)
				continue
			}
			if event != nil {
				l.handler(event)
			}
		}
	}()
}

// Stop terminates the consuming goroutine.
func (l *Listener[T]) Stop() {
	l.cancel()
}
