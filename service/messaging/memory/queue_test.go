package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Value string
}

func TestQueuePublishConsume(t *testing.T) {
	ctx := context.Background()
	queue := NewQueue[payload](DefaultConfig())

	assert.NoError(t, queue.Publish(ctx, &payload{Value: "first"}))
	assert.NoError(t, queue.Publish(ctx, &payload{Value: "second"}))
	assert.Equal(t, 2, queue.Size())

	msg, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "first", msg.T().Value)
	assert.NoError(t, msg.Ack())
	assert.Error(t, msg.Ack())

	msg, err = queue.Consume(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "second", msg.T().Value)
	assert.NoError(t, msg.Nack(nil))
	assert.Equal(t, 0, queue.Size())
}

func TestQueueConsumeHonorsContext(t *testing.T) {
	queue := NewQueue[payload](Config{QueueBuffer: 1})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := queue.Consume(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
