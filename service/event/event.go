// Package event publishes step lifecycle notifications onto a messaging
// queue. The orchestrator stays unaware of the bus: the Observer adapter
// implements the observer hooks and forwards them as events, so publication
// is a pure side effect that can never alter dispatch.
package event

import (
	"time"

	"github.com/viant/stepflow/internal/clock"
	"github.com/viant/stepflow/internal/idgen"
	"github.com/viant/stepflow/model"
)

// Phase names a point in the step lifecycle.
type Phase string

const (
	// PhaseStarted is emitted before a step executes.
	PhaseStarted Phase = "started"
	// PhaseCompleted is emitted after a step completes successfully.
	PhaseCompleted Phase = "completed"
	// PhaseFailed is emitted when a step reports a failure.
	PhaseFailed Phase = "failed"
)

// Event wraps a payload with delivery metadata.
type Event[T any] struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Data      T         `json:"data"`
}

// New creates an event for the supplied payload.
func New[T any](data T) *Event[T] {
	return &Event[T]{
		ID:        idgen.New(),
		CreatedAt: clock.Now(),
		Data:      data,
	}
}

// StepEvent describes one lifecycle transition of a workflow step.
type StepEvent struct {
	Phase         Phase        `json:"phase"`
	CorrelationID string       `json:"correlationID"`
	StepID        int          `json:"stepID"`
	Name          string       `json:"name"`
	Kind          model.Kind   `json:"kind"`
	Status        model.Status `json:"status,omitempty"`
	Error         string       `json:"error,omitempty"`
}
