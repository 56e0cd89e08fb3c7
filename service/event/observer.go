package event

import (
	"context"
	"log"

	"github.com/viant/stepflow/model"
)

// Observer adapts the orchestrator observer hooks into event publication.
// Publishing failures are logged and swallowed; observer hooks must not
// affect control flow.
type Observer struct {
	publisher *Publisher[StepEvent]
}

// NewObserver creates an observer publishing onto the supplied publisher;
// a nil publisher gets an in-memory one.
func NewObserver(publisher *Publisher[StepEvent]) *Observer {
	if publisher == nil {
		publisher = NewPublisher[StepEvent](nil)
	}
	return &Observer{publisher: publisher}
}

// Publisher exposes the underlying publisher so callers can consume the
// emitted events.
func (o *Observer) Publisher() *Publisher[StepEvent] { return o.publisher }

// OnStepStart publishes a started event.
func (o *Observer) OnStepStart(request *model.StepRequest) {
	o.publish(StepEvent{
		Phase:         PhaseStarted,
		CorrelationID: request.CorrelationID,
		StepID:        request.StepID,
		Name:          request.Name,
		Kind:          request.Kind,
	})
}

// OnStepFinish publishes a completed event.
func (o *Observer) OnStepFinish(request *model.StepRequest, response *model.StepResponse) {
	o.publish(StepEvent{
		Phase:         PhaseCompleted,
		CorrelationID: request.CorrelationID,
		StepID:        request.StepID,
		Name:          request.Name,
		Kind:          request.Kind,
		Status:        response.Status,
	})
}

// OnStepError publishes a failed event.
func (o *Observer) OnStepError(request *model.StepRequest, response *model.StepResponse) {
	o.publish(StepEvent{
		Phase:         PhaseFailed,
		CorrelationID: request.CorrelationID,
		StepID:        request.StepID,
		Name:          request.Name,
		Kind:          request.Kind,
		Status:        response.Status,
		Error:         response.Error,
	})
}

func (o *Observer) publish(payload StepEvent) {
	if err := o.publisher.Publish(context.Background(), New(payload)); err != nil {
		log.Printf("failed to publish step event: %v", err)
	}
}
