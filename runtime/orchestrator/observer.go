package orchestrator

import "github.com/viant/stepflow/model"

// Observer receives step lifecycle notifications. Implementations are pure
// side-effect consumers: they must not alter dispatch and callers may not
// assume they run.
type Observer interface {
	// OnStepStart is called before a step executes.
	OnStepStart(request *model.StepRequest)

	// OnStepFinish is called after a step completes successfully.
	OnStepFinish(request *model.StepRequest, response *model.StepResponse)

	// OnStepError is called when a step reports a failure.
	OnStepError(request *model.StepRequest, response *model.StepResponse)
}
