package executor

import (
	"context"
	"fmt"

	"github.com/viant/stepflow/model"
)

// LLM is a deterministic stand-in for a language model executor. It echoes
// the request input back in a canned result so that workflows can be built
// and exercised end to end before a real model integration exists.
type LLM struct{}

// NewLLM creates the stand-in executor.
func NewLLM() *LLM { return &LLM{} }

// Execute synthesizes a canned response for the step.
func (e *LLM) Execute(ctx context.Context, request *model.StepRequest) (*model.StepResponse, error) {
	message := fmt.Sprintf("%s :: synthesized response", request.Name)
	return &model.StepResponse{
		Status: model.StatusOK,
		Result: map[string]interface{}{
			"message": message,
			"echo":    request.Input,
		},
		Quality: "good",
	}, nil
}
