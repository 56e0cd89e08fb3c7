package executor

import (
	"context"
	"fmt"

	"github.com/viant/stepflow/model"
)

// Shell is a placeholder for a future shell command executor. Invoking it is
// a hard failure rather than a designed error path.
type Shell struct{}

// NewShell creates the placeholder shell executor.
func NewShell() *Shell { return &Shell{} }

// Execute always fails with ErrNotImplemented.
func (e *Shell) Execute(ctx context.Context, request *model.StepRequest) (*model.StepResponse, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, model.KindShell)
}

// Python is a placeholder for a future python script executor.
type Python struct{}

// NewPython creates the placeholder python executor.
func NewPython() *Python { return &Python{} }

// Execute always fails with ErrNotImplemented.
func (e *Python) Execute(ctx context.Context, request *model.StepRequest) (*model.StepResponse, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, model.KindPython)
}
