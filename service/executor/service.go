package executor

import (
	"context"

	"github.com/viant/stepflow/model"
)

// Service performs a single workflow step. Execute is synchronous and
// blocking; there is no streaming or partial-result contract. A non-nil
// error signals an infrastructure or configuration failure, whereas a step
// that ran but did not succeed reports model.StatusFail in the response.
type Service interface {
	Execute(ctx context.Context, request *model.StepRequest) (*model.StepResponse, error)
}
