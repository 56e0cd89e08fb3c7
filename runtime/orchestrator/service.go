package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/stepflow/internal/idgen"
	"github.com/viant/stepflow/model"
	"github.com/viant/stepflow/runtime/evaluator"
	"github.com/viant/stepflow/service/executor"
	"github.com/viant/stepflow/service/memory"
	"github.com/viant/stepflow/tracing"
	"github.com/viant/toolbox"
)

// Service runs one workflow from its first step to completion. Steps execute
// strictly one at a time; the successor of each step is decided only after
// its response arrives, so branches and next overrides always see the final
// outcome.
type Service struct {
	workflow  *model.Workflow
	registry  *executor.Registry
	executors map[model.Kind]executor.Service
	observer  Observer
	memory    *memory.Service
	evaluator *evaluator.Evaluator
	config    Config
}

// New creates an orchestrator for the supplied workflow. Without options the
// orchestrator uses the default registry, which resolves only the LLM kind.
func New(workflow *model.Workflow, options ...Option) (*Service, error) {
	if workflow == nil {
		return nil, fmt.Errorf("workflow was empty")
	}
	if issues := workflow.Validate(); len(issues) > 0 {
		return nil, issues[0]
	}
	service := &Service{
		workflow:  workflow,
		evaluator: evaluator.New(),
		config:    DefaultConfig(),
	}
	for _, option := range options {
		option(service)
	}
	if err := service.config.Validate(); err != nil {
		return nil, err
	}
	if service.registry == nil {
		service.registry = executor.Default()
	}
	for kind, exec := range service.executors {
		if err := service.registry.RegisterInstance(kind, exec, true); err != nil {
			return nil, err
		}
	}
	if !service.registry.IsRegistered(model.KindLLM) {
		_ = service.registry.RegisterSingleton(model.KindLLM, func(*executor.Registry) executor.Service {
			return executor.NewLLM()
		}, false)
	}
	if service.memory == nil {
		service.memory = memory.New(nil)
	}
	return service, nil
}

// Workflow returns the workflow this orchestrator runs.
func (s *Service) Workflow() *model.Workflow { return s.workflow }

// Run executes the workflow and returns the final response of every step
// that ran, in execution order. A failed step ends the run with a nil error;
// the failure lives in the response and in the memory log. A non-nil error
// means the run could not proceed: no executor for a kind, an executor
// infrastructure error, an invalid response or an unknown jump target. In
// the error case memory holds only the steps completed before the error.
func (s *Service) Run(ctx context.Context) ([]*model.StepResponse, error) {
	runID := idgen.New()
	responses := make([]*model.StepResponse, 0, len(s.workflow.Steps))
	visits := make(map[int]int, len(s.workflow.Steps))

	index := 0
	for index < len(s.workflow.Steps) {
		step := s.workflow.Steps[index]
		visits[step.ID]++
		if visits[step.ID] > s.config.MaxVisits {
			return responses, fmt.Errorf("step %q exceeded %d visits, aborting run", step.Name, s.config.MaxVisits)
		}

		response, request, err := s.runStep(ctx, &step, runID)
		if err != nil {
			return responses, err
		}
		responses = append(responses, response)

		if response.Status == model.StatusFail {
			s.notifyError(request, response)
			if err = s.memory.Append(ctx, s.workflow.MemoryFile, failureLine(step.Name, response)); err != nil {
				return responses, err
			}
			return responses, nil
		}

		s.notifyFinish(request, response)
		if err = s.memory.Append(ctx, s.workflow.MemoryFile, summaryLine(step.Name, response)); err != nil {
			return responses, err
		}

		if index, err = s.successor(index, &step, response); err != nil {
			return responses, err
		}
	}
	return responses, nil
}

// runStep executes one step, re-executing on a retry status until the retry
// budget runs out. Each attempt reads memory afresh so retried steps observe
// the latest log.
func (s *Service) runStep(ctx context.Context, step *model.Step, runID string) (*model.StepResponse, *model.StepRequest, error) {
	var request *model.StepRequest
	for attempt := 0; ; attempt++ {
		memoryText, err := s.memory.Read(ctx, s.workflow.MemoryFile)
		if err != nil {
			return nil, request, err
		}
		request = &model.StepRequest{
			StepID:        step.ID,
			Name:          step.Name,
			Kind:          step.Kind,
			CorrelationID: fmt.Sprintf("step-%d-%s", step.ID, runID),
			Input:         step.InputTemplate,
			MemoryText:    memoryText,
			Config:        step.Config,
		}
		s.notifyStart(request)

		service, err := s.registry.Lookup(step.Kind)
		if err != nil {
			return nil, request, err
		}

		spanCtx, span := tracing.StartSpan(ctx, "orchestrator.step/"+step.Name, "INTERNAL")
		span.WithAttributes(map[string]string{
			"step.kind":      step.Kind.String(),
			"correlation.id": request.CorrelationID,
		})
		response, err := service.Execute(spanCtx, request)
		tracing.EndSpan(span, err)
		if err != nil {
			return nil, request, fmt.Errorf("step %q failed: %w", step.Name, err)
		}
		if err = response.Validate(); err != nil {
			return nil, request, fmt.Errorf("step %q returned invalid response: %w", step.Name, err)
		}
		if response.Status != model.StatusRetry {
			return response, request, nil
		}
		if attempt >= s.config.MaxStepRetries {
			exhausted := *response
			exhausted.Status = model.StatusFail
			if exhausted.Error == "" {
				exhausted.Error = fmt.Sprintf("retry limit reached after %d attempts", attempt+1)
			}
			return &exhausted, request, nil
		}
		if s.config.RetryDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, request, ctx.Err()
			case <-time.After(s.config.RetryDelay):
			}
		}
	}
}

// successor decides which step runs next: the first matching branch wins,
// then a response next override, then the step's static next, and finally
// the following step in declaration order.
func (s *Service) successor(index int, step *model.Step, response *model.StepResponse) (int, error) {
	variables := map[string]interface{}{
		"status":  string(response.Status),
		"quality": response.Quality,
		"error":   response.Error,
		"result":  response.Result,
	}
	for _, branch := range step.Branches {
		matched, err := s.evaluator.Evaluate(branch.When, variables)
		if err != nil {
			return 0, fmt.Errorf("step %q: %w", step.Name, err)
		}
		if matched {
			return s.indexOf(branch.Goto, step.Name)
		}
	}
	if response.NextStep != 0 {
		return s.indexOf(response.NextStep, step.Name)
	}
	if step.NextStep != 0 {
		return s.indexOf(step.NextStep, step.Name)
	}
	return index + 1, nil
}

func (s *Service) indexOf(stepID int, from string) (int, error) {
	for i, step := range s.workflow.Steps {
		if step.ID == stepID {
			return i, nil
		}
	}
	return 0, fmt.Errorf("step %q jumps to unknown step %d", from, stepID)
}

func (s *Service) notifyStart(request *model.StepRequest) {
	if s.observer != nil {
		s.observer.OnStepStart(request)
	}
}

func (s *Service) notifyFinish(request *model.StepRequest, response *model.StepResponse) {
	if s.observer != nil {
		s.observer.OnStepFinish(request, response)
	}
}

func (s *Service) notifyError(request *model.StepRequest, response *model.StepResponse) {
	if s.observer != nil {
		s.observer.OnStepError(request, response)
	}
}

// summaryLine renders the one-line memory entry of a successful step. A
// result carrying a message key contributes that message; any other result
// is rendered verbatim.
func summaryLine(name string, response *model.StepResponse) string {
	message := ""
	if result, ok := response.Result.(map[string]interface{}); ok {
		if value, has := result["message"]; has && value != nil {
			message = toolbox.AsString(value)
		}
	}
	if message == "" && response.Result != nil {
		message = toolbox.AsString(response.Result)
	}
	return fmt.Sprintf("- %s: %s", name, message)
}

func failureLine(name string, response *model.StepResponse) string {
	detail := response.Error
	if detail == "" {
		detail = "unknown error"
	}
	return fmt.Sprintf("- %s: failed (%s)", name, detail)
}
