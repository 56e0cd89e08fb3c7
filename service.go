package stepflow

import (
	"context"

	"github.com/viant/afs"

	"github.com/viant/stepflow/builder"
	"github.com/viant/stepflow/model"
	"github.com/viant/stepflow/runtime/orchestrator"
	"github.com/viant/stepflow/service/dao/workflow"
	"github.com/viant/stepflow/service/executor"
	"github.com/viant/stepflow/service/memory"
	"github.com/viant/stepflow/template"
)

// Service is the high-level engine façade: it loads, stores, scaffolds and
// runs workflows with one shared configuration.
type Service struct {
	config    Config
	fs        afs.Service
	registry  *executor.Registry
	executors map[model.Kind]executor.Service
	observer  orchestrator.Observer
	dao       *workflow.Service
	memory    *memory.Service
}

// New creates an engine service.
func New(options ...Option) *Service {
	service := &Service{config: DefaultConfig()}
	for _, option := range options {
		option(service)
	}
	if service.fs == nil {
		service.fs = afs.New()
	}
	if service.registry == nil {
		service.registry = executor.Default()
	}
	service.dao = workflow.New(service.fs)
	service.memory = memory.New(service.fs)
	return service
}

// Config returns the engine configuration.
func (s *Service) Config() Config { return s.config }

// Registry returns the executor registry used by runs.
func (s *Service) Registry() *executor.Registry { return s.registry }

// NewBuilder returns a fresh workflow builder.
func (s *Service) NewBuilder() *builder.Builder { return builder.New() }

// LoadWorkflow reads and validates a workflow definition from URL.
func (s *Service) LoadWorkflow(ctx context.Context, URL string) (*model.Workflow, error) {
	return s.dao.Load(ctx, URL)
}

// SaveWorkflow serializes a workflow to URL as deterministic YAML.
func (s *Service) SaveWorkflow(ctx context.Context, URL string, aWorkflow *model.Workflow, options ...workflow.EncodeOption) error {
	return s.dao.Save(ctx, URL, aWorkflow, options...)
}

// CreateWorkflow scaffolds the named code writing workflow folder under the
// configured workflows base URL and returns its location.
func (s *Service) CreateWorkflow(ctx context.Context, name string) (string, error) {
	return template.CodeWorkflow(name).Scaffold(ctx, s.fs, s.config.WorkflowsBaseURL)
}

// Run executes the workflow and returns the final response of every step
// that ran. See orchestrator.Service.Run for the error contract.
func (s *Service) Run(ctx context.Context, aWorkflow *model.Workflow) ([]*model.StepResponse, error) {
	options := []orchestrator.Option{
		orchestrator.WithConfig(s.config.Orchestrator),
		orchestrator.WithRegistry(s.registry),
		orchestrator.WithMemoryService(s.memory),
	}
	if len(s.executors) > 0 {
		options = append(options, orchestrator.WithExecutors(s.executors))
	}
	if s.observer != nil {
		options = append(options, orchestrator.WithObserver(s.observer))
	}
	service, err := orchestrator.New(aWorkflow, options...)
	if err != nil {
		return nil, err
	}
	return service.Run(ctx)
}

// RunWorkflow loads the workflow at URL and executes it.
func (s *Service) RunWorkflow(ctx context.Context, URL string) ([]*model.StepResponse, error) {
	aWorkflow, err := s.LoadWorkflow(ctx, URL)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, aWorkflow)
}
