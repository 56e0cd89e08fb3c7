package stepflow

import (
	"github.com/viant/afs"
	"github.com/viant/stepflow/model"
	"github.com/viant/stepflow/runtime/orchestrator"
	"github.com/viant/stepflow/service/executor"
)

// Option customises the engine service.
type Option func(*Service)

// WithConfig overrides the default engine configuration.
func WithConfig(config Config) Option {
	return func(s *Service) { s.config = config }
}

// WithRegistry supplies the executor registry used by runs.
func WithRegistry(registry *executor.Registry) Option {
	return func(s *Service) { s.registry = registry }
}

// WithExecutors overrides individual step kinds with pre-built executors.
func WithExecutors(executors map[model.Kind]executor.Service) Option {
	return func(s *Service) { s.executors = executors }
}

// WithObserver attaches a step lifecycle observer to every run.
func WithObserver(observer orchestrator.Observer) Option {
	return func(s *Service) { s.observer = observer }
}

// WithFS backs workflow storage and memory logs with the supplied afs
// service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}
