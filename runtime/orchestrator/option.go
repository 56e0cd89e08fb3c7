package orchestrator

import (
	"github.com/viant/afs"
	"github.com/viant/stepflow/model"
	"github.com/viant/stepflow/service/executor"
	"github.com/viant/stepflow/service/memory"
)

// Option customises the orchestrator.
type Option func(*Service)

// WithObserver attaches a step lifecycle observer.
func WithObserver(observer Observer) Option {
	return func(s *Service) { s.observer = observer }
}

// WithRegistry supplies the executor registry to resolve step kinds from.
func WithRegistry(registry *executor.Registry) Option {
	return func(s *Service) { s.registry = registry }
}

// WithExecutors overrides individual step kinds with pre-built executors,
// taking precedence over whatever the registry already holds.
func WithExecutors(executors map[model.Kind]executor.Service) Option {
	return func(s *Service) { s.executors = executors }
}

// WithConfig overrides the default configuration.
func WithConfig(config Config) Option {
	return func(s *Service) { s.config = config }
}

// WithMemoryService supplies the memory log service.
func WithMemoryService(service *memory.Service) Option {
	return func(s *Service) { s.memory = service }
}

// WithFS backs the memory log with the supplied afs service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.memory = memory.New(fs) }
}
