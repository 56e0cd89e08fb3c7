package executor

import (
	"errors"
	"fmt"

	"github.com/viant/stepflow/container"
	"github.com/viant/stepflow/model"
)

const keyNamespace = "executor"

// Factory builds an executor on demand; it receives the owning registry so
// that executors can resolve collaborators of their own.
type Factory func(registry *Registry) Service

// Registry resolves executors by step kind. It namespaces kind keys inside a
// generic container so that the same container can host unrelated services,
// and translates container misses into a kind-specific error.
type Registry struct {
	container *container.Container
}

// NewRegistry creates an empty registry backed by the supplied container;
// a nil container gets a fresh one.
func NewRegistry(c *container.Container) *Registry {
	if c == nil {
		c = container.New()
	}
	return &Registry{container: c}
}

// Default creates a registry pre-seeded with exactly one registration: the
// deterministic LLM stand-in.
func Default() *Registry {
	registry := NewRegistry(nil)
	_ = registry.RegisterSingleton(model.KindLLM, func(*Registry) Service { return NewLLM() }, false)
	return registry
}

// Container exposes the underlying container for advanced configuration.
func (r *Registry) Container() *container.Container { return r.container }

// RegisterFactory registers factory to create a fresh executor for kind on
// every resolution.
func (r *Registry) RegisterFactory(kind model.Kind, factory Factory, override bool) error {
	return r.container.RegisterFactory(key(kind), r.adapt(factory), override)
}

// RegisterSingleton registers factory whose result is cached and reused for
// kind.
func (r *Registry) RegisterSingleton(kind model.Kind, factory Factory, override bool) error {
	return r.container.RegisterSingleton(key(kind), r.adapt(factory), override)
}

// RegisterInstance registers a pre-built executor for kind.
func (r *Registry) RegisterInstance(kind model.Kind, service Service, override bool) error {
	return r.container.RegisterInstance(key(kind), service, override)
}

// Lookup returns the executor registered for kind.
func (r *Registry) Lookup(kind model.Kind) (Service, error) {
	resolved, err := r.container.Resolve(key(kind))
	if err != nil {
		if errors.Is(err, container.ErrNotRegistered) {
			return nil, fmt.Errorf("%w for step kind %q", ErrNoExecutor, kind)
		}
		return nil, err
	}
	service, ok := resolved.(Service)
	if !ok {
		return nil, fmt.Errorf("registered provider for step kind %q is not an executor: %T", kind, resolved)
	}
	return service, nil
}

// ClearSingletons discards cached singleton executors while keeping their
// registrations, forcing re-resolution on next lookup.
func (r *Registry) ClearSingletons() {
	r.container.ClearSingletons()
}

// IsRegistered reports whether an executor is registered for kind.
func (r *Registry) IsRegistered(kind model.Kind) bool {
	return r.container.IsRegistered(key(kind))
}

func (r *Registry) adapt(factory Factory) container.Factory {
	return func(*container.Container) interface{} {
		return factory(r)
	}
}

func key(kind model.Kind) string {
	return keyNamespace + ":" + kind.String()
}
