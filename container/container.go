// Package container provides a minimal keyed service container with three
// provider lifetimes: per-resolution factories, lazily built singletons and
// pre-built instances. The executor registry is layered on top of it.
package container

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrAlreadyRegistered is returned when a key is registered twice
	// without override.
	ErrAlreadyRegistered = errors.New("container: already registered")

	// ErrNotRegistered is returned when resolving an unknown key.
	ErrNotRegistered = errors.New("container: not registered")
)

// Factory builds a service instance on demand. It receives the owning
// container so that providers can resolve their own dependencies.
type Factory func(container *Container) interface{}

type provider struct {
	factory   Factory
	singleton bool
}

// Container maps keys to providers and caches singleton values. It is safe
// for concurrent use; resolution of a singleton is serialized so that the
// factory runs at most once per registration.
type Container struct {
	mux        sync.RWMutex
	providers  map[string]*provider
	singletons map[string]interface{}
}

// New creates an empty container.
func New() *Container {
	return &Container{
		providers:  make(map[string]*provider),
		singletons: make(map[string]interface{}),
	}
}

// RegisterFactory registers factory to produce a fresh value on every
// resolution of key.
func (c *Container) RegisterFactory(key string, factory Factory, override bool) error {
	return c.setProvider(key, &provider{factory: factory}, override)
}

// RegisterSingleton registers factory whose first result is cached and
// returned on all subsequent resolutions of key.
func (c *Container) RegisterSingleton(key string, factory Factory, override bool) error {
	return c.setProvider(key, &provider{factory: factory, singleton: true}, override)
}

// RegisterInstance registers a pre-built value as an already resolved
// singleton for key.
func (c *Container) RegisterInstance(key string, instance interface{}, override bool) error {
	c.mux.Lock()
	defer c.mux.Unlock()
	if !override && c.isRegistered(key) {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, key)
	}
	delete(c.providers, key)
	c.singletons[key] = instance
	return nil
}

// Resolve returns the value associated with key: the cached singleton when
// present, otherwise the factory result (cached when singleton-registered).
func (c *Container) Resolve(key string) (interface{}, error) {
	c.mux.RLock()
	if instance, ok := c.singletons[key]; ok {
		c.mux.RUnlock()
		return instance, nil
	}
	p, ok := c.providers[key]
	c.mux.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, key)
	}
	if !p.singleton {
		return p.factory(c), nil
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	if instance, ok := c.singletons[key]; ok {
		return instance, nil
	}
	// The provider may have been replaced or removed between the two locks.
	if current, ok := c.providers[key]; !ok || current != p {
		if current == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotRegistered, key)
		}
		p = current
	}
	instance := p.factory(c)
	c.singletons[key] = instance
	return instance, nil
}

// IsRegistered reports whether key has a provider or a cached value.
func (c *Container) IsRegistered(key string) bool {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.isRegistered(key)
}

// ClearSingletons discards cached singleton values while keeping provider
// registrations, so that tests can force deterministic re-resolution.
// Instance registrations have no provider and therefore survive.
func (c *Container) ClearSingletons() {
	c.mux.Lock()
	defer c.mux.Unlock()
	for key := range c.singletons {
		if _, ok := c.providers[key]; ok {
			delete(c.singletons, key)
		}
	}
}

func (c *Container) setProvider(key string, p *provider, override bool) error {
	c.mux.Lock()
	defer c.mux.Unlock()
	if !override && c.isRegistered(key) {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, key)
	}
	delete(c.singletons, key)
	c.providers[key] = p
	return nil
}

func (c *Container) isRegistered(key string) bool {
	if _, ok := c.providers[key]; ok {
		return true
	}
	_, ok := c.singletons[key]
	return ok
}
