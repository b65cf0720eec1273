package container

import (
	stderrors "errors"
	"fmt"
	"sync"
)

// ErrNotRegistered indicates a service lookup for an unknown identifier.
var ErrNotRegistered = stderrors.New("service not registered")

// Container is the service-resolution surface feature code depends on.
type Container interface {
	Register(id string, instance any)
	Get(id string) (any, error)
	Has(id string) bool
}

// ServiceContainer maps string identifiers to already-constructed
// instances. It is a locator, not a builder: values are stored as-is
// and returned as-is. Type correctness is the caller's concern.
type ServiceContainer struct {
	mu       sync.RWMutex
	services map[string]any
}

// NewServiceContainer creates an empty service container.
func NewServiceContainer() *ServiceContainer {
	return &ServiceContainer{
		services: make(map[string]any),
	}
}

// Register stores instance under id. Registering an id that already
// exists overwrites the previous instance.
func (c *ServiceContainer) Register(id string, instance any) {
	c.mu.Lock()
	c.services[id] = instance
	c.mu.Unlock()
}

// Get returns the instance stored under id. A missing id fails with
// ErrNotRegistered; the message names the id.
func (c *ServiceContainer) Get(id string) (any, error) {
	c.mu.RLock()
	instance, ok := c.services[id]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, id)
	}
	return instance, nil
}

// Has reports whether id is registered. Pure predicate, never fails.
func (c *ServiceContainer) Has(id string) bool {
	c.mu.RLock()
	_, ok := c.services[id]
	c.mu.RUnlock()
	return ok
}

// Len returns the number of registered services.
func (c *ServiceContainer) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.services)
}
