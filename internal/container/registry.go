package container

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/component"
)

// ErrDuplicateFactory indicates a registration for a (component type,
// factory ID) pair that already exists.
var ErrDuplicateFactory = stderrors.New("factory already registered")

type factoryKey struct {
	componentType string
	factoryID     string
}

// FactoryRegistry holds component factories. Each (component type,
// factory ID) pair is unique; a type can carry any number of factories,
// kept in registration order.
type FactoryRegistry struct {
	mu     sync.RWMutex
	byType map[string][]component.Factory
	index  map[factoryKey]component.Factory
}

// NewFactoryRegistry creates an empty factory registry.
func NewFactoryRegistry() *FactoryRegistry {
	return &FactoryRegistry{
		byType: make(map[string][]component.Factory),
		index:  make(map[factoryKey]component.Factory),
	}
}

// RegisterFactory adds f under its own declared type and ID. A
// duplicate pair fails with ErrDuplicateFactory and leaves the existing
// registration untouched.
func (r *FactoryRegistry) RegisterFactory(f component.Factory) error {
	if f == nil {
		return fmt.Errorf("factory is nil")
	}
	key := factoryKey{componentType: f.ComponentType(), factoryID: f.FactoryID()}
	if key.componentType == "" {
		return fmt.Errorf("factory component type is empty")
	}
	if key.factoryID == "" {
		return fmt.Errorf("factory ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[key]; exists {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateFactory, key.componentType, key.factoryID)
	}
	r.index[key] = f
	r.byType[key.componentType] = append(r.byType[key.componentType], f)
	return nil
}

// GetFactory looks up the exact (component type, factory ID) pair.
// Absence is a non-exceptional outcome at this layer and is reported
// through the boolean, not an error.
func (r *FactoryRegistry) GetFactory(componentType, factoryID string) (component.Factory, bool) {
	r.mu.RLock()
	f, ok := r.index[factoryKey{componentType: componentType, factoryID: factoryID}]
	r.mu.RUnlock()
	return f, ok
}

// FactoriesForType returns all factories registered for componentType
// in registration order. The order gives callers a stable default when
// several implementations exist: the first one registered.
func (r *FactoryRegistry) FactoriesForType(componentType string) []component.Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factories := r.byType[componentType]
	out := make([]component.Factory, len(factories))
	copy(out, factories)
	return out
}

// Types returns the component types with at least one factory.
func (r *FactoryRegistry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	return types
}

// Stats returns registry statistics for the health endpoint.
func (r *FactoryRegistry) Stats() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	perType := make(map[string]int, len(r.byType))
	for t, factories := range r.byType {
		perType[t] = len(factories)
	}
	return map[string]any{
		"total_factories": len(r.index),
		"component_types": perType,
	}
}
