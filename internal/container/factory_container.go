package container

import (
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/component"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/errors"
)

// FactorySource is the factory surface exposed alongside plain service
// resolution. Unlike the raw registry, a missing factory here is an
// error: at this level the caller needs the factory to proceed.
type FactorySource interface {
	RegisterFactory(f component.Factory) error
	GetFactory(componentType, factoryID string) (component.Factory, error)
	FactoriesForType(componentType string) []component.Factory
}

// FactoryContainer composes a ServiceContainer, a FactoryRegistry, and
// the error handler behind one abstraction. Plain operations delegate
// unchanged; factory operations layer centralized error reporting on
// top. Failures are observed and re-raised, never swallowed.
type FactoryContainer struct {
	services  *ServiceContainer
	factories *FactoryRegistry
	errors    *errors.Handler
}

// NewFactoryContainer wires the three collaborators together. They are
// created once at bootstrap and shared for the process lifetime.
func NewFactoryContainer(services *ServiceContainer, factories *FactoryRegistry, handler *errors.Handler) *FactoryContainer {
	return &FactoryContainer{
		services:  services,
		factories: factories,
		errors:    handler,
	}
}

// Register delegates to the wrapped service container.
func (c *FactoryContainer) Register(id string, instance any) {
	c.services.Register(id, instance)
}

// Get delegates to the wrapped service container.
func (c *FactoryContainer) Get(id string) (any, error) {
	return c.services.Get(id)
}

// Has delegates to the wrapped service container.
func (c *FactoryContainer) Has(id string) bool {
	return c.services.Has(id)
}

// RegisterFactory delegates to the factory registry. A failed
// registration is reported through the error handler for visibility and
// then returned to the caller unchanged.
func (c *FactoryContainer) RegisterFactory(f component.Factory) error {
	err := c.factories.RegisterFactory(f)
	if err == nil {
		return nil
	}
	details := map[string]any{}
	if f != nil {
		details["component_type"] = f.ComponentType()
		details["factory_id"] = f.FactoryID()
	}
	c.errors.CreateAndHandle(errors.CategoryFactoryRegistration, err.Error(), details)
	return err
}

// GetFactory performs the exact lookup. A miss blocks the caller's
// intended operation, so the registry's silent not-found is promoted to
// a factory-category error, reported once, and returned.
func (c *FactoryContainer) GetFactory(componentType, factoryID string) (component.Factory, error) {
	if f, ok := c.factories.GetFactory(componentType, factoryID); ok {
		return f, nil
	}
	e := errors.Newf(errors.CategoryFactory, "no factory registered for %s/%s", componentType, factoryID).
		WithDetail("component_type", componentType).
		WithDetail("factory_id", factoryID)
	c.errors.Handle(e)
	return nil, e
}

// FactoriesForType delegates to the registry. An empty result is valid.
func (c *FactoryContainer) FactoriesForType(componentType string) []component.Factory {
	return c.factories.FactoriesForType(componentType)
}

// Types delegates to the registry.
func (c *FactoryContainer) Types() []string {
	return c.factories.Types()
}

// CreateComponent resolves the factory for the pair and builds a
// component from cfg. Creation failures are reported as
// component-creation errors and returned.
func (c *FactoryContainer) CreateComponent(componentType, factoryID string, cfg component.Config) (any, error) {
	f, err := c.GetFactory(componentType, factoryID)
	if err != nil {
		return nil, err
	}
	instance, err := f.Create(cfg)
	if err != nil {
		e := errors.Wrap(errors.CategoryComponentCreation, err, "component creation failed").
			WithDetail("component_type", componentType).
			WithDetail("factory_id", factoryID)
		c.errors.Handle(e)
		return nil, e
	}
	return instance, nil
}

// Stats aggregates container and registry statistics.
func (c *FactoryContainer) Stats() map[string]any {
	stats := c.factories.Stats()
	stats["total_services"] = c.services.Len()
	return stats
}
