// Package container provides service resolution and component-factory
// registration for the content hub.
//
// ServiceContainer is a locator for pre-constructed instances keyed by
// string identifiers. FactoryRegistry holds component factories keyed
// by (component type, factory ID) pairs. FactoryContainer composes the
// two with the error handler so feature code can depend on a single
// abstraction for both plain services and factory-built components.
//
// The two registries deliberately differ on duplicates: re-registering
// a service silently overwrites, while re-registering a factory pair is
// rejected. Factories are addressed exactly by their pair, and a silent
// clobber would desynchronize unrelated call sites.
package container
