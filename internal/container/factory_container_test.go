package container

import (
	stderrors "errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/component"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/errors"
)

func newTestFactoryContainer(t *testing.T) (*FactoryContainer, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	handler := errors.NewHandler(zap.New(core))
	return NewFactoryContainer(NewServiceContainer(), NewFactoryRegistry(), handler), logs
}

func TestFactoryContainerDelegatesServiceOps(t *testing.T) {
	fc, _ := newTestFactoryContainer(t)
	instance := &struct{ name string }{name: "store"}

	fc.Register("store", instance)

	if !fc.Has("store") {
		t.Error("Has should delegate to the wrapped container")
	}
	got, err := fc.Get("store")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != instance {
		t.Error("Get should return the identical instance")
	}
	if _, err := fc.Get("absent"); !stderrors.Is(err, ErrNotRegistered) {
		t.Errorf("expected ErrNotRegistered, got %v", err)
	}
}

func TestFactoryContainerReportsDuplicateRegistration(t *testing.T) {
	fc, logs := newTestFactoryContainer(t)

	if err := fc.RegisterFactory(&mockFactory{componentType: "math-widget", factoryID: "desmos"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if logs.Len() != 0 {
		t.Fatal("successful registration must not be reported")
	}

	err := fc.RegisterFactory(&mockFactory{componentType: "math-widget", factoryID: "desmos"})
	if !stderrors.Is(err, ErrDuplicateFactory) {
		t.Fatalf("original failure must be re-raised, got %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one handled error, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["category"] != "factory_registration" {
		t.Errorf("expected factory_registration category, got %v", fields["category"])
	}
	details := fields["details"].(map[string]any)
	if details["component_type"] != "math-widget" || details["factory_id"] != "desmos" {
		t.Errorf("details should carry the pair, got %v", details)
	}
}

func TestFactoryContainerPromotesLookupMiss(t *testing.T) {
	fc, logs := newTestFactoryContainer(t)

	f, err := fc.GetFactory("math-widget", "wolfram")
	if f != nil {
		t.Error("miss should return a nil factory")
	}
	if err == nil {
		t.Fatal("miss should fail through the composition layer")
	}

	e := errors.AsStructured(err)
	if e == nil {
		t.Fatal("expected a structured error")
	}
	if e.Category != errors.CategoryFactory {
		t.Errorf("expected factory category, got %s", e.Category)
	}
	if e.Details["component_type"] != "math-widget" || e.Details["factory_id"] != "wolfram" {
		t.Errorf("details should carry the pair, got %v", e.Details)
	}

	if logs.Len() != 1 {
		t.Errorf("miss should be reported exactly once, got %d entries", logs.Len())
	}
}

func TestFactoryContainerLookupHitIsSilent(t *testing.T) {
	fc, logs := newTestFactoryContainer(t)
	registered := &mockFactory{componentType: "math-widget", factoryID: "geogebra"}
	fc.RegisterFactory(registered)

	f, err := fc.GetFactory("math-widget", "geogebra")
	if err != nil {
		t.Fatalf("GetFactory failed: %v", err)
	}
	if f != registered {
		t.Error("GetFactory should return the registered factory")
	}
	if logs.Len() != 0 {
		t.Error("a successful lookup must not be reported")
	}
}

func TestFactoryContainerFactoriesForType(t *testing.T) {
	fc, _ := newTestFactoryContainer(t)
	a := &mockFactory{componentType: "math-widget", factoryID: "desmos"}
	b := &mockFactory{componentType: "math-widget", factoryID: "geogebra"}
	fc.RegisterFactory(a)
	fc.RegisterFactory(b)

	factories := fc.FactoriesForType("math-widget")
	if len(factories) != 2 {
		t.Fatalf("expected 2 factories, got %d", len(factories))
	}
	if factories[0] != a || factories[1] != b {
		t.Error("factories should come back in registration order")
	}

	if empty := fc.FactoriesForType("chart"); len(empty) != 0 {
		t.Error("an unknown type yields an empty, non-error result")
	}
}

func TestCreateComponent(t *testing.T) {
	fc, _ := newTestFactoryContainer(t)
	fc.RegisterFactory(&mockFactory{componentType: "math-widget", factoryID: "desmos"})

	instance, err := fc.CreateComponent("math-widget", "desmos", component.Config{"expression": "y=x^2"})
	if err != nil {
		t.Fatalf("CreateComponent failed: %v", err)
	}
	if instance != "math-widget/desmos" {
		t.Errorf("unexpected instance: %v", instance)
	}
}

func TestCreateComponentReportsCreationFailure(t *testing.T) {
	fc, logs := newTestFactoryContainer(t)
	fc.RegisterFactory(&mockFactory{
		componentType: "math-widget",
		factoryID:     "desmos",
		createErr:     stderrors.New("api key missing"),
	})

	_, err := fc.CreateComponent("math-widget", "desmos", nil)
	if err == nil {
		t.Fatal("creation failure should propagate")
	}
	e := errors.AsStructured(err)
	if e == nil || e.Category != errors.CategoryComponentCreation {
		t.Fatalf("expected component_creation category, got %v", err)
	}
	if logs.Len() != 1 {
		t.Errorf("creation failure should be reported once, got %d", logs.Len())
	}
}

func TestFactoryContainerStats(t *testing.T) {
	fc, _ := newTestFactoryContainer(t)
	fc.Register("store", struct{}{})
	fc.RegisterFactory(&mockFactory{componentType: "math-widget", factoryID: "desmos"})

	stats := fc.Stats()
	if stats["total_services"].(int) != 1 {
		t.Errorf("expected 1 service, got %v", stats["total_services"])
	}
	if stats["total_factories"].(int) != 1 {
		t.Errorf("expected 1 factory, got %v", stats["total_factories"])
	}
}
