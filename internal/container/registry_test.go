package container

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/component"
)

type mockFactory struct {
	componentType string
	factoryID     string
	createErr     error
}

func (f *mockFactory) ComponentType() string { return f.componentType }
func (f *mockFactory) FactoryID() string     { return f.factoryID }

func (f *mockFactory) Create(cfg component.Config) (any, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return fmt.Sprintf("%s/%s", f.componentType, f.factoryID), nil
}

func TestRegisterFactoryAndLookup(t *testing.T) {
	r := NewFactoryRegistry()
	f := &mockFactory{componentType: "math-widget", factoryID: "desmos"}

	if err := r.RegisterFactory(f); err != nil {
		t.Fatalf("RegisterFactory failed: %v", err)
	}

	got, ok := r.GetFactory("math-widget", "desmos")
	if !ok {
		t.Fatal("factory should be registered")
	}
	if got != f {
		t.Error("GetFactory should return the registered factory")
	}
}

func TestRegisterFactoryRejectsDuplicatePair(t *testing.T) {
	r := NewFactoryRegistry()
	first := &mockFactory{componentType: "math-widget", factoryID: "desmos"}
	second := &mockFactory{componentType: "math-widget", factoryID: "desmos"}

	if err := r.RegisterFactory(first); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	err := r.RegisterFactory(second)
	if !stderrors.Is(err, ErrDuplicateFactory) {
		t.Fatalf("expected ErrDuplicateFactory, got %v", err)
	}

	// The first registration is retained unchanged.
	got, _ := r.GetFactory("math-widget", "desmos")
	if got != first {
		t.Error("duplicate registration must not replace the original factory")
	}
	if n := len(r.FactoriesForType("math-widget")); n != 1 {
		t.Errorf("expected 1 factory, got %d", n)
	}
}

func TestRegisterFactoryValidation(t *testing.T) {
	r := NewFactoryRegistry()

	if err := r.RegisterFactory(nil); err == nil {
		t.Error("nil factory should be rejected")
	}
	if err := r.RegisterFactory(&mockFactory{factoryID: "x"}); err == nil {
		t.Error("empty component type should be rejected")
	}
	if err := r.RegisterFactory(&mockFactory{componentType: "x"}); err == nil {
		t.Error("empty factory ID should be rejected")
	}
}

func TestGetFactoryMissIsNotAnError(t *testing.T) {
	r := NewFactoryRegistry()

	f, ok := r.GetFactory("math-widget", "wolfram")
	if ok || f != nil {
		t.Error("miss should return a nil factory and false")
	}
}

func TestFactoriesForTypePreservesRegistrationOrder(t *testing.T) {
	r := NewFactoryRegistry()
	ids := []string{"desmos", "geogebra", "jsxgraph", "plotly"}
	for _, id := range ids {
		if err := r.RegisterFactory(&mockFactory{componentType: "math-widget", factoryID: id}); err != nil {
			t.Fatalf("RegisterFactory(%s) failed: %v", id, err)
		}
	}

	factories := r.FactoriesForType("math-widget")
	if len(factories) != len(ids) {
		t.Fatalf("expected %d factories, got %d", len(ids), len(factories))
	}
	for i, f := range factories {
		if f.FactoryID() != ids[i] {
			t.Errorf("position %d: expected %s, got %s", i, ids[i], f.FactoryID())
		}
	}
}

func TestFactoriesForTypeUnknownTypeIsEmpty(t *testing.T) {
	r := NewFactoryRegistry()
	if factories := r.FactoriesForType("unknown"); len(factories) != 0 {
		t.Errorf("expected empty slice, got %d entries", len(factories))
	}
}

func TestFactoriesForTypeReturnsCopy(t *testing.T) {
	r := NewFactoryRegistry()
	r.RegisterFactory(&mockFactory{componentType: "math-widget", factoryID: "desmos"})

	factories := r.FactoriesForType("math-widget")
	factories[0] = nil

	again := r.FactoriesForType("math-widget")
	if again[0] == nil {
		t.Error("mutating the returned slice must not affect registry state")
	}
}

func TestStats(t *testing.T) {
	r := NewFactoryRegistry()
	r.RegisterFactory(&mockFactory{componentType: "math-widget", factoryID: "desmos"})
	r.RegisterFactory(&mockFactory{componentType: "math-widget", factoryID: "geogebra"})
	r.RegisterFactory(&mockFactory{componentType: "editor", factoryID: "code"})

	stats := r.Stats()
	if stats["total_factories"].(int) != 3 {
		t.Errorf("expected 3 total factories, got %v", stats["total_factories"])
	}
	perType := stats["component_types"].(map[string]int)
	if perType["math-widget"] != 2 {
		t.Errorf("expected 2 math-widget factories, got %d", perType["math-widget"])
	}
}
