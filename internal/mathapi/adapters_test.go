package mathapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/component"
)

func TestDesmosFactoryIdentity(t *testing.T) {
	f := NewDesmosFactory("test-key")
	assert.Equal(t, "math-widget", f.ComponentType())
	assert.Equal(t, "desmos", f.FactoryID())
}

func TestDesmosCreate(t *testing.T) {
	f := NewDesmosFactory("test-key")

	instance, err := f.Create(component.Config{
		"container_id": "graph",
		"expression":   "y=x^2",
		"height":       300,
	})
	require.NoError(t, err)

	widget, ok := instance.(*Widget)
	require.True(t, ok)
	assert.Equal(t, "desmos", widget.APIType)
	assert.Equal(t, "graph", widget.ContainerID)
	assert.Contains(t, widget.ScriptURL, "apiKey=test-key")
	assert.Contains(t, widget.Markup, `id="graph"`)
	assert.Contains(t, widget.Markup, "y=x^2")
	assert.Contains(t, widget.Markup, "height:300px")
}

func TestDesmosCreateDefaults(t *testing.T) {
	f := NewDesmosFactory("test-key")

	instance, err := f.Create(component.Config{})
	require.NoError(t, err)

	widget := instance.(*Widget)
	assert.Equal(t, "calculator", widget.ContainerID)
	assert.Contains(t, widget.Markup, "height:400px")
}

func TestDesmosCreateWithoutAPIKey(t *testing.T) {
	f := NewDesmosFactory("")
	_, err := f.Create(component.Config{})
	assert.Error(t, err)
}

func TestDesmosCreateRejectsBadHeight(t *testing.T) {
	f := NewDesmosFactory("test-key")
	_, err := f.Create(component.Config{"height": -10})
	assert.Error(t, err)
}

func TestGeoGebraFactoryIdentity(t *testing.T) {
	f := NewGeoGebraFactory()
	assert.Equal(t, "math-widget", f.ComponentType())
	assert.Equal(t, "geogebra", f.FactoryID())
}

func TestGeoGebraCreate(t *testing.T) {
	f := NewGeoGebraFactory()

	instance, err := f.Create(component.Config{
		"app":         "geometry",
		"material_id": "RHYH3UQ8",
	})
	require.NoError(t, err)

	widget := instance.(*Widget)
	assert.Equal(t, "geogebra", widget.APIType)
	assert.Contains(t, widget.Markup, "geometry")
	assert.Contains(t, widget.Markup, "RHYH3UQ8")
	assert.Contains(t, widget.Markup, "deployggb.js")
}

func TestGeoGebraCreateRejectsUnknownApp(t *testing.T) {
	f := NewGeoGebraFactory()
	_, err := f.Create(component.Config{"app": "quantum"})
	assert.Error(t, err)
}

func TestAdaptersShareComponentType(t *testing.T) {
	desmos := NewDesmosFactory("k")
	geogebra := NewGeoGebraFactory()
	assert.Equal(t, desmos.ComponentType(), geogebra.ComponentType())
	assert.NotEqual(t, desmos.FactoryID(), geogebra.FactoryID())
}
