package mathapi

import (
	"fmt"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/component"
)

const geogebraScriptURL = "https://www.geogebra.org/apps/deployggb.js"

// geogebraApps are the applet variants GeoGebra can deploy.
var geogebraApps = map[string]bool{
	"graphing":   true,
	"geometry":   true,
	"3d":         true,
	"classic":    true,
	"suite":      true,
	"evaluator":  true,
	"scientific": true,
}

// GeoGebraFactory builds GeoGebra applet widgets.
type GeoGebraFactory struct{}

// NewGeoGebraFactory creates the factory. GeoGebra's deploy script
// needs no API key.
func NewGeoGebraFactory() *GeoGebraFactory {
	return &GeoGebraFactory{}
}

// ComponentType identifies the kind of component this factory builds.
func (f *GeoGebraFactory) ComponentType() string { return ComponentType }

// FactoryID identifies the implementation.
func (f *GeoGebraFactory) FactoryID() string { return "geogebra" }

// Create builds an applet widget. Recognized config keys:
// container_id, app (applet variant), material_id, width, height.
func (f *GeoGebraFactory) Create(cfg component.Config) (any, error) {
	app := cfg.String("app", "graphing")
	if !geogebraApps[app] {
		return nil, fmt.Errorf("unknown geogebra app %q", app)
	}

	containerID := cfg.String("container_id", "ggb-element")
	materialID := cfg.String("material_id", "")
	width := cfg.Float("width", 800)
	height := cfg.Float("height", 600)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("width and height must be positive")
	}

	params := fmt.Sprintf(`{ appName: %q, width: %.0f, height: %.0f, showToolBar: true, showAlgebraInput: true`, app, width, height)
	if materialID != "" {
		params += fmt.Sprintf(`, material_id: %q`, materialID)
	}
	params += " }"

	markup := fmt.Sprintf(`<div id=%q></div>
<script src=%q></script>
<script>
var ggbApp = new GGBApplet(%s, true);
window.addEventListener("load", function() { ggbApp.inject(%q); });
</script>`,
		containerID, geogebraScriptURL, params, containerID)

	return &Widget{
		APIType:     "geogebra",
		ContainerID: containerID,
		ScriptURL:   geogebraScriptURL,
		Markup:      markup,
	}, nil
}
