package mathapi

import (
	"fmt"
	"html"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/component"
)

const desmosScriptURL = "https://www.desmos.com/api/v1.9/calculator.js"

// DesmosFactory builds Desmos graphing calculator widgets.
type DesmosFactory struct {
	apiKey string
}

// NewDesmosFactory creates the factory. The API key is mandatory:
// Desmos rejects script loads without one.
func NewDesmosFactory(apiKey string) *DesmosFactory {
	return &DesmosFactory{apiKey: apiKey}
}

// ComponentType identifies the kind of component this factory builds.
func (f *DesmosFactory) ComponentType() string { return ComponentType }

// FactoryID identifies the implementation.
func (f *DesmosFactory) FactoryID() string { return "desmos" }

// Create builds a calculator widget. Recognized config keys:
// container_id, expression (LaTeX), height (px).
func (f *DesmosFactory) Create(cfg component.Config) (any, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("desmos api key is not configured")
	}

	containerID := cfg.String("container_id", "calculator")
	expression := cfg.String("expression", "y=x")
	height := cfg.Float("height", 400)
	if height <= 0 {
		return nil, fmt.Errorf("height must be positive, got %v", height)
	}

	scriptURL := fmt.Sprintf("%s?apiKey=%s", desmosScriptURL, f.apiKey)
	markup := fmt.Sprintf(`<div id=%q style="height:%.0fpx"></div>
<script src=%q></script>
<script>
var elt = document.getElementById(%q);
var calculator = Desmos.GraphingCalculator(elt);
calculator.setExpression({ id: "graph1", latex: %q });
</script>`,
		containerID, height, scriptURL, containerID, html.EscapeString(expression))

	return &Widget{
		APIType:     "desmos",
		ContainerID: containerID,
		ScriptURL:   scriptURL,
		Markup:      markup,
	}, nil
}
