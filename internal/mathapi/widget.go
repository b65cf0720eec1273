package mathapi

// ComponentType is the registry type shared by every math adapter.
const ComponentType = "math-widget"

// Widget is a mountable math visualization produced by an adapter
// factory. Markup is self-contained: a mount element plus the script
// that loads the third-party API and binds it to that element. It is
// injected into a sandboxed preview frame, never the host page.
type Widget struct {
	APIType     string `json:"api_type"`
	ContainerID string `json:"container_id"`
	ScriptURL   string `json:"script_url"`
	Markup      string `json:"markup"`
}
