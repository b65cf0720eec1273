// Package mathapi integrates third-party math-visualization APIs as
// pluggable component factories. Each adapter declares the component
// type "math-widget" and a factory ID naming the API (desmos,
// geogebra), so multiple implementations stay interchangeable behind
// the factory registry.
package mathapi
