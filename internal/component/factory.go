package component

// Factory constructs component instances of one declared type. A type
// can have multiple interchangeable implementations (e.g. several
// math-widget adapters), distinguished by factory ID.
type Factory interface {
	// ComponentType identifies the kind of component this factory
	// builds, e.g. "math-widget".
	ComponentType() string
	// FactoryID identifies the implementation, e.g. "desmos".
	FactoryID() string
	// Create builds a component instance from configuration. The
	// concrete return type is declared by the factory; callers downcast
	// at the boundary.
	Create(cfg Config) (any, error)
}

// Config is the configuration payload passed to a factory. Values are
// untyped; the accessors push shape checks to the call site.
type Config map[string]any

// String returns the string stored under key, or fallback when the key
// is absent or not a string.
func (c Config) String(key, fallback string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return fallback
}

// Float returns the numeric value stored under key. JSON decoding
// produces float64; int is accepted for configs built in code.
func (c Config) Float(key string, fallback float64) float64 {
	switch v := c[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return fallback
}

// Bool returns the boolean stored under key, or fallback.
func (c Config) Bool(key string, fallback bool) bool {
	if v, ok := c[key].(bool); ok {
		return v
	}
	return fallback
}
