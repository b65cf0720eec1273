package errors

// Category classifies an error by its origin.
type Category string

const (
	CategoryInitialization      Category = "initialization"
	CategoryNetwork             Category = "network"
	CategoryStorage             Category = "storage"
	CategoryValidation          Category = "validation"
	CategoryRuntime             Category = "runtime"
	CategoryFactory             Category = "factory"
	CategoryFactoryRegistration Category = "factory_registration"
	CategoryComponentCreation   Category = "component_creation"
	CategoryMathAPI             Category = "math_api"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryInitialization, CategoryNetwork, CategoryStorage,
		CategoryValidation, CategoryRuntime, CategoryFactory,
		CategoryFactoryRegistration, CategoryComponentCreation,
		CategoryMathAPI:
		return true
	}
	return false
}

// String returns the category label used in logs and metrics.
func (c Category) String() string {
	return string(c)
}
