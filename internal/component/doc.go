// Package component defines the contracts pluggable components are
// built against: the Factory interface concrete adapters implement to
// become registrable, and the Config payload factories consume.
package component
