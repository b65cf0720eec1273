// Package errors provides the structured error model and the central
// error handler for the content hub.
//
// Every failure in the system is normalized into an Error carrying a
// Category, a message, and optional structured details before it is
// logged or acted on. The Handler is the terminal sink: components
// report failures through it and decide independently whether to
// propagate them further.
//
// Categories form a closed set. Adding one is a deliberate, versioned
// change because categories drive logging, metrics labels, and
// recovery-strategy selection.
package errors
