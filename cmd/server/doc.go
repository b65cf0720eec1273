// Package main is the entry point for the content hub server.
//
// The server hosts a browser-based content editor: documents (HTML,
// CSS, JS) are stored, sanitized, and rendered into sandboxed preview
// frames, with third-party math visualization widgets built through a
// component factory registry.
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
