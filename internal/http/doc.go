// Package http provides HTTP handlers and routing for the content hub
// REST API.
//
// This package implements all HTTP endpoints using the Gin framework,
// including health checks, document management, component creation, and
// preview rendering.
//
// Endpoints:
//   - Health: / and /health
//   - Documents: /documents, /documents/:id, /documents/import
//   - Preview: /documents/:id/preview
//   - Components: /components, /components/create
//
// Example Usage:
//
//	handlers := http.NewHandlers(documents, components, renderer, stream, metrics)
//	router.GET("/health", handlers.Health)
//	router.POST("/documents", handlers.CreateDocument)
package http
