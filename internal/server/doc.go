// Package server provides HTTP server setup and initialization for the
// content hub.
//
// This package orchestrates all components:
//   - HTTP routing with Gin framework
//   - Middleware stack (CORS, rate limiting, metrics, recovery)
//   - Storage backend selection (file or memory)
//   - Service and factory registration into the composed container
//   - Recovery strategy wiring into the error handler
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Build the error handler and metrics
//  4. Compose the service container, factory registry, and error
//     handler into one factory-enabled container
//  5. Register services and component factories
//  6. Setup HTTP routes and middleware
//  7. Start HTTP server
//  8. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
