// Package server provides the hofkit HTTP server: a Gin engine served over
// HTTP/1.1 and h2c (cleartext HTTP/2) on one port.
//
// # Middleware
//
// Middleware (server/middleware) wraps the whole handler, outermost first:
//
//   - Recovery: panic recovery with structured logging
//   - RequestID: X-Request-Id generation and propagation into the context
//   - CORS: cross-origin resource sharing
//   - BodySizeLimit: request body size limit
//   - Metrics: request span and request metrics
//   - RequestLogger: request logging with duration tracking
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: health check aggregation
//   - /info: build version information
package server
