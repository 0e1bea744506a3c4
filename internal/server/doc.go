// Package server provides the HTTP server of the academy API.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server :8000                     │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  RequestID  (X-Request-ID, uuid when absent)            │  │
//	│  │  Logger     (request/response logging)                  │  │
//	│  │  Recovery   (panic recovery with zap logging)           │  │
//	│  │  CORS       (admin origins, exposes Content-Range)      │  │
//	│  │  RateLimit  (token bucket per client IP)                │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (ServerMode = "dev"):
//   - Gin runs in debug mode
//
// Production Mode (ServerMode = "prod"):
//   - Gin runs in release mode
//
// TLS is terminated in front of the server.
//
// # Server Lifecycle
//
// Creation:
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    handlers.RegisterRoutes(router, h, mw)
//	})
//
// The registerHandlerFn callback receives a RouterGroup prefixed with /api/v1.
//
// Starting:
//
//	// Blocks until error or shutdown
//	err := srv.Start(ctx)
//
// Stopping:
//
//	srv.Stop(ctx)
//
// Performs graceful shutdown, waiting for in-flight requests to complete.
//
// # Middleware
//
// Logger Middleware (middlewares.Logger):
//   - Logs request start at debug level: method, path, query, IP, user-agent
//   - Logs request end: all above + status code, latency
//   - Every line carries the request id
//   - Uses zap structured logging with "http" logger name
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Recovers from panics in handlers
//   - Logs panic details with stack trace
//   - Returns 500 Internal Server Error
//
// RateLimit Middleware (middlewares.RateLimit):
//   - server.rate-limit requests per minute per client IP, same burst
//   - 0 disables it
//   - Idle client buckets are dropped after 15 minutes
//   - Returns 429 Too Many Requests
//
// Unknown routes answer 404 with a JSON error body.
package server
