// Package middleware provides production-ready HTTP middleware for the backend.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing with configurable origins
//   - RateLimit: Per-IP token bucket rate limiting
//   - Gzip: Response compression (klauspost/compress)
//   - Recovery: Panic recovery with graceful error responses (via Gin)
//
// CORS Configuration:
//   - AllowOrigins: Permitted origin domains (CORS_ORIGINS)
//   - AllowMethods: HTTP methods (GET, POST, OPTIONS)
//   - AllowHeaders: Request headers, including the trace headers
//   - ExposeHeaders: X-Trace-ID and X-Span-ID are readable by the frontend
//   - MaxAge: Preflight cache duration
//
// Rate Limiting:
//   - Per-IP tracking with idle client cleanup
//   - Token bucket algorithm
//   - Configurable RPS and burst capacity
//   - Global rate limiting option
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.CORSConfigForOrigins(cfg.CORS.Origins)))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
//	router.Use(middleware.Gzip(middleware.DefaultGzipConfig()))
package middleware
