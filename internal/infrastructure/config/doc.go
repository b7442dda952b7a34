// Package config provides 12-factor configuration management for the backend.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - CORS: Allowed frontend origins
//   - Content: Topic catalog override file
//   - Limits: Per-request caps for series and the statistics simulator
//   - Compression: gzip responses
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s\n", cfg.Addr())
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - CORS_ORIGINS (comma separated)
//   - CONTENT_PATH
//   - MAX_SERIES_TERMS, MAX_SIM_TRIALS, MAX_SAMPLE_SIZE
//   - GZIP_ENABLED
package config
