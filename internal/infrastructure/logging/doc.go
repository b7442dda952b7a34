// Package logging wraps uber/zap for the backend.
//
// Production logs are JSON (timestamp, level, logger, caller, message) so they
// can be shipped as-is; development logs are colored console lines. The level
// comes from LOG_LEVEL and the mode from LOG_DEV.
//
// Components take a *Logger and derive a named child, so every line says
// where it came from: "http", "ws", "registry", "tracing".
//
// Example Usage:
//
//	logger := logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)
//	wsLog := logger.Named("ws").With(zap.String("connection_id", id))
//	wsLog.Info("WebSocket connected")
package logging
