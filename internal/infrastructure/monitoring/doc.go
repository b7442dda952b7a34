/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the backend
service, tracking HTTP requests, service tool calls, engine usage and the
widget WebSocket stream.

# Features

- HTTP request metrics (latency, throughput, size) keyed by route template
- Service call metrics (duration, errors) per tool
- Number classifications by representation kind
- Unit circle evaluations, special angle or not
- WebSocket connection and message metrics
- Uptime

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()
	defer metrics.Close()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Time operations
	timer := monitoring.NewTimer(metrics, "math", "math.classify")
	// ... perform operation ...
	timer.Stop("success")

Tests should use NewMetricsWith(prometheus.NewRegistry()) so collectors do
not collide on the default registry.

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
