// Package service provides the service registry behind the /services API.
//
// The registry maintains a catalog of service providers (math, content) and
// handles service discovery, tool execution, and relevance scoring for free
// text intents such as "classify a complex number".
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//   - Service discovery with relevance scoring
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Intent-based discovery with scoring
//   - Tool execution with context passing, timed through monitoring
//   - Service statistics
//
// Discovery Algorithm:
//   - Keyword matching in name/description
//   - Capability and tool name matching
//   - Category bonus for exact matches
//   - Score-based ranking
//
// Example Usage:
//
//	registry := service.NewRegistry(service.WithMetrics(metrics))
//	registry.Register(math.NewProvider(limits))
//	services := registry.Discover("unit circle trigonometry", 5)
//	result, err := registry.Execute(ctx, "math.trig.evaluate", params, appCtx)
package service
