// Package providers holds the service providers behind the registry.
//
// Each provider exposes its capabilities as tools with a shared interface,
// and reports failures as data (Result.Success=false) instead of errors.
//
// Available Providers:
//   - math: Number sets, unit circle, series, vectors, matrices, statistics
//   - content: Topic catalog (topics, sections, widgets)
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	p := math.NewProvider(math.DefaultLimits())
//	result, err := p.Execute(ctx, "math.classify", map[string]interface{}{"input": "3+4i"}, appCtx)
package providers
