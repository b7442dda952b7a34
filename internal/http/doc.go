// Package http provides HTTP handlers for the MathForDevs REST API.
//
// Handlers call the pure math engines directly for the widget endpoints and
// go through the service registry for generic tool execution.
//
// Endpoints:
//   - Health: / and /health
//   - Numbers: /numbers/parse, /numbers/classify
//   - Trigonometry: /trig/evaluate, /trig/special, /trig/identities
//   - Content: /topics, /topics/:id
//   - Services: /services, /services/discover, /services/execute
//
// Bad query parameters get a 400 with {"error": ...}. An input the number
// engine cannot parse is still a 200; the classification says is_valid=false.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, catalog, metrics, logger)
//	router.GET("/trig/evaluate", handlers.EvaluateTrig)
package http
