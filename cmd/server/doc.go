// Package main is the entry point for the MathForDevs Go backend server.
//
// The server backs the interactive widgets of the MathForDevs site: number
// classification, the unit circle explorer, series, vectors, matrices and the
// hypothesis testing simulator. It also serves the topic catalog.
//
// Configuration comes from the environment (see internal/infrastructure/config);
// flags override a few settings for local runs.
//
// Usage:
//
//	go run ./cmd/server -port 8000 -dev
//	PORT=9000 CORS_ORIGINS=https://mathfordevs.dev go run ./cmd/server
//
// The server shuts down gracefully on SIGINT or SIGTERM.
package main
