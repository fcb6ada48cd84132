// Package main is the entry point for the NumServe evaluation server.
//
// NumServe exposes a registry of numerical evaluation tools over REST and
// WebSocket: special functions, root finding, quadrature, and divisor
// arithmetic.
//
// The server provides:
//   - REST API for tool discovery and execution
//   - WebSocket streaming for interactive evaluation
//   - Prometheus metrics exposition
//   - Rate limiting and request tracing
//
// Configuration:
//   - Environment variables (12-factor)
//   - Optional YAML or TOML config file overlay
//   - CLI flags (override both)
//
// Usage:
//
//	# Defaults (port 8000)
//	./server
//
//	# Explicit port and config file
//	./server -port 9000 -config numserve.yaml
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
