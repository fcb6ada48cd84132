/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the numeric
service, tracking HTTP requests, per-tool evaluations, WebSocket connections,
and system metrics.

# Features

- HTTP request metrics (latency, throughput, size)
- Per-tool evaluation metrics (duration, status, non-convergence)
- Registry metrics (providers, tools)
- WebSocket connection metrics
- System metrics (uptime)

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record custom metrics
	metrics.SetRegistryServices(1)
	metrics.RecordNonConverged("numeric", "find_root")

	// Time evaluations
	timer := monitoring.NewTimer(metrics, "numeric", "gamma")
	// ... perform evaluation ...
	timer.Stop("success")

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
