// Package observability exposes the engine's resolution activity as
// Prometheus metrics. The collectors plug into the layer tree's lifecycle
// hooks; the debug HTTP server serves them on /metrics.
package observability
