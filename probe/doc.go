// Package probe builds named readiness and liveness checks from repositories,
// MongoDB clients and plain functions, and runs them concurrently under a
// shared deadline.
package probe
