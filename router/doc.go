// Package router puts the API mux behind OpenAPI request validation, CORS, a
// request timeout, request logging and Prometheus metrics. Validation
// failures and timeouts are answered with the same failure envelope the
// controllers produce.
package router
