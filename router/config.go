package router

import (
	"slices"
	"time"
)

// Config holds the tunables of the default middleware chain.
type Config struct {
	// Timeout bounds each request; zero disables the timeout middleware.
	Timeout time.Duration
	CORS    CORSConfig
	// QuietdownRoutes are paths the logging middleware skips, e.g. probes.
	QuietdownRoutes []string
	// HideHeaders are request headers whose values are redacted in logs.
	HideHeaders []string
}

// CORSConfig controls the CORS middleware. It is only applied when at least
// one origin is configured.
type CORSConfig struct {
	Origins          []string
	Methods          []string
	Headers          []string
	AllowCredentials bool
}

func (c Config) clone() Config {
	c.QuietdownRoutes = slices.Clone(c.QuietdownRoutes)
	c.HideHeaders = slices.Clone(c.HideHeaders)
	c.CORS.Origins = slices.Clone(c.CORS.Origins)
	c.CORS.Methods = slices.Clone(c.CORS.Methods)
	c.CORS.Headers = slices.Clone(c.CORS.Headers)
	return c
}
