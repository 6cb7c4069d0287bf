package router

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/drblury/docweaver/responder"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Option configures New.
type Option func(*options)

type stage int

const (
	stageValidation stage = iota
	stageCORS
	stageTimeout
	stageLogging
)

type options struct {
	config    Config
	logger    *slog.Logger
	swagger   *openapi3.T
	metrics   *httpMetrics
	responder *responder.Responder
	before    []Middleware
	after     []Middleware
	replace   []Middleware
	disabled  map[stage]bool
}

func defaultOptions() *options {
	return &options{
		config:   Config{Timeout: 30 * time.Second},
		logger:   slog.Default(),
		disabled: map[stage]bool{},
	}
}

func (o *options) chain() []Middleware {
	if o.replace != nil {
		return slices.Clone(o.replace)
	}

	chain := slices.Clone(o.before)
	if o.swagger != nil && !o.disabled[stageValidation] {
		chain = append(chain, validationMiddleware(o.swagger, o.responder))
	}
	if len(o.config.CORS.Origins) > 0 && !o.disabled[stageCORS] {
		chain = append(chain, corsMiddleware(o.config.CORS))
	}
	if o.config.Timeout > 0 && !o.disabled[stageTimeout] {
		chain = append(chain, timeoutMiddleware(o.config.Timeout, o.responder))
	}
	if o.logger != nil && !o.disabled[stageLogging] {
		chain = append(chain, loggingMiddleware(o.logger, o.config))
	}
	if o.metrics != nil {
		chain = append(chain, metricsMiddleware(o.metrics))
	}
	return append(chain, o.after...)
}

func without(s stage) Option {
	return func(o *options) { o.disabled[s] = true }
}

// WithConfig replaces the router configuration.
func WithConfig(cfg Config) Option {
	cfg = cfg.clone()
	return func(o *options) { o.config = cfg }
}

// WithConfigMutator edits the configuration in place, after defaults and any
// earlier WithConfig.
func WithConfigMutator(mutate func(*Config)) Option {
	return func(o *options) {
		if mutate != nil {
			mutate(&o.config)
		}
	}
}

// WithLogger sets the logger of the request logging middleware and of the
// default responder.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithSwagger validates requests against doc before they reach the API.
func WithSwagger(doc *openapi3.T) Option {
	return func(o *options) { o.swagger = doc }
}

// WithMetrics records request counts, durations and in-flight requests on reg
// under namespace, labelled with the matched ServeMux pattern.
func WithMetrics(reg prometheus.Registerer, namespace string) Option {
	return func(o *options) {
		if reg != nil {
			o.metrics = newHTTPMetrics(reg, namespace)
		}
	}
}

// WithResponder renders validation failures and timeouts. Pass the
// controllers' responder to share its logger and status metadata.
func WithResponder(resp *responder.Responder) Option {
	return func(o *options) { o.responder = resp }
}

// WithMiddlewares adds middlewares outside the default chain.
func WithMiddlewares(middlewares ...Middleware) Option {
	return func(o *options) { o.before = append(o.before, middlewares...) }
}

// WithTrailingMiddlewares adds middlewares inside the default chain, right in
// front of the API handler.
func WithTrailingMiddlewares(middlewares ...Middleware) Option {
	return func(o *options) { o.after = append(o.after, middlewares...) }
}

// WithMiddlewareChain replaces the whole chain, defaults included.
func WithMiddlewareChain(middlewares ...Middleware) Option {
	chain := slices.Clone(middlewares)
	if chain == nil {
		chain = []Middleware{}
	}
	return func(o *options) { o.replace = chain }
}

// WithoutOpenAPIValidation disables request validation even when a document
// is set.
func WithoutOpenAPIValidation() Option { return without(stageValidation) }

// WithoutCORSMiddleware disables CORS regardless of configuration.
func WithoutCORSMiddleware() Option { return without(stageCORS) }

// WithoutTimeoutMiddleware disables the request timeout.
func WithoutTimeoutMiddleware() Option { return without(stageTimeout) }

// WithoutLoggingMiddleware disables request logging.
func WithoutLoggingMiddleware() Option { return without(stageLogging) }
