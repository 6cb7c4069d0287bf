package router

import (
	"net/http"

	"github.com/drblury/docweaver/responder"
)

// New serves api behind the middleware chain. The default chain, outermost
// first, is OpenAPI validation, CORS, timeout, request logging and metrics.
// Metrics read the pattern matched by api, so api is usually the
// *http.ServeMux the controllers are registered on.
func New(api http.Handler, opts ...Option) *http.ServeMux {
	if api == nil {
		panic("router: handler cannot be nil")
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.responder == nil {
		o.responder = responder.NewResponder(responder.WithLogger(o.logger))
	}

	chain := o.chain()
	handler := api
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i] != nil {
			handler = chain[i](handler)
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	return mux
}
