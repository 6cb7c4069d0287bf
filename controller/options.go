package controller

import (
	"net/http"

	"github.com/drblury/docweaver/responder"
	"github.com/drblury/docweaver/store"
)

// Names are the envelope keys a controller renders documents under.
type Names struct {
	Singular string
	Plural   string
}

// StatusResolver picks the HTTP status for a store failure.
type StatusResolver func(err *store.Error) int

// Option configures a Controller via the functional options pattern.
type Option func(*options)

type options struct {
	responder      *responder.Responder
	names          Names
	statusResolver StatusResolver
	idExtractor    func(*http.Request) string
}

func defaultOptions() *options {
	return &options{
		responder:      responder.NewResponder(),
		names:          Names{Singular: "document", Plural: "documents"},
		statusResolver: AlwaysInternal,
		idExtractor:    pathID,
	}
}

// AlwaysInternal reports every store failure as HTTP 500. It is the default.
func AlwaysInternal(*store.Error) int {
	return http.StatusInternalServerError
}

// NotFoundAware maps missing documents to 404, duplicate keys to 409 and
// undecodable bodies to 400. Everything else stays 500.
func NotFoundAware(err *store.Error) int {
	if err == nil {
		return http.StatusInternalServerError
	}
	switch err.Code {
	case store.CodeNoMatchingDocument:
		return http.StatusNotFound
	case store.CodeDuplicateKey:
		return http.StatusConflict
	case store.CodeBadValue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WithResponder shares a responder, and so its logger, with the controller.
func WithResponder(resp *responder.Responder) Option {
	return func(o *options) {
		if resp != nil {
			o.responder = resp
		}
	}
}

// WithNames sets the singular and plural envelope keys. Empty values keep the
// defaults.
func WithNames(singular, plural string) Option {
	return func(o *options) {
		if singular != "" {
			o.names.Singular = singular
		}
		if plural != "" {
			o.names.Plural = plural
		}
	}
}

// WithStatusResolver replaces the status mapping for store failures.
func WithStatusResolver(resolver StatusResolver) Option {
	return func(o *options) {
		if resolver != nil {
			o.statusResolver = resolver
		}
	}
}

// WithIDExtractor replaces how the document key is read from a request, for
// routers that do not populate http.Request path values.
func WithIDExtractor(extract func(*http.Request) string) Option {
	return func(o *options) {
		if extract != nil {
			o.idExtractor = extract
		}
	}
}

func pathID(r *http.Request) string {
	return r.PathValue(IDParam)
}
