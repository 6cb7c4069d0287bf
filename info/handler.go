package info

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/drblury/docweaver/probe"
	"github.com/drblury/docweaver/responder"
)

const defaultProbeTimeout = 2 * time.Second

var errNoOpenAPI = errors.New("openapi document not configured")

// Handler serves the operational endpoints that sit next to the document
// API: build information, liveness and readiness probes, and the OpenAPI
// document with an HTML viewer.
type Handler struct {
	resp         *responder.Responder
	baseURL      string
	version      func() any
	openapi      func() ([]byte, error)
	template     *template.Template
	templateData func(r *http.Request, baseURL string) any
	probeTimeout time.Duration
	liveness     []probe.Check
	readiness    []probe.Check
}

// Option configures a Handler.
type Option func(*Handler)

// New builds a Handler. Without options it reports healthy and ready, serves
// an empty version object and fails the OpenAPI endpoints.
func New(opts ...Option) *Handler {
	h := &Handler{
		resp:         responder.NewResponder(),
		version:      func() any { return map[string]string{} },
		openapi:      func() ([]byte, error) { return nil, errNoOpenAPI },
		template:     templateFor(UIStoplight),
		templateData: baseURLData,
		probeTimeout: defaultProbeTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// WithResponder shares a responder with the controllers so failures carry
// the same envelope and logger.
func WithResponder(resp *responder.Responder) Option {
	return func(h *Handler) {
		if resp != nil {
			h.resp = resp
		}
	}
}

// WithBaseURL is the prefix the viewer uses to fetch openapi.json.
func WithBaseURL(baseURL string) Option {
	return func(h *Handler) { h.baseURL = baseURL }
}

// WithVersion sets the payload of the version endpoint.
func WithVersion(fn func() any) Option {
	return func(h *Handler) {
		if fn != nil {
			h.version = fn
		}
	}
}

// WithOpenAPI sets the source of the raw OpenAPI document, typically an
// embedded file.
func WithOpenAPI(fn func() ([]byte, error)) Option {
	return func(h *Handler) {
		if fn != nil {
			h.openapi = fn
		}
	}
}

// WithUIType picks one of the embedded viewers.
func WithUIType(ui UIType) Option {
	return func(h *Handler) { h.template = templateFor(ui) }
}

// WithTemplate replaces the viewer with a custom template.
func WithTemplate(tmpl *template.Template) Option {
	return func(h *Handler) {
		if tmpl != nil {
			h.template = tmpl
		}
	}
}

// WithTemplateData overrides the data passed to the viewer template. The
// default is a map with a single BaseURL key.
func WithTemplateData(fn func(r *http.Request, baseURL string) any) Option {
	return func(h *Handler) {
		if fn != nil {
			h.templateData = fn
		}
	}
}

// WithProbeTimeout bounds one run of the liveness or readiness checks.
func WithProbeTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		if timeout > 0 {
			h.probeTimeout = timeout
		}
	}
}

// WithLiveness sets the checks behind /healthz.
func WithLiveness(checks ...probe.Check) Option {
	return func(h *Handler) { h.liveness = checks }
}

// WithReadiness sets the checks behind /readyz, usually one per repository.
func WithReadiness(checks ...probe.Check) Option {
	return func(h *Handler) { h.readiness = checks }
}

func baseURLData(_ *http.Request, baseURL string) any {
	return map[string]any{"BaseURL": baseURL}
}
