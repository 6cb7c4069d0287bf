package responder

import (
	"log/slog"
	"net/http"
)

const (
	jsonContentType = "application/json"
	traceIDHeader   = "X-Trace-Id"
)

// ErrorClassifierFunc maps an error to an HTTP status for HandleErrors. It
// reports false for errors it does not recognise.
type ErrorClassifierFunc func(err error) (status int, handled bool)

// Option configures a Responder.
type Option func(*Responder)

// StatusMetadata sets how failures with one HTTP status are logged. LogLevel
// is used as given, so slog.LevelInfo is a valid choice. Statuses without
// metadata log at Error for 5xx and Warn otherwise. An empty LogMsg selects the
// status text.
type StatusMetadata struct {
	LogLevel slog.Level
	LogMsg   string
}

// Responder renders the success and failure envelopes shared by every handler
// and logs failures with a trace id.
type Responder struct {
	log        *slog.Logger
	statuses   map[int]StatusMetadata
	classifier ErrorClassifierFunc
}

// NewResponder returns a Responder logging through slog.Default.
func NewResponder(opts ...Option) *Responder {
	r := &Responder{
		log: slog.Default(),
		statuses: map[int]StatusMetadata{
			http.StatusInternalServerError: {LogLevel: slog.LevelError, LogMsg: "Internal Server Error"},
			http.StatusServiceUnavailable:  {LogLevel: slog.LevelError, LogMsg: "Service Unavailable"},
			http.StatusBadRequest:          {LogLevel: slog.LevelWarn, LogMsg: "Bad Request"},
			http.StatusNotFound:            {LogLevel: slog.LevelWarn, LogMsg: "Document Not Found"},
			http.StatusConflict:            {LogLevel: slog.LevelWarn, LogMsg: "Document Conflict"},
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithLogger sets the logger failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithErrorClassifier sets the classifier HandleErrors consults.
func WithErrorClassifier(classifier ErrorClassifierFunc) Option {
	return func(r *Responder) { r.classifier = classifier }
}

// WithStatusMetadata overrides the log level and message for one status.
func WithStatusMetadata(status int, meta StatusMetadata) Option {
	return func(r *Responder) { r.statuses[status] = meta }
}

// Logger returns the logger failures are reported to.
func (r *Responder) Logger() *slog.Logger {
	if r == nil || r.log == nil {
		return slog.Default()
	}
	return r.log
}

func (r *Responder) classifyError(err error) (int, bool) {
	if r == nil || r.classifier == nil {
		return 0, false
	}
	return r.classifier(err)
}

func (r *Responder) statusMeta(status int) StatusMetadata {
	var (
		meta StatusMetadata
		ok   bool
	)
	if r != nil {
		meta, ok = r.statuses[status]
	}
	if !ok {
		meta.LogLevel = slog.LevelWarn
		if status >= http.StatusInternalServerError {
			meta.LogLevel = slog.LevelError
		}
	}
	if meta.LogMsg == "" {
		meta.LogMsg = http.StatusText(status)
	}
	if meta.LogMsg == "" {
		meta.LogMsg = "Request failed"
	}
	return meta
}
