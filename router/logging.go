package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"
)

// loggingMiddleware logs one line per request after it completes. Client
// errors log at info, server errors at warn and everything else at debug.
func loggingMiddleware(logger *slog.Logger, cfg Config) Middleware {
	quiet := slices.Clone(cfg.QuietdownRoutes)
	hidden := make([]string, len(cfg.HideHeaders))
	for i, name := range cfg.HideHeaders {
		hidden[i] = http.CanonicalHeaderKey(name)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(quiet, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)),
				slog.Any("header", redactedHeaders(r.Header, hidden)),
			}
			if r.ContentLength > 0 {
				attrs = append(attrs, slog.Int64("contentLength", r.ContentLength))
			}
			logger.LogAttrs(r.Context(), responseLevel(rec.status), "Request", attrs...)
		})
	}
}

func responseLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelWarn
	case status >= http.StatusBadRequest:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// redactedHeaders copies headers, replacing the values of hidden ones with
// their total length.
func redactedHeaders(headers http.Header, hidden []string) http.Header {
	out := headers.Clone()
	for _, name := range hidden {
		values, ok := out[name]
		if !ok {
			continue
		}
		size := 0
		for _, v := range values {
			size += len(v)
		}
		out[name] = []string{fmt.Sprintf("[REDACTED - %d bytes]", size)}
	}
	return out
}
