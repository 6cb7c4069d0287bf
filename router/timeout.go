package router

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/drblury/docweaver/responder"
)

const timeoutMessage = "request timed out"

// timeoutMiddleware cancels the request context after timeout. The handler
// writes into a buffer; if it has not finished by the deadline resp renders a
// 503 failure envelope instead and later writes are dropped.
func timeoutMiddleware(timeout time.Duration, resp *responder.Responder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			var panicVal any
			go func() {
				defer func() {
					panicVal = recover()
					close(done)
				}()
				next.ServeHTTP(tw, r)
			}()

			select {
			case <-done:
				if panicVal != nil {
					panic(panicVal)
				}
				tw.flush(w)
			case <-ctx.Done():
				tw.expire()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					resp.ResolveErrorResponse(w, r, http.StatusServiceUnavailable, timeoutMessage, nil)
				}
			}
		})
	}
}

// timeoutWriter buffers a handler's response until it completes in time.
type timeoutWriter struct {
	mu       sync.Mutex
	header   http.Header
	buf      bytes.Buffer
	code     int
	timedOut bool
}

func (tw *timeoutWriter) Header() http.Header { return tw.header }

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut || tw.code != 0 {
		return
	}
	tw.code = code
}

func (tw *timeoutWriter) Write(p []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if tw.code == 0 {
		tw.code = http.StatusOK
	}
	return tw.buf.Write(p)
}

func (tw *timeoutWriter) expire() {
	tw.mu.Lock()
	tw.timedOut = true
	tw.mu.Unlock()
}

func (tw *timeoutWriter) flush(w http.ResponseWriter) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	dst := w.Header()
	for k, vv := range tw.header {
		dst[k] = vv
	}
	if tw.code == 0 {
		tw.code = http.StatusOK
	}
	w.WriteHeader(tw.code)
	_, _ = w.Write(tw.buf.Bytes())
}
