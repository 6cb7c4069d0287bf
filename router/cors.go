package router

import (
	"net/http"
	"slices"
	"strings"
)

// corsMiddleware answers preflight requests itself and adds the allow-origin
// header to requests from configured origins. "*" allows every origin.
func corsMiddleware(cfg CORSConfig) Middleware {
	methods := strings.Join(cfg.Methods, ",")
	headers := strings.Join(cfg.Headers, ",")
	allowAll := slices.Contains(cfg.Origins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if allowAll || slices.Contains(cfg.Origins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)
			if cfg.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			w.WriteHeader(http.StatusOK)
		})
	}
}
