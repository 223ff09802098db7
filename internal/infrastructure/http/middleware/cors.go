package middleware

import (
	"net/http"
	"strings"
)

// CORS sets Access-Control-* headers and handles OPTIONS preflight.
// An allowed origin of "*" mirrors the permissive default the web client
// relies on; an empty list disables the middleware entirely.
func CORS(allowedOrigins []string) func(next http.Handler) http.Handler {
	allowAll := false
	originsSet := make(map[string]bool)
	for _, o := range allowedOrigins {
		o = strings.TrimSpace(o)
		if o == "*" {
			allowAll = true
		}
		originsSet[o] = true
	}
	const (
		methods = "GET, HEAD, PUT, PATCH, POST, DELETE, OPTIONS"
		headers = "Content-Type, Authorization"
	)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(originsSet) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			origin := r.Header.Get("Origin")
			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && originsSet[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)
			w.Header().Set("Access-Control-Max-Age", "86400")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
