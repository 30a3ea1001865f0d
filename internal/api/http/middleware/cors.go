package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// CORS returns a wrapper allowing cross-origin requests with credentials.
// The "*" origin reflects whatever origin the browser sends.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		opts.AllowedOrigins = allowedOrigins
	}

	return cors.New(opts).Handler
}
