package middleware

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/spaserve/core/handler"
)

// CORSConfig defines configuration options for the CORS middleware.
//
// The policy here is deliberately static: every response carries the same
// allow headers. A local development server has no origin list to manage,
// and the client (often a file:// page or a second dev server port) just
// needs the wildcard.
type CORSConfig struct {
	// Skip allows bypassing CORS handling for specific requests
	Skip func(ctx *handler.Context) bool

	// AllowOrigin is the Access-Control-Allow-Origin value (default: "*")
	AllowOrigin string

	// AllowMethods are the allowed HTTP methods (default: GET, POST, OPTIONS)
	AllowMethods []string

	// AllowHeaders are the allowed request headers (default: Content-Type)
	AllowHeaders []string
}

// CORS returns a CORS middleware with the default wildcard configuration.
func CORS() handler.Middleware {
	return CORSWithConfig(CORSConfig{})
}

// CORSWithConfig returns a CORS middleware with custom configuration.
// The allow headers are attached to every response; OPTIONS preflight
// requests are answered with 204 and never reach the next handler.
func CORSWithConfig(cfg CORSConfig) handler.Middleware {
	if cfg.AllowOrigin == "" {
		cfg.AllowOrigin = "*"
	}
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{"Content-Type"}
	}

	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	setHeaders := func(h http.Header) {
		h.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", allowHeaders)
	}

	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx *handler.Context) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			if ctx.Request().Method == http.MethodOptions {
				return func(w http.ResponseWriter, r *http.Request) error {
					setHeaders(w.Header())
					w.WriteHeader(http.StatusNoContent)
					return nil
				}
			}

			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				setHeaders(w.Header())
				return response(w, r)
			}
		}
	}
}
