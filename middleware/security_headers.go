package middleware

import (
	"maps"
	"net/http"

	"github.com/dmitrymomot/spaserve/core/handler"
)

// SecurityHeadersConfig configures the security headers middleware.
type SecurityHeadersConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *handler.Context) bool

	// ContentTypeOptions controls X-Content-Type-Options header
	ContentTypeOptions string

	// FrameOptions controls X-Frame-Options header
	FrameOptions string

	// XSSProtection controls X-XSS-Protection header
	XSSProtection string

	// ReferrerPolicy controls Referrer-Policy header
	ReferrerPolicy string

	// ContentSecurityPolicy controls Content-Security-Policy header
	ContentSecurityPolicy string

	// CustomHeaders allows adding additional custom security headers
	CustomHeaders map[string]string
}

// LocalDevelopment is the header set for a locally served application:
// MIME sniffing off, no framing, legacy XSS filter on, conservative
// referrer policy. No HSTS or CSP, which would get in the way of local
// tooling over plain HTTP.
var LocalDevelopment = SecurityHeadersConfig{
	ContentTypeOptions: "nosniff",
	FrameOptions:       "DENY",
	XSSProtection:      "1; mode=block",
	ReferrerPolicy:     "strict-origin-when-cross-origin",
}

// SecurityHeaders creates a security headers middleware with the
// LocalDevelopment configuration.
func SecurityHeaders() handler.Middleware {
	return SecurityHeadersWithConfig(LocalDevelopment)
}

// SecurityHeadersWithConfig creates a security headers middleware with
// custom configuration. Empty fields emit no header.
func SecurityHeadersWithConfig(cfg SecurityHeadersConfig) handler.Middleware {
	// Pre-build the header map once; requests only iterate it.
	headers := make(map[string]string)
	if cfg.ContentTypeOptions != "" {
		headers["X-Content-Type-Options"] = cfg.ContentTypeOptions
	}
	if cfg.FrameOptions != "" {
		headers["X-Frame-Options"] = cfg.FrameOptions
	}
	if cfg.XSSProtection != "" {
		headers["X-XSS-Protection"] = cfg.XSSProtection
	}
	if cfg.ReferrerPolicy != "" {
		headers["Referrer-Policy"] = cfg.ReferrerPolicy
	}
	if cfg.ContentSecurityPolicy != "" {
		headers["Content-Security-Policy"] = cfg.ContentSecurityPolicy
	}
	maps.Copy(headers, cfg.CustomHeaders)

	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx *handler.Context) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				for key, value := range headers {
					w.Header().Set(key, value)
				}
				return response(w, r)
			}
		}
	}
}
