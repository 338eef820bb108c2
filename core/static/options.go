package static

import "log/slog"

// responderConfig holds the assembled configuration for a Responder.
type responderConfig struct {
	policy Policy
	logger *slog.Logger
}

// Option configures Responder behavior.
type Option func(*responderConfig)

// WithPolicy replaces the whole serving policy, for example one loaded
// from a policy file.
func WithPolicy(p Policy) Option {
	return func(c *responderConfig) {
		c.policy = p
	}
}

// WithFallback sets the document served for unknown routes (default: "/index.html").
func WithFallback(path string) Option {
	return func(c *responderConfig) {
		c.policy.Fallback = path
	}
}

// WithExcludedPrefixes sets request path prefixes that never fall back to
// the SPA shell; missing files under them return 404.
func WithExcludedPrefixes(prefixes ...string) Option {
	return func(c *responderConfig) {
		c.policy.ExcludedPrefixes = prefixes
	}
}

// WithServiceWorkerPath sets the path served verbatim with no-cache
// headers (default: "/sw.js").
func WithServiceWorkerPath(path string) Option {
	return func(c *responderConfig) {
		c.policy.ServiceWorkerPath = path
	}
}

// WithCompressibleTypes sets the MIME types eligible for gzip encoding.
func WithCompressibleTypes(types ...string) Option {
	return func(c *responderConfig) {
		c.policy.CompressibleTypes = types
	}
}

// WithMinCompressSize sets the body size in bytes a response must exceed
// before it is compressed (default: 1024).
func WithMinCompressSize(n int) Option {
	return func(c *responderConfig) {
		c.policy.MinCompressSize = n
	}
}

// WithCacheRules replaces the ordered cache rule table.
func WithCacheRules(rules ...CacheRule) Option {
	return func(c *responderConfig) {
		c.policy.CacheRules = rules
	}
}

// WithLogger sets the logger used for read failures (default: slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(c *responderConfig) {
		c.logger = logger
	}
}
