package static

import (
	"mime"
	"strings"
)

// CacheRule maps path suffixes to a Cache-Control directive.
// Rules are evaluated in order against the lower-cased canonical request
// path; the first matching rule wins.
type CacheRule struct {
	Suffixes     []string `yaml:"suffixes"`
	CacheControl string   `yaml:"cache_control"`
}

// Policy is the immutable serving configuration: fallback document,
// excluded prefixes, service worker handling, compression thresholds, and
// cache rules. Built once at startup; requests only read it.
type Policy struct {
	// Fallback is the document served for unknown routes (SPA shell).
	Fallback string

	// ServiceWorkerPath is served verbatim and never cached.
	ServiceWorkerPath string

	// ExcludedPrefixes lists request path prefixes that never fall back
	// to the SPA shell; missing files under them return an honest 404.
	ExcludedPrefixes []string

	// CompressibleTypes lists MIME types eligible for gzip encoding.
	CompressibleTypes []string

	// MinCompressSize is the body size in bytes above which compression
	// is considered.
	MinCompressSize int

	// CacheRules is the ordered suffix-to-directive table. The service
	// worker path is checked before any rule.
	CacheRules []CacheRule
}

// DefaultCacheRules returns the standard SPA cache table: HTML for an
// hour, fingerprinted static assets for a year.
func DefaultCacheRules() []CacheRule {
	return []CacheRule{
		{Suffixes: []string{".html"}, CacheControl: "public, max-age=3600"},
		{
			Suffixes: []string{
				".css", ".js", ".png", ".jpg", ".jpeg",
				".gif", ".ico", ".svg", ".woff", ".woff2",
			},
			CacheControl: "public, max-age=31536000",
		},
	}
}

// DefaultPolicy returns the serving policy used when no overrides are given.
func DefaultPolicy() Policy {
	return Policy{
		Fallback:          "/index.html",
		ServiceWorkerPath: "/sw.js",
		ExcludedPrefixes:  []string{"/privacy"},
		CompressibleTypes: []string{
			"text/html",
			"text/css",
			"text/plain",
			"application/javascript",
			"application/json",
			"application/xml",
			"application/manifest+json",
			"image/svg+xml",
		},
		MinCompressSize: 1024,
		CacheRules:      DefaultCacheRules(),
	}
}

// excluded reports whether the request path starts with an excluded prefix.
func (p Policy) excluded(requestPath string) bool {
	for _, prefix := range p.ExcludedPrefixes {
		if strings.HasPrefix(requestPath, prefix) {
			return true
		}
	}
	return false
}

// compressible reports whether the content type (parameters ignored) is in
// the compressible set.
func (p Policy) compressible(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}
	for _, t := range p.CompressibleTypes {
		if strings.EqualFold(t, mediaType) {
			return true
		}
	}
	return false
}

// shouldCompress decides the gzip question for one response: the client
// must advertise gzip, the type must be compressible, and the body must
// exceed the size threshold.
func (p Policy) shouldCompress(acceptEncoding, contentType string, bodyLen int) bool {
	return strings.Contains(acceptEncoding, "gzip") &&
		p.compressible(contentType) &&
		bodyLen > p.MinCompressSize
}

// cacheControl returns the ordered header pairs for the canonical request
// path. The service worker path always wins and carries the full no-cache
// set; otherwise the first matching suffix rule applies. An empty result
// means no explicit cache header (HTTP defaults apply).
func (p Policy) cacheControl(requestPath string) [][2]string {
	lower := strings.ToLower(requestPath)

	if p.ServiceWorkerPath != "" && lower == strings.ToLower(p.ServiceWorkerPath) {
		return [][2]string{
			{"Cache-Control", "no-cache, no-store, must-revalidate"},
			{"Pragma", "no-cache"},
			{"Expires", "0"},
		}
	}

	for _, rule := range p.CacheRules {
		for _, suffix := range rule.Suffixes {
			if strings.HasSuffix(lower, suffix) {
				return [][2]string{{"Cache-Control", rule.CacheControl}}
			}
		}
	}

	return nil
}
