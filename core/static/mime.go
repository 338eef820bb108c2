package static

import (
	"mime"
	"path/filepath"
	"strings"
)

// contentTypeOverrides pins extensions whose platform MIME table entries
// are missing or inconsistent across systems.
var contentTypeOverrides = map[string]string{
	".js":          "application/javascript",
	".css":         "text/css",
	".json":        "application/json",
	".webmanifest": "application/manifest+json",
	".svg":         "image/svg+xml",
}

// ContentType maps a file path to a MIME type. Explicit overrides are
// consulted first, then the platform extension table, then
// application/octet-stream. Always returns a value.
func ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))

	if ct, ok := contentTypeOverrides[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
