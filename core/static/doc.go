// Package static implements the request pipeline for serving a single-page
// application from a local directory: path resolution with SPA fallback,
// content type inference, conditional gzip compression, and cache headers.
//
// # Serving
//
// Responder returns a handler.HandlerFunc owning the whole decision
// pipeline for one directory root:
//
//	h := static.Responder("./dist",
//		static.WithExcludedPrefixes("/privacy"),
//		static.WithLogger(log),
//	)
//	http.ListenAndServe(":8000", handler.Wrap(h, nil))
//
// Requests for existing files are served as-is. Unknown routes receive the
// fallback document with status 200 so the client router can take over;
// excluded prefixes opt out of that and 404 honestly. Resolutions escaping
// the root are rejected.
//
// # Compression
//
// Responses are gzip-encoded only when the client advertises gzip, the
// content type is in the compressible set, and the body exceeds the size
// threshold (1024 bytes by default). Compression is whole-body:
// Content-Length is always the exact transmitted length.
//
// # Cache policy
//
// Cache-Control is decided by ordered suffix rules over the canonical
// request path, the service worker path first (always the full no-cache
// set), then HTML, then long-lived static assets. The table can be
// replaced through options or a YAML policy file (LoadPolicy).
package static
