package static_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spaserve/core/handler"
	"github.com/dmitrymomot/spaserve/core/logger"
	"github.com/dmitrymomot/spaserve/core/static"
)

// appDir builds a SPA directory with files sized around the compression
// threshold.
func appDir(t *testing.T) (root string, files map[string][]byte) {
	t.Helper()

	root = t.TempDir()
	files = map[string][]byte{
		"index.html":   []byte("<!DOCTYPE html><html><body><div id=\"app\"></div></body></html>"),
		"app.js":       bytes.Repeat([]byte("console.log('sun');"), 79), // 1501 bytes
		"small.css":    []byte("body { margin: 0; }"),
		"sw.js":        bytes.Repeat([]byte("self.skipWaiting();\n"), 100), // 2000 bytes
		"logo.png":     bytes.Repeat([]byte{0x89, 0x50, 0x4e, 0x47}, 500),
		"privacy.html": []byte("<html><body>privacy policy</body></html>"),
		"notes.txt":    bytes.Repeat([]byte("plain text notes\n"), 100),
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), content, 0644))
	}
	return root, files
}

func serve(t *testing.T, h handler.HandlerFunc, method, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	handler.Wrap(h, nil).ServeHTTP(w, req)
	return w
}

func gunzip(t *testing.T, data []byte) []byte {
	t.Helper()

	r, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return out
}

func TestResponderServing(t *testing.T) {
	t.Parallel()

	root, files := appDir(t)
	h := static.Responder(root)

	tests := []struct {
		name        string
		path        string
		status      int
		body        []byte
		contentType string
	}{
		{
			name:        "existing_file_served_verbatim",
			path:        "/small.css",
			status:      http.StatusOK,
			body:        files["small.css"],
			contentType: "text/css",
		},
		{
			name:        "root_serves_index",
			path:        "/",
			status:      http.StatusOK,
			body:        files["index.html"],
			contentType: "text/html; charset=utf-8",
		},
		{
			name:        "index_requested_directly",
			path:        "/index.html",
			status:      http.StatusOK,
			body:        files["index.html"],
			contentType: "text/html; charset=utf-8",
		},
		{
			name:        "unknown_route_falls_back_to_index",
			path:        "/unknown/route",
			status:      http.StatusOK,
			body:        files["index.html"],
			contentType: "text/html; charset=utf-8",
		},
		{
			name:        "nested_unknown_route_falls_back",
			path:        "/users/123/profile",
			status:      http.StatusOK,
			body:        files["index.html"],
			contentType: "text/html; charset=utf-8",
		},
		{
			name:   "excluded_prefix_missing_file_is_honest_404",
			path:   "/privacy",
			status: http.StatusNotFound,
		},
		{
			name:   "excluded_prefix_subpath_is_honest_404",
			path:   "/privacy/terms",
			status: http.StatusNotFound,
		},
		{
			name:        "existing_file_under_excluded_prefix_still_served",
			path:        "/privacy.html",
			status:      http.StatusOK,
			body:        files["privacy.html"],
			contentType: "text/html; charset=utf-8",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := serve(t, h, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.status, w.Code)

			if tt.body != nil {
				assert.Equal(t, tt.body, w.Body.Bytes())
			}
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			}

			// Content-Length must be the exact transmitted byte count.
			cl, err := strconv.Atoi(w.Header().Get("Content-Length"))
			require.NoError(t, err)
			assert.Equal(t, w.Body.Len(), cl)
		})
	}
}

func TestResponderCompression(t *testing.T) {
	t.Parallel()

	root, files := appDir(t)
	h := static.Responder(root)

	gzipHeader := http.Header{"Accept-Encoding": []string{"gzip, deflate, br"}}

	t.Run("compressible_large_file_with_gzip_accepted", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/app.js", gzipHeader)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/javascript", w.Header().Get("Content-Type"))
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
		assert.Equal(t, "public, max-age=31536000", w.Header().Get("Cache-Control"))

		// Round trip: decompressing must reproduce the original bytes.
		assert.Equal(t, files["app.js"], gunzip(t, w.Body.Bytes()))

		cl, err := strconv.Atoi(w.Header().Get("Content-Length"))
		require.NoError(t, err)
		assert.Equal(t, w.Body.Len(), cl)
	})

	t.Run("no_gzip_without_accept_encoding", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/app.js", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, files["app.js"], w.Body.Bytes())
	})

	t.Run("small_file_below_threshold_stays_identity", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/small.css", gzipHeader)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, files["small.css"], w.Body.Bytes())
	})

	t.Run("non_compressible_type_stays_identity", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/logo.png", gzipHeader)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, files["logo.png"], w.Body.Bytes())
	})

	t.Run("plain_text_above_threshold_compressed", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/notes.txt", gzipHeader)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
		assert.Equal(t, files["notes.txt"], gunzip(t, w.Body.Bytes()))
	})

	t.Run("threshold_raised_by_option", func(t *testing.T) {
		t.Parallel()

		big := static.Responder(root, static.WithMinCompressSize(1<<20))
		w := serve(t, big, http.MethodGet, "/app.js", gzipHeader)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Content-Encoding"))
	})
}

func TestResponderCacheHeaders(t *testing.T) {
	t.Parallel()

	root, files := appDir(t)
	h := static.Responder(root)

	t.Run("service_worker_never_cached", func(t *testing.T) {
		t.Parallel()

		// Accept-Encoding must not change the cache directives.
		for _, header := range []http.Header{nil, {"Accept-Encoding": []string{"gzip"}}} {
			w := serve(t, h, http.MethodGet, "/sw.js", header)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
			assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
			assert.Equal(t, "0", w.Header().Get("Expires"))
		}
	})

	t.Run("service_worker_still_compressible", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/sw.js", http.Header{"Accept-Encoding": []string{"gzip"}})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
		assert.Equal(t, files["sw.js"], gunzip(t, w.Body.Bytes()))
	})

	t.Run("html_cached_one_hour", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/index.html", nil)
		assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
	})

	t.Run("root_and_index_have_identical_headers_and_body", func(t *testing.T) {
		t.Parallel()

		slash := serve(t, h, http.MethodGet, "/", nil)
		index := serve(t, h, http.MethodGet, "/index.html", nil)

		assert.Equal(t, index.Body.Bytes(), slash.Body.Bytes())
		assert.Equal(t, index.Header().Get("Cache-Control"), slash.Header().Get("Cache-Control"))
		assert.Equal(t, index.Header().Get("Content-Type"), slash.Header().Get("Content-Type"))
	})

	t.Run("asset_cached_one_year", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/logo.png", nil)
		assert.Equal(t, "public, max-age=31536000", w.Header().Get("Cache-Control"))
	})

	t.Run("unmatched_suffix_has_no_cache_header", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/notes.txt", nil)
		assert.Empty(t, w.Header().Get("Cache-Control"))
	})

	t.Run("fallback_route_carries_html_cache_rule", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/unknown/route", nil)
		assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
	})
}

func TestResponderMethods(t *testing.T) {
	t.Parallel()

	root, _ := appDir(t)
	h := static.Responder(root)

	t.Run("head_returns_headers_without_body", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodHead, "/index.html", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("Content-Length"))
		assert.Zero(t, w.Body.Len())
	})

	t.Run("post_not_allowed", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodPost, "/index.html", nil)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
	})
}

func TestResponderTraversal(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	root := filepath.Join(parent, "public")
	require.NoError(t, os.Mkdir(root, 0755))

	index := []byte("<html>shell</html>")
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), index, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("do not serve"), 0644))

	h := static.Responder(root)

	for _, path := range []string{"/../secret.txt", "/a/../../secret.txt", "/%2e%2e/secret.txt"} {
		w := serve(t, h, http.MethodGet, path, nil)
		assert.NotEqual(t, "do not serve", w.Body.String(), "path %q must not escape the root", path)
	}
}

func TestResponderMissingFallback(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.js"), []byte("js"), 0644))

	h := static.Responder(root)

	// The file itself is served; anything else 404s because the fallback
	// document does not exist either.
	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/app.js", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, h, http.MethodGet, "/missing", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, h, http.MethodGet, "/", nil).Code)
}

func TestResponderDirectoryFallsBack(t *testing.T) {
	t.Parallel()

	root, files := appDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "assets"), 0755))

	h := static.Responder(root)
	w := serve(t, h, http.MethodGet, "/assets", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, files["index.html"], w.Body.Bytes())
}

func TestResponderOptions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "shell.html"), []byte("custom shell"), 0644))

	h := static.Responder(root,
		static.WithFallback("/shell.html"),
		static.WithExcludedPrefixes("/internal"),
	)

	t.Run("custom_fallback_used", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/anything", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "custom shell", w.Body.String())
	})

	t.Run("custom_excluded_prefix_404s", func(t *testing.T) {
		t.Parallel()

		w := serve(t, h, http.MethodGet, "/internal/admin", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestResponderPanicsOnMissingRoot(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		static.Responder(filepath.Join(t.TempDir(), "nope"))
	})
}

func TestResponderLogsReadFailures(t *testing.T) {
	t.Parallel()

	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked.html")
	require.NoError(t, os.WriteFile(locked, bytes.Repeat([]byte("x"), 64), 0000))

	var logBuf bytes.Buffer
	h := static.Responder(root, static.WithLogger(logger.New(logger.WithOutput(&logBuf))))

	w := serve(t, h, http.MethodGet, "/locked.html", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The client gets a generic body, the log gets the detail.
	assert.Equal(t, "internal server error\n", w.Body.String())
	assert.Contains(t, logBuf.String(), "locked.html")
}
