package static

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/klauspost/compress/gzip"

	"github.com/dmitrymomot/spaserve/core/handler"
	"github.com/dmitrymomot/spaserve/core/logger"
)

// Responder creates the request handler for serving a single-page
// application from root: path resolution, SPA fallback, content type
// inference, conditional whole-body gzip, and cache headers.
//
// Compression buffers the entire payload so Content-Length is always the
// exact transmitted byte count.
//
// Panics at startup if the root directory doesn't exist.
func Responder(root string, opts ...Option) handler.HandlerFunc {
	config := &responderConfig{
		policy: DefaultPolicy(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(config)
	}

	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			panic("static.Responder: root directory does not exist: " + root)
		}
		panic("static.Responder: error accessing root directory: " + err.Error())
	}
	if !info.IsDir() {
		panic("static.Responder: root path is not a directory: " + root)
	}

	policy := config.policy
	log := config.logger

	return func(ctx *handler.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				w.Header().Set("Allow", "GET, HEAD")
				w.WriteHeader(http.StatusMethodNotAllowed)
				return nil
			}

			target := policy.Resolve(root, r.URL.Path)

			for _, kv := range policy.cacheControl(target.Path) {
				w.Header().Set(kv[0], kv[1])
			}

			if !target.Exists {
				return writePlain(w, r, http.StatusNotFound, "404 file not found\n")
			}

			body, err := os.ReadFile(target.FSPath)
			switch {
			case err == nil:
				// fall through to encoding
			case errors.Is(err, fs.ErrNotExist):
				// File vanished between resolution and read.
				return writePlain(w, r, http.StatusNotFound, "404 file not found\n")
			default:
				log.LogAttrs(r.Context(), slog.LevelError, "failed to read file",
					logger.File(target.FSPath),
					logger.Path(r.URL.Path),
					logger.Error(err),
				)
				return writePlain(w, r, http.StatusInternalServerError, "internal server error\n")
			}

			contentType := ContentType(target.FSPath)

			encoded := false
			if policy.shouldCompress(r.Header.Get("Accept-Encoding"), contentType, len(body)) {
				compressed, err := gzipBytes(body)
				if err != nil {
					log.LogAttrs(r.Context(), slog.LevelError, "failed to compress response",
						logger.File(target.FSPath),
						logger.Error(err),
					)
					return writePlain(w, r, http.StatusInternalServerError, "internal server error\n")
				}
				body = compressed
				encoded = true
			}

			h := w.Header()
			h.Set("Content-Type", contentType)
			h.Set("Content-Length", strconv.Itoa(len(body)))
			if encoded {
				h.Set("Content-Encoding", "gzip")
			}

			w.WriteHeader(http.StatusOK)
			if r.Method == http.MethodHead {
				return nil
			}
			_, err = w.Write(body)
			return err
		}
	}
}

// writePlain sends a small plain-text status response. HEAD requests get
// headers only.
func writePlain(w http.ResponseWriter, r *http.Request, status int, body string) error {
	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)

	if r.Method == http.MethodHead {
		return nil
	}
	_, err := w.Write([]byte(body))
	return err
}

// gzipBytes compresses the whole payload in memory.
func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
