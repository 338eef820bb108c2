package static

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ResolvedTarget is the outcome of mapping a request path onto the root
// directory: the canonical request path after any rewrite, the filesystem
// path it points at, and whether a servable file exists there.
type ResolvedTarget struct {
	// Path is the request path after rewrites ("/" becomes the fallback
	// document, unknown routes become the fallback). Cache rules are
	// evaluated against it.
	Path string

	// FSPath is the file the target resolves to under the root.
	FSPath string

	// Exists is false only when even the fallback document is missing,
	// or the resolution was rejected outright.
	Exists bool
}

// Resolve maps a raw request path to a file under root.
//
// The path arrives percent-decoded (net/http decodes r.URL.Path). "" and
// "/" are treated as the fallback document; the service worker path passes
// through untouched. A resolution that would escape the root is rejected
// and never falls back. A missing file falls back to the SPA shell unless
// the request path starts with an excluded prefix.
func (p Policy) Resolve(root, rawPath string) ResolvedTarget {
	requestPath := path.Clean("/" + rawPath)

	if requestPath == "/" {
		requestPath = p.Fallback
	}

	fsPath := filepath.Join(root, filepath.FromSlash(requestPath))

	// path.Clean above already collapses ".." segments, but verify the
	// result stays inside the root before touching the filesystem.
	if !insideRoot(root, fsPath) {
		return ResolvedTarget{Path: requestPath, FSPath: fsPath, Exists: false}
	}

	if fileExists(fsPath) {
		return ResolvedTarget{Path: requestPath, FSPath: fsPath, Exists: true}
	}

	if p.excluded(requestPath) {
		return ResolvedTarget{Path: requestPath, FSPath: fsPath, Exists: false}
	}

	fallbackFS := filepath.Join(root, filepath.FromSlash(p.Fallback))
	return ResolvedTarget{
		Path:   p.Fallback,
		FSPath: fallbackFS,
		Exists: fileExists(fallbackFS),
	}
}

// fileExists reports whether path names an existing regular file.
// Directories are not servable and count as missing.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// insideRoot ensures the resolved path is within the root directory,
// guarding against directory traversal.
func insideRoot(root, resolved string) bool {
	cleanRoot := filepath.Clean(root)
	cleanPath := filepath.Clean(resolved)

	return cleanPath == cleanRoot ||
		strings.HasPrefix(cleanPath, cleanRoot+string(filepath.Separator))
}
