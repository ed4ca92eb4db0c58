package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzhttp"
)

// mimeTypes maps file extensions to content types ahead of the stdlib's own
// resolution. Loaded once; never mutated.
var mimeTypes = map[string]string{
	".html":  "text/html",
	".htm":   "text/html",
	".css":   "text/css",
	".js":    "application/javascript",
	".mjs":   "application/javascript",
	".json":  "application/json",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".eot":   "application/vnd.ms-fontobject",
	".mp3":   "audio/mpeg",
	".wav":   "audio/wav",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".webp":  "image/webp",
	".wasm":  "application/wasm",
}

// contentType returns the override for the request path's extension, or ""
// to defer to the stdlib.
func contentType(path string) string {
	return mimeTypes[strings.ToLower(filepath.Ext(path))]
}

// headerWriter re-asserts the CORS and anti-caching headers when the status
// line is written. ServeContent deletes a pre-set Cache-Control on error
// responses, so setting it before delegating is not enough for 404s.
type headerWriter struct {
	http.ResponseWriter
}

func (w *headerWriter) WriteHeader(code int) {
	h := w.ResponseWriter.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.ResponseWriter.WriteHeader(code)
}

// fileHandler serves files out of dir with CORS and anti-caching headers on
// every response. Responses are gzipped for clients that accept it.
func fileHandler(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))

	h := func(w http.ResponseWriter, r *http.Request) {
		if ct := contentType(r.URL.Path); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")

		hw := &headerWriter{ResponseWriter: w}

		// http.FileServer answers any path ending in /index.html with a
		// redirect to the directory; serve the file itself instead.
		if strings.HasSuffix(r.URL.Path, "/index.html") {
			serveIndexFile(hw, r, dir)
			return
		}
		fileServer.ServeHTTP(hw, r)
	}

	return gzhttp.GzipHandler(http.HandlerFunc(h))
}

// serveIndexFile resolves an /index.html request against dir and serves the
// file directly, with the baseline 404 for missing files.
func serveIndexFile(w http.ResponseWriter, r *http.Request, dir string) {
	upath := r.URL.Path
	if !strings.HasPrefix(upath, "/") {
		upath = "/" + upath
	}
	name := filepath.Join(dir, filepath.FromSlash(path.Clean(upath)))

	f, err := os.Open(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, name, info.ModTime(), f)
}
