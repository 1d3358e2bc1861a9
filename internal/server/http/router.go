package httpserver

import "net/http"

// NewRouter mounts the JSON API under /api/ and, when webDir is set, serves
// static files from it at /.
func NewRouter(h *Handler, webDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	if webDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(webDir)))
	}
	return mux
}
