package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// StaticHandler serves the landing page, static assets, and the catch-all
// 404 with Accept-header negotiation (HTML, JSON, or plain text).
type StaticHandler struct {
	webDir string
}

func NewStaticHandler(webDir string) *StaticHandler {
	return &StaticHandler{webDir: webDir}
}

func (h *StaticHandler) RegisterRoutes(r chi.Router) {
	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(filepath.Join(h.webDir, "static"))))
	r.Get("/", h.index)
	r.Get("/index.html", h.index)
	r.Handle("/static/*", fs)
	r.NotFound(h.NotFound)
}

func (h *StaticHandler) index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.webDir, "views", "index.html"))
}

// NotFound negotiates the body format the way the original edge did:
// HTML page, JSON message, or plain text, in that order of preference.
func (h *StaticHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	accept := r.Header.Get("Accept")
	switch {
	case strings.Contains(accept, "text/html"), strings.Contains(accept, "*/*"), accept == "":
		f, err := os.Open(filepath.Join(h.webDir, "views", "404.html"))
		if err != nil {
			http.Error(w, "404 Not Found", http.StatusNotFound)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		io.Copy(w, f)
	case strings.Contains(accept, "application/json"):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "404 Not Found"}`))
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("404 Not Found"))
	}
}
