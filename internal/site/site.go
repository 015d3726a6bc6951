// Package site serves the embedded landing page and its assets.
package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// RegisterRoutes mounts "/" and "/public/" on mux.
func RegisterRoutes(mux *http.ServeMux) error {
	static, err := fs.Sub(content, "static")
	if err != nil {
		return err
	}

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, static, "index.html")
	})
	mux.Handle("GET /public/", http.FileServerFS(static))
	return nil
}
