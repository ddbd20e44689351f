package api

import (
	"net/http"
)

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// GET /api
func Index(w http.ResponseWriter, r *http.Request) {
	writeText(w, "Hello, world!")
}

// GET /api/2
func Index2(w http.ResponseWriter, r *http.Request) {
	writeText(w, "Hello, world 2!")
}
