// Package assets serves the files mounted under /static, either from a local
// directory or from an S3 compatible bucket.
package assets

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Source serves one static asset. It returns false when name does not
// resolve, leaving the response untouched.
type Source interface {
	Serve(w http.ResponseWriter, r *http.Request, name string) bool
}

// Handler serves the wildcard part of a "/static/*" route from src and falls
// back to notFound for anything src does not have.
func Handler(src Source, notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !src.Serve(w, r, chi.URLParam(r, "*")) {
			notFound(w, r)
		}
	}
}
