// Package web renders the HTML pages served next to the JSON API.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// IndexTemplate is rendered for "/" and for every request that matches no route.
const IndexTemplate = "index"

type Renderer struct {
	templates map[string]*template.Template
	logger    *zap.Logger
}

// NewRenderer parses every *.html file in dir. A template is named after its
// file name up to the first dot, so "index.html.tmpl" becomes "index".
func NewRenderer(dir string, logger *zap.Logger) (*Renderer, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.html*"))
	if err != nil {
		return nil, fmt.Errorf("list templates in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", dir)
	}

	rn := &Renderer{templates: make(map[string]*template.Template, len(files)), logger: logger}
	for _, f := range files {
		name := strings.SplitN(filepath.Base(f), ".", 2)[0]
		if _, dup := rn.templates[name]; dup {
			return nil, fmt.Errorf("template %q defined twice in %s", name, dir)
		}
		src, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", f, err)
		}
		t, err := template.New(name).Parse(string(src))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", f, err)
		}
		rn.templates[name] = t
	}
	return rn, nil
}

func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}

// Render executes into a buffer so a failing template never leaves a half
// written page behind.
func (rn *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) {
	t, ok := rn.templates[name]
	if !ok {
		rn.logger.Error("unknown template", zap.String("template", name))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		rn.logger.Error("render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Root renders the index page with an empty context.
func (rn *Renderer) Root(w http.ResponseWriter, r *http.Request) {
	rn.Render(w, http.StatusOK, IndexTemplate, map[string]string{})
}

// NotFound renders the index page with status 404.
func (rn *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rn.Render(w, http.StatusNotFound, IndexTemplate, map[string]string{})
}
