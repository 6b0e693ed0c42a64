// Package view renders the server-side HTML pages. Templates live on disk
// under templates/; each page defines a "content" block pulled into
// layout.html. Parsed templates are cached except in DEV mode.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	baseDir  string
	once     sync.Once
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}
)

func detectBase() {
	// works whether the binary runs from the repo root or a subdir (tests)
	candidates := []string{"templates", "../templates", "../../templates"}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			baseDir = filepath.Clean(c)
			return
		}
	}
	baseDir = "templates"
}

// Funcs returns the shared template helpers.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}
}

func load(name string) (*template.Template, error) {
	dev := os.Getenv("DEV") == "1"
	if !dev {
		tplCache.RLock()
		tpl, ok := tplCache.m[name]
		tplCache.RUnlock()
		if ok {
			return tpl, nil
		}
	}
	tpl, err := template.New("layout.html").Funcs(Funcs()).ParseFiles(
		filepath.Join(baseDir, "layout.html"),
		filepath.Join(baseDir, name),
	)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	if !dev {
		tplCache.Lock()
		tplCache.m[name] = tpl
		tplCache.Unlock()
	}
	return tpl, nil
}

// Render executes the named page template inside the layout. name is a path
// relative to templates/, e.g. "products/list.html". The page is buffered so
// a template error never leaves a half-written response.
func Render(w http.ResponseWriter, name string, data map[string]any) error {
	once.Do(detectBase)
	if data == nil {
		data = map[string]any{}
	}
	tpl, err := load(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = buf.WriteTo(w)
	return err
}
