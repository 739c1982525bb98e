// Package web holds the embedded page templates and the widget script.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"math"
	"net/http"
	"strings"
	"time"
)

//go:embed templates/*.gohtml static/*
var files embed.FS

var pageNames = []string{"dashboard", "health", "nutrition", "schedule", "workouts", "workout", "notfound", "unauthorized"}

// Page is the data handed to base.gohtml.
type Page struct {
	Title  string
	Active string
	Data   any
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, name := range pageNames {
		t, err := template.New("base.gohtml").Funcs(funcs).ParseFS(files, "templates/base.gohtml", "templates/"+name+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "base.gohtml", page)
}

// Static serves the files under static/ (mount with StripPrefix).
func Static() http.Handler {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

var blockColors = map[string]string{
	"workout":  "orange",
	"meal":     "green",
	"work":     "blue",
	"class":    "purple",
	"personal": "gray",
	"sleep":    "indigo",
}

var funcs = template.FuncMap{
	"num": func(v float64) string {
		if v == math.Trunc(v) {
			return fmt.Sprintf("%.0f", v)
		}
		return strings.TrimRight(fmt.Sprintf("%.1f", v), "0")
	},
	"pct": func(v float64) string { return fmt.Sprintf("%.0f%%", v) },
	"day": func(t time.Time) string { return t.Format("Mon, Jan 2") },
	"clock": func(t time.Time) string {
		return t.Format("3:04 PM")
	},
	"color": func(kind string) string {
		if c, ok := blockColors[kind]; ok {
			return c
		}
		return "gray"
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	},
}
