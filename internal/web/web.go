// Package web holds the public page template and its static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"

	"github.com/yoockh/portfolio/internal/models"
	"github.com/yoockh/portfolio/internal/render"
	"github.com/yoockh/portfolio/internal/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Flash is a one-shot message shown after a contact form redirect.
type Flash struct {
	Level   string // "success" or "error"
	Message string
}

// PageView is the data the index template renders.
type PageView struct {
	Profile *models.Profile
	Flash   *Flash
}

// Static returns the embedded static directory, rooted at its contents.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Templates parses the embedded templates with the helpers they use.
func Templates(urls storage.URLResolver, md *render.Markdown) (*template.Template, error) {
	funcs := template.FuncMap{
		"media": func(key string) string {
			if key == "" || urls == nil {
				return ""
			}
			return urls.URL(key)
		},
		"markdown": md.HTML,
		"fullName": func(a *models.Account) string {
			if a == nil {
				return ""
			}
			name := strings.TrimSpace(a.FirstName + " " + a.LastName)
			if name == "" {
				return a.Username
			}
			return name
		},
		"inc": func(i int) int { return i + 1 },
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
