// Package views 包含站点的 HTML 模板与静态文件。
package views

import (
	"embed"
	"fmt"
	"github.com/labstack/echo/v4"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
	"excerpt": func(s string, n int) string {
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return strings.TrimSpace(string(runes[:n])) + "…"
	},
}

type Renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Static 返回 /static 下的文件
func Static() fs.FS {
	return echo.MustSubFS(staticFS, "static")
}
