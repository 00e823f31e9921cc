// Package web carries the embedded HTML templates for the admin views.
// Presentation is deliberately minimal; the interesting behavior lives
// in the handlers and stores.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, "templates/*.html"))
}
