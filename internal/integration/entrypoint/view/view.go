// Package view holds the embedded HTML pages served by the page controller.
package view

import (
	"embed"
	"html/template"
)

//go:embed *.html
var pageFS embed.FS

// Templates parses every embedded page. Each page is addressed by its file name.
func Templates() (*template.Template, error) {
	return template.ParseFS(pageFS, "*.html")
}
