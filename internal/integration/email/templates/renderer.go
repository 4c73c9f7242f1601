// Package templates renders the embedded welcome email.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed welcome.html welcome.txt
var templateFS embed.FS

// WelcomeData contains data for the welcome email template.
type WelcomeData struct {
	FirstName string
	SigninURL string
}

// Renderer renders the HTML and plain text welcome bodies.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded welcome templates.
func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "welcome.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse welcome.html: %w", err)
	}

	text, err := texttemplate.ParseFS(templateFS, "welcome.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse welcome.txt: %w", err)
	}

	return &Renderer{html: html, text: text}, nil
}

// Welcome renders both bodies of the welcome email.
func (r *Renderer) Welcome(data WelcomeData) (html string, text string, err error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := r.html.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to render welcome.html: %w", err)
	}
	if err := r.text.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to render welcome.txt: %w", err)
	}
	return htmlBuf.String(), textBuf.String(), nil
}
