package view

import (
	"bytes"
	"strings"
	"testing"
)

func TestTemplates_RenderEveryPage(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}

	for _, page := range []string{"signup.html", "signin.html", "thankyou.html", "secretPage.html"} {
		t.Run(page, func(t *testing.T) {
			var buf bytes.Buffer
			err := tmpl.ExecuteTemplate(&buf, page, map[string]any{
				"Title": "Test",
				"Flashes": []struct{ Category, Message string }{
					{Category: "danger", Message: "<b>careful</b>"},
				},
			})
			if err != nil {
				t.Fatalf("failed to render: %v", err)
			}
			body := buf.String()
			if !strings.Contains(body, `class="alert alert-danger"`) {
				t.Error("expected flash message to be rendered")
			}
			if strings.Contains(body, "<b>careful</b>") {
				t.Error("expected flash message to be escaped")
			}
		})
	}
}
