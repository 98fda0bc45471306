package views

import (
	"bytes"
	"strings"
	"testing"
)

func TestTemplates_RenderEveryPage(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}

	data := map[string]any{
		"color":        "#16a085",
		"student_name": "Jane",
		"bg_image":     "https://example.com/bg.jpg",
		"name":         "Jane Doe",
		"id":           "1",
		"fname":        "Jane",
		"lname":        "Doe",
		"interest":     "Go",
		"location":     "NY",
	}

	for _, page := range []string{AddEmployee, AddEmployeeOutput, About, GetEmployee, GetEmployeeOutput, Error} {
		t.Run(page, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tmpl.ExecuteTemplate(&buf, page, data); err != nil {
				t.Fatalf("ExecuteTemplate(%s) error = %v", page, err)
			}
			out := buf.String()
			if !strings.Contains(out, "#16a085") {
				t.Errorf("%s does not carry the theme color", page)
			}
			if !strings.Contains(out, "Jane") {
				t.Errorf("%s does not carry the display name", page)
			}
		})
	}
}

func TestTemplates_EscapeRecordFields(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, GetEmployeeOutput, map[string]any{
		"color": "#16a085",
		"fname": "<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("ExecuteTemplate() error = %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)</script>") {
		t.Error("record field rendered unescaped")
	}
}

func TestTemplates_BackgroundImage(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}

	for _, url := range []string{"https://cdn.example.com/bg.jpg", "/static/background.jpg"} {
		t.Run(url, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tmpl.ExecuteTemplate(&buf, AddEmployee, map[string]any{"color": "#16a085", "bg_image": url}); err != nil {
				t.Fatalf("ExecuteTemplate() error = %v", err)
			}
			out := buf.String()
			if strings.Contains(out, "ZgotmplZ") {
				t.Errorf("background image %q was filtered out", url)
			}
			if !strings.Contains(out, url) {
				t.Errorf("page does not reference %q", url)
			}
		})
	}
}
