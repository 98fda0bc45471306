// Package views holds the HTML pages rendered by the route handlers.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	AddEmployee       = "addemp.html"
	AddEmployeeOutput = "addempoutput.html"
	About             = "about.html"
	GetEmployee       = "getemp.html"
	GetEmployeeOutput = "getempoutput.html"
	Error             = "error.html"
)

// Templates parses every embedded page together with the shared layout.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
