// Package page renders guest landing pages from an embedded template.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// View carries the values rendered into a guest card.
type View struct {
	Name      string
	GuestID   int
	ImagePath string
	// PhoneDisplay is the phone number as it appeared in the roster.
	PhoneDisplay string
	// DialURL is typed so the tel: scheme survives template sanitization;
	// the value is built from digits only.
	DialURL       template.URL
	ChatURL       string
	ChatService   string
	StylesheetURL string
}

// Render writes the landing page for view to w.
func Render(w io.Writer, view View) error {
	return templates.ExecuteTemplate(w, "card.html", view)
}

// WriteFile renders the landing page for view into path.
func WriteFile(path string, view View) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	if err := Render(file, view); err != nil {
		file.Close()
		return fmt.Errorf("render page: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close page: %w", err)
	}
	return nil
}
