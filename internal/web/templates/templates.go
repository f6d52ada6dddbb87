// Package templates renders the admin panel's HTML pages. The panel is a
// plain server-rendered app: one layout, one template per page, no client
// framework.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed *.html
var files embed.FS

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string // "success", "error", "info"
	Message string
}

// PageData is the data every page template receives
type PageData struct {
	Title    string
	Username string // empty when not logged in
	Flash    *FlashMessage
	Section  string // active nav section
	Data     any
}

var pages = map[string]*template.Template{}

func init() {
	names := []string{
		"login", "dashboard",
		"users", "user_detail",
		"regions", "region_detail",
		"enemies", "items", "media",
		"rankings", "settings",
	}
	for _, name := range names {
		pages[name] = template.Must(template.ParseFS(files, "layout.html", name+".html"))
	}
}

// Render writes the named page into w
func Render(w io.Writer, name string, data PageData) error {
	tmpl, ok := pages[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
