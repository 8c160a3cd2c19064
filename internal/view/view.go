// Package view holds the HTML pages rendered by the browser-facing routes.
package view

import (
	"embed"
	"html/template"

	"github.com/noah-isme/classroom-availability-api/internal/dto"
)

//go:embed templates/*.html
var files embed.FS

// Page template names.
const (
	PageSearchResults = "search_results.html"
	PageSearchEmpty   = "search_empty.html"
	PageBadRequest    = "bad_request.html"
	PageLoginSuccess  = "login_success.html"
	PageLoginFailure  = "login_failure.html"
)

// SearchPage is the data passed to the search result pages.
type SearchPage struct {
	Title  string
	Result *dto.RoomSearchResult
}

// MessagePage is the data passed to pages that only show a notice.
type MessagePage struct {
	Title   string
	Heading string
	Message string
}

// Templates parses every embedded page. Values are escaped by html/template.
func Templates() (*template.Template, error) {
	return template.New("pages").ParseFS(files, "templates/*.html")
}

// MustTemplates is Templates for use during startup and in tests.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
