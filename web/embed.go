// Package web provides embedded web assets.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/microcosm-cc/bluemonday"
)

// htmlPolicy sanitizes rendered documents. Named anchors are the link
// targets between documents, so name survives on a.
var htmlPolicy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("name").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a")
	return p
}

//go:embed templates/* static/*
var content embed.FS

// StaticFS provides access to static files.
var StaticFS fs.FS

var templates *template.Template

func init() {
	var err error
	StaticFS, err = fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}

	templates = template.New("").Funcs(template.FuncMap{
		"safe": func(s string) template.HTML {
			return template.HTML(Sanitize(s))
		},
	})

	templates, err = templates.ParseFS(content, "templates/*.html")
	if err != nil {
		panic(err)
	}
}

// Heading is an entry of a document's table of contents.
type Heading struct {
	ID   string
	Text string
}

// Page is the data rendered by the document template.
type Page struct {
	Title    string
	Headings []Heading
	Body     string
	// Stylesheet is inlined when set, for pages written to disk.
	Stylesheet template.CSS
	// StylesheetURL is linked when set, for pages served over HTTP.
	StylesheetURL string
}

// Sanitize strips everything from an HTML fragment that the document
// policy does not allow.
func Sanitize(html string) string {
	return htmlPolicy.Sanitize(html)
}

// RenderDocument renders a full HTML page around a document body.
func RenderDocument(w io.Writer, page Page) error {
	tmpl, err := templates.Clone()
	if err != nil {
		return err
	}
	return tmpl.ExecuteTemplate(w, "document.html", page)
}

// Stylesheet returns the embedded stylesheet.
func Stylesheet() (template.CSS, error) {
	data, err := fs.ReadFile(StaticFS, "style.css")
	if err != nil {
		return "", err
	}
	return template.CSS(data), nil
}

// ServeStatic returns an HTTP handler for static files.
func ServeStatic() http.Handler {
	return http.FileServer(http.FS(StaticFS))
}
