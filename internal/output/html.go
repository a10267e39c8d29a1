package output

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/sanixdarker/gqlmd/pkg/docs"
	"github.com/sanixdarker/gqlmd/web"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Raw HTML stays enabled because type headers carry named anchors;
// web.Sanitize cleans the result.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

var (
	documentLink = regexp.MustCompile(`^([a-z]+)\.md(#.*)?$`)
	namedAnchor  = regexp.MustCompile(`<a name="([^"]+)">`)
)

// HTMLOptions controls how a document is turned into a page.
type HTMLOptions struct {
	// LinkExtension replaces .md in links between documents, e.g. ".html".
	// Empty keeps links unchanged.
	LinkExtension string
	// StylesheetURL links an external stylesheet instead of inlining the
	// embedded one.
	StylesheetURL string
}

// RenderHTML converts a Markdown document into a standalone HTML page with
// a table of contents built from its second level headings.
func RenderHTML(name, markdown string, opts HTMLOptions) ([]byte, error) {
	src := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(src))

	var headings []web.Heading
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 2 {
				headings = append(headings, heading(node, src))
			}
		case *ast.Link:
			if opts.LinkExtension != "" {
				node.Destination = rewriteLink(node.Destination, opts.LinkExtension)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk document: %w", err)
	}

	var body bytes.Buffer
	if err := md.Renderer().Render(&body, src, doc); err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}

	page := web.Page{
		Title:         docs.Title(name),
		Headings:      headings,
		Body:          body.String(),
		StylesheetURL: opts.StylesheetURL,
	}
	if page.StylesheetURL == "" {
		css, err := web.Stylesheet()
		if err != nil {
			return nil, fmt.Errorf("failed to load stylesheet: %w", err)
		}
		page.Stylesheet = css
	}

	var out bytes.Buffer
	if err := web.RenderDocument(&out, page); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return out.Bytes(), nil
}

func heading(n *ast.Heading, src []byte) web.Heading {
	var h web.Heading
	if id, ok := n.AttributeString("id"); ok {
		if b, ok := id.([]byte); ok {
			h.ID = string(b)
		}
	}

	var label bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			label.Write(node.Segment.Value(src))
		case *ast.RawHTML:
			// A named anchor is the stable link target.
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				if m := namedAnchor.FindSubmatch(seg.Value(src)); m != nil {
					h.ID = string(m[1])
				}
			}
		}
	}
	h.Text = label.String()
	return h
}

func rewriteLink(dest []byte, ext string) []byte {
	m := documentLink.FindSubmatch(dest)
	if m == nil || !docs.IsDocument(string(m[1])) {
		return dest
	}
	return []byte(string(m[1]) + ext + string(m[2]))
}
