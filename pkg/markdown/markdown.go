// Package markdown provides small, stateless builders for Markdown text.
package markdown

import (
	"strings"
)

// Header returns a header of the given level followed by a blank line.
func Header(level int, text string) string {
	return strings.Repeat("#", level) + " " + text + "\n\n"
}

// Description returns text as a block quote.
func Description(text string) string {
	return "> " + text + "\n\n"
}

// Notice returns text in italics on its own line.
func Notice(text string) string {
	return "_" + text + "_\n"
}

// Label returns a bold label followed by its value.
func Label(label, value string) string {
	return "**" + label + ":** " + value + "\n\n"
}

// InlineCode wraps text in backticks. Empty text stays empty.
func InlineCode(text string) string {
	if text == "" {
		return ""
	}
	return "`" + text + "`"
}

// Link returns a Markdown link. Empty text yields an empty string.
func Link(text, destination string) string {
	if text == "" {
		return ""
	}
	return "[" + text + "](" + destination + ")"
}

// NamedAnchor returns an HTML anchor named after the lowercased text,
// followed by the text itself.
func NamedAnchor(text string) string {
	return `<a name="` + strings.ToLower(text) + `"></a>` + text
}

// List returns an unordered list with a trailing blank line.
func List(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("* ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// TableRow returns a pipe-delimited table row.
func TableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |\n"
}

// TableSeparator returns the separator row for a table with n columns.
func TableSeparator(n int) string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = "---"
	}
	return TableRow(cells)
}
