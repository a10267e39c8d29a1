package output

import (
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

// FrontMatter is an ordered set of keys prepended to written documents.
// Values are templates executed with the Document being written, so
// "title:{{.Title}}" yields a per-document title.
type FrontMatter struct {
	entries []frontMatterEntry
}

type frontMatterEntry struct {
	key   string
	value *template.Template
}

// Document identifies the document front matter is rendered for.
type Document struct {
	Name  string
	Title string
}

// ParseFrontMatter parses "key:value;key2:value2". An empty string yields
// a nil FrontMatter.
func ParseFrontMatter(s string) (*FrontMatter, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	fm := &FrontMatter{}
	for _, pair := range strings.Split(s, ";") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid front matter %q: expected key:value", pair)
		}

		tmpl, err := template.New(key).Option("missingkey=error").Parse(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid front matter value for %q: %w", key, err)
		}
		fm.entries = append(fm.entries, frontMatterEntry{key: key, value: tmpl})
	}
	return fm, nil
}

// Keys returns the front matter keys in order.
func (fm *FrontMatter) Keys() []string {
	if fm == nil {
		return nil
	}
	keys := make([]string, len(fm.entries))
	for i, e := range fm.entries {
		keys[i] = e.key
	}
	return keys
}

// Render returns the YAML block for doc, fenced by --- lines and followed
// by a blank line. A nil or empty FrontMatter renders to "".
func (fm *FrontMatter) Render(doc Document) (string, error) {
	if fm == nil || len(fm.entries) == 0 {
		return "", nil
	}

	values := make(yaml.MapSlice, 0, len(fm.entries))
	for _, e := range fm.entries {
		var b strings.Builder
		if err := e.value.Execute(&b, doc); err != nil {
			return "", fmt.Errorf("failed to render front matter %q: %w", e.key, err)
		}
		values = append(values, yaml.MapItem{Key: e.key, Value: b.String()})
	}

	out, err := yaml.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}
	return "---\n" + string(out) + "---\n\n", nil
}
