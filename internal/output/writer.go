// Package output writes rendered documents to disk or to a stream.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/sanixdarker/gqlmd/pkg/docs"
	"github.com/spf13/afero"
)

// Writer writes rendered documents. With Dir set every non-empty document
// becomes <name>.md inside Dir; otherwise documents are printed to Stdout.
type Writer struct {
	Fs          afero.Fs
	Dir         string
	Stdout      io.Writer
	FrontMatter *FrontMatter
	// HTML also writes <name>.html next to each Markdown file.
	HTML bool
}

// Write writes documents and returns the paths of the files it created.
// Stdout mode returns no paths. Empty documents are skipped either way.
func (w *Writer) Write(documents map[string]string) ([]string, error) {
	names := make([]string, 0, len(documents))
	for name, content := range documents {
		if content != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	if w.Dir == "" {
		return nil, w.writeStream(documents, names)
	}
	return w.writeFiles(documents, names)
}

func (w *Writer) writeStream(documents map[string]string, names []string) error {
	if w.Stdout == nil {
		return fmt.Errorf("no output configured")
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w.Stdout, documents[name]); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

func (w *Writer) writeFiles(documents map[string]string, names []string) ([]string, error) {
	fs := w.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if err := fs.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, name := range names {
		content := documents[name]

		header, err := w.FrontMatter.Render(Document{Name: name, Title: docs.Title(name)})
		if err != nil {
			return written, err
		}

		path := filepath.Join(w.Dir, name+".md")
		if err := afero.WriteFile(fs, path, []byte(header+content), 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)

		if !w.HTML {
			continue
		}
		page, err := RenderHTML(name, content, HTMLOptions{LinkExtension: ".html"})
		if err != nil {
			return written, err
		}
		path = filepath.Join(w.Dir, name+".html")
		if err := afero.WriteFile(fs, path, page, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
