package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sanixdarker/gqlmd/internal/app"
	"github.com/sanixdarker/gqlmd/internal/output"
	"github.com/sanixdarker/gqlmd/internal/source"
	"github.com/sanixdarker/gqlmd/pkg/docs"
	"github.com/spf13/afero"
)

// render loads the configured schema, renders it and writes the documents.
func render(ctx context.Context, a *app.App, fs afero.Fs, stdin io.Reader, stdout io.Writer) error {
	cfg := a.Config
	if cfg.HTML && cfg.OutDir == "" {
		return errors.New("--html requires --out-dir")
	}

	headers, err := cfg.RequestHeaders()
	if err != nil {
		return err
	}
	fm, err := output.ParseFrontMatter(cfg.FrontMatter)
	if err != nil {
		return err
	}
	if keys := fm.Keys(); len(keys) > 0 {
		if cfg.OutDir == "" {
			a.Logger.Warn("front matter ignored without --out-dir", "keys", keys)
		} else {
			a.Logger.Debug("front matter", "keys", keys)
		}
	}

	opts := source.Options{
		URL:     cfg.URL,
		Headers: headers,
		JSON:    cfg.JSON,
		Schema:  cfg.Schema,
		Fetcher: a.Client,
		Fs:      fs,
		Stdin:   stdin,
	}
	a.Logger.Debug("loading schema", "source", opts.Kind())

	s, err := source.Load(ctx, opts)
	if err != nil {
		return err
	}
	a.Logger.Debug("schema loaded", "types", len(s.Types))

	w := &output.Writer{
		Fs:          fs,
		Dir:         cfg.OutDir,
		Stdout:      stdout,
		FrontMatter: fm,
		HTML:        cfg.HTML,
	}
	written, err := w.Write(docs.Render(s))
	if err != nil {
		return fmt.Errorf("failed to write documents: %w", err)
	}
	if cfg.OutDir != "" {
		a.Logger.Info("documents written", "dir", cfg.OutDir, "files", len(written))
	}
	return nil
}
