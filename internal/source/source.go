// Package source resolves where an introspection result comes from.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sanixdarker/gqlmd/pkg/schema"
	"github.com/spf13/afero"
)

// ErrSDLNotImplemented is returned for GraphQL SDL schema files, which are
// not supported yet.
var ErrSDLNotImplemented = errors.New("GraphQL schema files are not yet implemented")

// Fetcher runs the introspection query against a remote endpoint.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, headers http.Header) ([]byte, error)
}

// Options selects the source. The first non-empty of URL, JSON and Schema
// wins; with none set the result is read from Stdin.
type Options struct {
	URL     string
	Headers http.Header
	JSON    string
	Schema  string

	Fetcher Fetcher
	Fs      afero.Fs
	Stdin   io.Reader
}

// Kind names the source Options resolves to.
func (o Options) Kind() string {
	switch {
	case o.URL != "":
		return "url"
	case o.JSON != "":
		return "json"
	case o.Schema != "":
		return "schema"
	default:
		return "stdin"
	}
}

// Read returns the raw introspection response selected by opts.
func Read(ctx context.Context, opts Options) ([]byte, error) {
	switch opts.Kind() {
	case "url":
		if opts.Fetcher == nil {
			return nil, errors.New("no fetcher configured")
		}
		data, err := opts.Fetcher.Fetch(ctx, opts.URL, opts.Headers)
		if err != nil {
			return nil, fmt.Errorf("failed to introspect %s: %w", opts.URL, err)
		}
		return data, nil
	case "json":
		data, err := afero.ReadFile(filesystem(opts.Fs), opts.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return data, nil
	case "schema":
		return nil, ErrSDLNotImplemented
	default:
		if opts.Stdin == nil {
			return nil, errors.New("no input provided")
		}
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
}

// Load reads the selected source and parses it into a schema.
func Load(ctx context.Context, opts Options) (*schema.Schema, error) {
	data, err := Read(ctx, opts)
	if err != nil {
		return nil, err
	}
	return schema.Parse(data)
}

func filesystem(fs afero.Fs) afero.Fs {
	if fs == nil {
		return afero.NewOsFs()
	}
	return fs
}
