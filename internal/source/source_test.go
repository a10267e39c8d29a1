package source

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/sanixdarker/gqlmd/pkg/schema"
	"github.com/spf13/afero"
)

const response = `{"data":{"__schema":{"queryType":{"name":"Query"},"types":[{"kind":"OBJECT","name":"Query"}]}}}`

type mockFetcher struct {
	endpoint string
	headers  http.Header
	data     string
	err      error
}

func (m *mockFetcher) Fetch(ctx context.Context, endpoint string, headers http.Header) ([]byte, error) {
	m.endpoint = endpoint
	m.headers = headers
	return []byte(m.data), m.err
}

func TestLoadURL(t *testing.T) {
	fetcher := &mockFetcher{data: response}
	headers := http.Header{"X-Api-Key": []string{"secret"}}

	s, err := Load(context.Background(), Options{
		URL:     "https://example.com/graphql",
		Headers: headers,
		JSON:    "ignored.json",
		Fetcher: fetcher,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.endpoint != "https://example.com/graphql" {
		t.Errorf("expected endpoint to be fetched, got %q", fetcher.endpoint)
	}
	if fetcher.headers.Get("X-Api-Key") != "secret" {
		t.Errorf("expected headers to be forwarded, got %v", fetcher.headers)
	}
	if name, _ := s.QueryName(); name != "Query" {
		t.Errorf("expected Query, got %q", name)
	}
}

func TestLoadURLError(t *testing.T) {
	fetcher := &mockFetcher{err: errors.New("connection refused")}

	_, err := Load(context.Background(), Options{URL: "https://example.com/graphql", Fetcher: fetcher})
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected wrapped fetch error, got %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "testdata/response.json", []byte(response), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(context.Background(), Options{JSON: "testdata/response.json", Fs: fs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Type("Query") == nil {
		t.Error("expected Query type")
	}
}

func TestLoadJSONMissing(t *testing.T) {
	_, err := Load(context.Background(), Options{JSON: "missing.json", Fs: afero.NewMemMapFs()})
	if err == nil || !strings.HasPrefix(err.Error(), "failed to read file") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestLoadSchemaNotImplemented(t *testing.T) {
	_, err := Load(context.Background(), Options{Schema: "schema.graphql", Stdin: strings.NewReader(response)})
	if !errors.Is(err, ErrSDLNotImplemented) {
		t.Fatalf("expected ErrSDLNotImplemented, got %v", err)
	}
	if err.Error() != "GraphQL schema files are not yet implemented" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestLoadStdin(t *testing.T) {
	s, err := Load(context.Background(), Options{Stdin: strings.NewReader(response)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Types) != 1 {
		t.Errorf("expected 1 type, got %d", len(s.Types))
	}
}

func TestLoadSchemaErrors(t *testing.T) {
	_, err := Load(context.Background(), Options{Stdin: strings.NewReader(`{"data":{}}`)})
	if !errors.Is(err, schema.ErrNoSchema) {
		t.Errorf("expected ErrNoSchema, got %v", err)
	}
}

func TestOptionsKind(t *testing.T) {
	tests := []struct {
		opts Options
		want string
	}{
		{Options{URL: "u", JSON: "j", Schema: "s"}, "url"},
		{Options{JSON: "j", Schema: "s"}, "json"},
		{Options{Schema: "s"}, "schema"},
		{Options{}, "stdin"},
	}

	for _, tt := range tests {
		if got := tt.opts.Kind(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
