package docs

import (
	"context"
	"sync"

	"github.com/sanixdarker/gqlmd/pkg/schema"
	"golang.org/x/sync/errgroup"
)

// Render produces every document of DocumentNames. Documents with nothing
// to show are present with an empty value.
func Render(s *schema.Schema) map[string]string {
	docs := make(map[string]string, len(DocumentNames))
	for _, name := range DocumentNames {
		docs[name] = RenderDocument(s, name)
	}
	return docs
}

// RenderConcurrent is Render with one goroutine per document. It stops early
// and returns ctx.Err() when ctx is cancelled.
func RenderConcurrent(ctx context.Context, s *schema.Schema) (map[string]string, error) {
	var (
		mu   sync.Mutex
		docs = make(map[string]string, len(DocumentNames))
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range DocumentNames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content := RenderDocument(s, name)
			mu.Lock()
			docs[name] = content
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// RenderDocument renders a single document by name. Unknown names render to "".
func RenderDocument(s *schema.Schema, name string) string {
	switch name {
	case Queries:
		return RenderCategory(s.RootType(s.QueryName()))
	case Mutations:
		return RenderCategory(s.RootType(s.MutationName()))
	case Subscriptions:
		return RenderCategory(s.RootType(s.SubscriptionName()))
	}

	for kind, document := range kindDocuments {
		if document == name {
			return RenderTypes(s, Title(name), kind)
		}
	}
	return ""
}
