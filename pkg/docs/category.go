package docs

import (
	"strings"

	"github.com/sanixdarker/gqlmd/pkg/markdown"
	"github.com/sanixdarker/gqlmd/pkg/schema"
)

// RenderCategory renders a root operation type (Query, Mutation or
// Subscription). Fields keep their declaration order. A nil type renders
// to "".
func RenderCategory(t *schema.Type) string {
	if t == nil {
		return ""
	}

	var b strings.Builder
	if t.Name != nil {
		b.WriteString(markdown.Header(1, *t.Name))
	}
	if t.Description != nil {
		b.WriteString(markdown.Description(*t.Description))
	}
	for _, f := range t.Fields {
		if f != nil {
			writeOperation(&b, f)
		}
	}
	return b.String()
}

func writeOperation(b *strings.Builder, f *schema.Field) {
	if f.Name != nil {
		b.WriteString(markdown.Header(2, *f.Name))
	}
	if f.Deprecated() {
		b.WriteString(markdown.Notice("Deprecated"))
	}
	if f.Description != nil {
		b.WriteString(markdown.Description(*f.Description))
	}
	if f.Type != nil {
		b.WriteString(markdown.Label("Type", typeCell(f.Type)))
	}
	if len(f.Args) > 0 {
		b.WriteString(markdown.Header(3, "Arguments"))
		args := sortedByName(f.Args, func(in *schema.Input) *string { return in.Name })
		writeTable(b, inputHeaders, args, InputCells)
	}
}
