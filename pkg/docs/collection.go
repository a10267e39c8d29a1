package docs

import (
	"slices"
	"strings"

	"github.com/sanixdarker/gqlmd/pkg/markdown"
	"github.com/sanixdarker/gqlmd/pkg/schema"
)

// RenderTypes renders every type of the given kind under a single title.
// Types are sorted by name. When the schema has no type of that kind the
// result is "".
func RenderTypes(s *schema.Schema, title, kind string) string {
	types := s.TypesOfKind(kind)
	if len(types) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(markdown.Header(1, title))
	for _, t := range sortedByName(types, func(t *schema.Type) *string { return t.Name }) {
		b.WriteString(RenderType(t))
	}
	return b.String()
}

// RenderType renders the section of a single type: an anchored header,
// its description and one table or list per member group present in the
// response. A present but empty group still gets its header and an empty
// table; introspection reports absent groups as null.
func RenderType(t *schema.Type) string {
	if t == nil {
		return ""
	}

	var b strings.Builder
	if t.Name != nil {
		b.WriteString(markdown.Header(2, markdown.NamedAnchor(*t.Name)))
	}
	if t.Description != nil {
		b.WriteString(markdown.Description(*t.Description))
	}

	if t.Fields != nil {
		b.WriteString(markdown.Header(3, "Fields"))
		fields := sortedByName(t.Fields, func(f *schema.Field) *string { return f.Name })
		writeTable(&b, fieldHeaders, fields, FieldCells)
	}

	if t.Inputs != nil {
		b.WriteString(markdown.Header(3, "Inputs"))
		inputs := sortedByName(t.Inputs, func(in *schema.Input) *string { return in.Name })
		writeTable(&b, inputHeaders, inputs, InputCells)
	}

	if t.Enums != nil {
		b.WriteString(markdown.Header(3, "Values"))
		values := sortedByName(t.Enums, func(e *schema.EnumValue) *string { return e.Name })
		writeTable(&b, enumHeaders, values, EnumValueCells)
	}

	if t.PossibleTypes != nil {
		b.WriteString(markdown.Header(3, "Implemented by"))
		b.WriteString(markdown.List(implementors(t.PossibleTypes)))
	}

	return b.String()
}

func implementors(refs []*schema.TypeRef) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			names = append(names, "")
			continue
		}
		names = append(names, markdown.InlineCode(schema.String(ref.Name)))
	}
	slices.Sort(names)
	return names
}
