package docs

import (
	"cmp"
	"slices"
	"strings"

	"github.com/sanixdarker/gqlmd/pkg/markdown"
	"github.com/sanixdarker/gqlmd/pkg/schema"
)

var (
	fieldHeaders = []string{"Name", "Type", "Description"}
	inputHeaders = []string{"Name", "Type", "Description", "Default Value"}
	enumHeaders  = []string{"Name", "Description", "Deprecated"}
)

// FieldCells returns the table cells of a field: name, linked type, description.
func FieldCells(f *schema.Field) []string {
	if f == nil {
		f = &schema.Field{}
	}
	return []string{
		markdown.InlineCode(sanitize(f.Name)),
		typeCell(f.Type),
		sanitize(f.Description),
	}
}

// InputCells returns the table cells of an argument or input field:
// name, linked type, description, default value.
func InputCells(in *schema.Input) []string {
	if in == nil {
		in = &schema.Input{}
	}
	return []string{
		markdown.InlineCode(sanitize(in.Name)),
		typeCell(in.Type),
		sanitize(in.Description),
		markdown.InlineCode(sanitize(in.DefaultValue)),
	}
}

// EnumValueCells returns the table cells of an enum value. The last cell is
// "no" unless the value is deprecated, in which case it holds the reason.
func EnumValueCells(e *schema.EnumValue) []string {
	if e == nil {
		e = &schema.EnumValue{}
	}
	deprecated := "no"
	if e.Deprecated() {
		deprecated = sanitize(e.DeprecationReason)
	}
	return []string{
		markdown.InlineCode(sanitize(e.Name)),
		sanitize(e.Description),
		deprecated,
	}
}

func typeCell(ref *schema.TypeRef) string {
	if ref == nil {
		return ""
	}
	return markdown.Link(markdown.InlineCode(ref.DecoratedName()), LinkFor(ref))
}

// sanitize keeps table cells on a single line.
func sanitize(s *string) string {
	v := strings.TrimSpace(schema.String(s))
	return strings.NewReplacer("\r", "", "\n", "").Replace(v)
}

func writeTable[T any](b *strings.Builder, headers []string, items []T, cells func(T) []string) {
	b.WriteString(markdown.TableRow(headers))
	b.WriteString(markdown.TableSeparator(len(headers)))
	for _, item := range items {
		b.WriteString(markdown.TableRow(cells(item)))
	}
	b.WriteString("\n")
}

// compareNames orders absent names before present ones.
func compareNames(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

// sortedByName returns a copy of items stably sorted by name.
func sortedByName[T any](items []*T, name func(*T) *string) []*T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b *T) int {
		return compareNames(nameOf(a, name), nameOf(b, name))
	})
	return sorted
}

func nameOf[T any](item *T, name func(*T) *string) *string {
	if item == nil {
		return nil
	}
	return name(item)
}
