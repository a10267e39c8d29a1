// Package docs renders a GraphQL schema into cross-linked Markdown documents.
package docs

import (
	"strings"

	"github.com/sanixdarker/gqlmd/pkg/schema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Document names, also used as file names without the .md extension.
const (
	Queries       = "queries"
	Mutations     = "mutations"
	Subscriptions = "subscriptions"
	Objects       = "objects"
	Inputs        = "inputs"
	Enums         = "enums"
	Interfaces    = "interfaces"
	Unions        = "unions"
	Scalars       = "scalars"
)

// DocumentNames lists every document Render produces.
var DocumentNames = []string{
	Queries, Mutations, Subscriptions,
	Objects, Inputs, Enums, Interfaces, Unions, Scalars,
}

var kindDocuments = map[string]string{
	schema.KindInputObject: Inputs,
	schema.KindObject:      Objects,
	schema.KindEnum:        Enums,
	schema.KindInterface:   Interfaces,
	schema.KindUnion:       Unions,
	schema.KindScalar:      Scalars,
}

// IsDocument reports whether name is one of DocumentNames.
func IsDocument(name string) bool {
	for _, n := range DocumentNames {
		if n == name {
			return true
		}
	}
	return false
}

// DocumentFor returns the document that lists types of the given kind,
// or "" for kinds that have no document.
func DocumentFor(kind string) string {
	return kindDocuments[kind]
}

// LinkFor returns the relative link to the section describing the named
// type at the bottom of ref, e.g. scalars.md#id.
func LinkFor(ref *schema.TypeRef) string {
	return DocumentFor(ref.ActualKind()) + ".md#" + strings.ToLower(ref.ActualName())
}

// Title returns the human title of a document, e.g. "Objects".
func Title(document string) string {
	return cases.Title(language.English).String(document)
}
