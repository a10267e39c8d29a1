// Package schema provides the typed model of a GraphQL introspection result.
package schema

// GraphQL type kinds as reported by introspection.
const (
	KindScalar      = "SCALAR"
	KindObject      = "OBJECT"
	KindInterface   = "INTERFACE"
	KindUnion       = "UNION"
	KindEnum        = "ENUM"
	KindInputObject = "INPUT_OBJECT"
	KindList        = "LIST"
	KindNonNull     = "NON_NULL"
)

// Schema is the __schema object of an introspection response.
// Every field is optional; a partial response is still a valid Schema.
type Schema struct {
	QueryType        *Type        `json:"queryType"`
	MutationType     *Type        `json:"mutationType"`
	SubscriptionType *Type        `json:"subscriptionType"`
	Types            []*Type      `json:"types"`
	Directives       []*Directive `json:"directives"`
}

// Type is a named type of the schema.
type Type struct {
	Name          *string      `json:"name"`
	Kind          *string      `json:"kind"`
	Description   *string      `json:"description"`
	Fields        []*Field     `json:"fields"`
	Inputs        []*Input     `json:"inputFields"`
	Interfaces    []*TypeRef   `json:"interfaces"`
	Enums         []*EnumValue `json:"enumValues"`
	PossibleTypes []*TypeRef   `json:"possibleTypes"`
}

// Field is a field of an object or interface type.
type Field struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Args              []*Input `json:"args"`
	Type              *TypeRef `json:"type"`
	IsDeprecated      *bool    `json:"isDeprecated"`
	DeprecationReason *string  `json:"deprecationReason"`
}

// Input is an argument or an input object field.
type Input struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Type         *TypeRef `json:"type"`
	DefaultValue *string  `json:"defaultValue"`
}

// EnumValue is a value of an enum type.
type EnumValue struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	IsDeprecated      *bool   `json:"isDeprecated"`
	DeprecationReason *string `json:"deprecationReason"`
}

// Directive is a directive declared by the schema. It is kept for
// completeness and is not rendered.
type Directive struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Locations   []string `json:"locations"`
	Args        []*Input `json:"args"`
}

// String returns the value of an optional string, or "" when absent.
func String(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Bool returns the value of an optional bool, or false when absent.
func Bool(b *bool) bool {
	return b != nil && *b
}

// Ptr returns a pointer to v. It is mostly useful when building a Schema by hand.
func Ptr[T any](v T) *T {
	return &v
}

// Deprecated reports whether the field is marked deprecated.
func (f *Field) Deprecated() bool {
	return f != nil && Bool(f.IsDeprecated)
}

// Deprecated reports whether the enum value is marked deprecated.
func (e *EnumValue) Deprecated() bool {
	return e != nil && Bool(e.IsDeprecated)
}
