package schema

// MaxTypeRefDepth bounds how many ofType levels a TypeRef walk may follow.
// Three nested non-null lists ([[[T!]!]!]!) need seven unwraps, so deeper
// chains only come from malformed payloads. A walk that would go past the
// bound yields "" for every derived value.
const MaxTypeRefDepth = 7

// TypeRef is a possibly wrapped reference to a type. LIST and NON_NULL
// levels carry no name; the named type sits at the end of the OfType chain.
type TypeRef struct {
	Name   *string  `json:"name"`
	Kind   *string  `json:"kind"`
	OfType *TypeRef `json:"ofType"`
}

// IsRequired reports whether this level is a NON_NULL wrapper.
func (t *TypeRef) IsRequired() bool {
	return t != nil && String(t.Kind) == KindNonNull
}

// IsList reports whether this level is a LIST wrapper.
func (t *TypeRef) IsList() bool {
	return t != nil && String(t.Kind) == KindList
}

// ActualName returns the first non-empty name found while unwrapping.
func (t *TypeRef) ActualName() string {
	for depth, ref := 0, t; ref != nil; depth, ref = depth+1, ref.OfType {
		if depth > MaxTypeRefDepth {
			return ""
		}
		if name := String(ref.Name); name != "" {
			return name
		}
	}
	return ""
}

// ActualKind returns the kind of the innermost level, the one without an OfType.
// Unlike ActualName it does not stop at the first level that has a value.
func (t *TypeRef) ActualKind() string {
	if t == nil {
		return ""
	}
	ref := t
	for depth := 0; ref.OfType != nil; depth++ {
		if depth >= MaxTypeRefDepth {
			return ""
		}
		ref = ref.OfType
	}
	return String(ref.Kind)
}

// DecoratedName renders the reference in GraphQL syntax, e.g. [ID!]!.
func (t *TypeRef) DecoratedName() string {
	if t == nil {
		return ""
	}
	s, ok := t.decorate(0)
	if !ok {
		return ""
	}
	return s
}

func (t *TypeRef) decorate(depth int) (string, bool) {
	if depth > MaxTypeRefDepth {
		return "", false
	}

	var s string
	if t.OfType != nil {
		inner, ok := t.OfType.decorate(depth + 1)
		if !ok {
			return "", false
		}
		s = inner
	} else {
		s = String(t.Name)
	}

	if t.IsRequired() {
		s += "!"
	}
	if t.IsList() {
		s = "[" + s + "]"
	}
	return s, true
}
