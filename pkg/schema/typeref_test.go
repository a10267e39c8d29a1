package schema

import "testing"

func named(kind, name string) *TypeRef {
	return &TypeRef{Kind: Ptr(kind), Name: Ptr(name)}
}

func wrap(kind string, of *TypeRef) *TypeRef {
	return &TypeRef{Kind: Ptr(kind), OfType: of}
}

// nest wraps base in depth alternating NON_NULL and LIST levels.
func nest(base *TypeRef, depth int) *TypeRef {
	ref := base
	for i := 0; i < depth; i++ {
		kind := KindNonNull
		if i%2 == 1 {
			kind = KindList
		}
		ref = wrap(kind, ref)
	}
	return ref
}

func TestDecoratedName(t *testing.T) {
	tests := []struct {
		name string
		ref  *TypeRef
		want string
	}{
		{"nil", nil, ""},
		{"empty", &TypeRef{}, ""},
		{"plain", named(KindScalar, "ID"), "ID"},
		{"required", &TypeRef{Kind: Ptr(KindNonNull), Name: Ptr("ID")}, "ID!"},
		{"list of required", wrap(KindList, wrap(KindNonNull, named(KindScalar, "ID"))), "[ID!]"},
		{"required list of required", wrap(KindNonNull, wrap(KindList, wrap(KindNonNull, named(KindScalar, "ID")))), "[ID!]!"},
		{"nested lists", wrap(KindList, wrap(KindList, named(KindObject, "Player"))), "[[Player]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.DecoratedName(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestActualName(t *testing.T) {
	tests := []struct {
		name string
		ref  *TypeRef
		want string
	}{
		{"nil", nil, ""},
		{"plain", named(KindObject, "Player"), "Player"},
		{"wrapped", wrap(KindNonNull, wrap(KindList, named(KindObject, "Player"))), "Player"},
		{"outer name wins", &TypeRef{Kind: Ptr(KindNonNull), Name: Ptr("Outer"), OfType: named(KindScalar, "Inner")}, "Outer"},
		{"empty names skipped", &TypeRef{Name: Ptr(""), OfType: named(KindScalar, "Inner")}, "Inner"},
		{"no name", wrap(KindList, &TypeRef{Kind: Ptr(KindScalar)}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.ActualName(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestActualKind(t *testing.T) {
	tests := []struct {
		name string
		ref  *TypeRef
		want string
	}{
		{"nil", nil, ""},
		{"plain", named(KindEnum, "Color"), KindEnum},
		{"wrapped", wrap(KindNonNull, named(KindInputObject, "Filter")), KindInputObject},
		{"inner kind missing", &TypeRef{Kind: Ptr(KindNonNull), OfType: &TypeRef{Name: Ptr("ID")}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.ActualKind(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTypeRefDepthLimit(t *testing.T) {
	// Seven wrappers put the named type at level 7, the deepest allowed.
	within := nest(named(KindScalar, "ID"), MaxTypeRefDepth)
	if got := within.ActualName(); got != "ID" {
		t.Errorf("expected ID at max depth, got %q", got)
	}
	if got := within.ActualKind(); got != KindScalar {
		t.Errorf("expected SCALAR at max depth, got %q", got)
	}
	if got := within.DecoratedName(); got != "[[[ID!]!]!]!" {
		t.Errorf("expected [[[ID!]!]!]! at max depth, got %q", got)
	}

	beyond := nest(named(KindScalar, "ID"), MaxTypeRefDepth+1)
	if got := beyond.ActualName(); got != "" {
		t.Errorf("expected empty name beyond max depth, got %q", got)
	}
	if got := beyond.ActualKind(); got != "" {
		t.Errorf("expected empty kind beyond max depth, got %q", got)
	}
	if got := beyond.DecoratedName(); got != "" {
		t.Errorf("expected empty decorated name beyond max depth, got %q", got)
	}
}

func TestIsRequiredAndIsList(t *testing.T) {
	var nilRef *TypeRef
	if nilRef.IsRequired() || nilRef.IsList() {
		t.Error("expected nil reference to be neither required nor a list")
	}
	if !wrap(KindNonNull, nil).IsRequired() {
		t.Error("expected NON_NULL to be required")
	}
	if !wrap(KindList, nil).IsList() {
		t.Error("expected LIST to be a list")
	}
}
