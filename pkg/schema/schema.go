package schema

// QueryName returns the name of the query root type, if the schema declares one.
func (s *Schema) QueryName() (string, bool) {
	return rootName(s, func(s *Schema) *Type { return s.QueryType })
}

// MutationName returns the name of the mutation root type, if any.
func (s *Schema) MutationName() (string, bool) {
	return rootName(s, func(s *Schema) *Type { return s.MutationType })
}

// SubscriptionName returns the name of the subscription root type, if any.
func (s *Schema) SubscriptionName() (string, bool) {
	return rootName(s, func(s *Schema) *Type { return s.SubscriptionType })
}

func rootName(s *Schema, root func(*Schema) *Type) (string, bool) {
	if s == nil {
		return "", false
	}
	t := root(s)
	if t == nil || t.Name == nil {
		return "", false
	}
	return *t.Name, true
}

// Type returns the first type whose name equals name. Types without a name
// never match.
func (s *Schema) Type(name string) *Type {
	if s == nil {
		return nil
	}
	for _, t := range s.Types {
		if t != nil && t.Name != nil && *t.Name == name {
			return t
		}
	}
	return nil
}

// RootType resolves a root name as returned by QueryName and friends.
//
//	query := s.RootType(s.QueryName())
func (s *Schema) RootType(name string, ok bool) *Type {
	if !ok {
		return nil
	}
	return s.Type(name)
}

// TypesOfKind returns the types of the given kind in declaration order.
func (s *Schema) TypesOfKind(kind string) []*Type {
	if s == nil {
		return nil
	}
	var types []*Type
	for _, t := range s.Types {
		if t != nil && String(t.Kind) == kind {
			types = append(types, t)
		}
	}
	return types
}
