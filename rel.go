// rel is a package that analyses relation schemas
// the terminology follows "Database in Depth" by C. J. Date, where a relation
// schema R = (T, L) is a heading T of attributes and a set L of functional
// dependencies between subsets of T.
//
// Schemas are immutable once built.  Operations which derive a new set of
// dependencies, like the canonical cover, return a new Schema so the original
// can still be consulted.

package rel

import "github.com/JoseManuelVargas/ud-mcic-db-t4/att"

// Schema is a relation schema: the attribute universe T and the functional
// dependencies L which hold over it.
type Schema struct {
	attrs att.Set
	deps  Dependencies
}

// NewSchema validates and creates a new Schema.  Every dependency must have
// non empty sides drawn from t; otherwise a *MalformedDependencyError or an
// *AttributeError is returned and no schema is built.
func NewSchema(t att.Set, l Dependencies) (*Schema, error) {
	t = att.NewSet(t...)
	for i, fd := range l {
		if err := ensureDependency(i, fd, t); err != nil {
			return nil, err
		}
	}
	return &Schema{attrs: t, deps: NewDependencies(l...)}, nil
}

// MustSchema is like NewSchema but panics on invalid input.  It is meant for
// schemas written into programs and tests.
func MustSchema(t string, l string) *Schema {
	deps := Dependencies{}
	if l != "" {
		var err error
		if deps, err = ParseDependencies(l); err != nil {
			panic(err)
		}
	}
	s, err := NewSchema(ParseAttributes(t), deps)
	if err != nil {
		panic(err)
	}
	return s
}

// Attributes is the attribute universe T.
func (s *Schema) Attributes() att.Set {
	return s.attrs
}

// Dependencies returns a copy of the dependency set L.
func (s *Schema) Dependencies() Dependencies {
	return append(Dependencies{}, s.deps...)
}

// Deg returns the degree of the relation, the number of attributes.
func (s *Schema) Deg() int {
	return len(s.attrs)
}

// withDependencies returns a schema over the same attributes with l, which is
// already known to be valid for them.
func (s *Schema) withDependencies(l Dependencies) *Schema {
	return &Schema{attrs: s.attrs, deps: NewDependencies(l...)}
}

// IsSuperkey returns true if the closure of k is the whole heading.
func (s *Schema) IsSuperkey(k att.Set) bool {
	return Closure(k, s.deps).Equal(s.attrs)
}

// IsCandidateKey returns true if k is a superkey and no proper subset of k is.
func (s *Schema) IsCandidateKey(k att.Set) bool {
	if !s.IsSuperkey(k) {
		return false
	}
	for _, a := range k {
		if s.IsSuperkey(k.Without(a)) {
			return false
		}
	}
	return true
}
