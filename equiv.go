package rel

import "fmt"

// Reason explains the outcome of an equivalence check.
type Reason int

const (
	// ReasonEquivalent means the other set is the same minimal cover.
	ReasonEquivalent Reason = iota
	// ReasonNotSuperset means the other set does not derive every dependency
	// of the canonical cover.
	ReasonNotSuperset
	// ReasonNotSubset means the canonical cover does not derive every
	// dependency of the other set.
	ReasonNotSubset
	// ReasonNotMinimal means the sets are equivalent but the other set is not
	// a minimal cover: reducing it changes it.
	ReasonNotMinimal
	// ReasonCoverMismatch means the other set is an equivalent minimal cover
	// which differs from the one computed for the schema.
	ReasonCoverMismatch
)

func (r Reason) String() string {
	switch r {
	case ReasonEquivalent:
		return "the dependencies are an equivalent minimal cover"
	case ReasonNotSuperset:
		return "the given dependencies do not derive the canonical cover"
	case ReasonNotSubset:
		return "the canonical cover does not derive the given dependencies"
	case ReasonNotMinimal:
		return "the given dependencies are equivalent but not a minimal cover"
	case ReasonCoverMismatch:
		return "the given dependencies are an equivalent minimal cover different from the computed one"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Equivalence is the result of CheckEquivalence.
type Equivalence struct {
	// Equivalent is true when each set derives the other.
	Equivalent bool
	// Reason is the first check which did not pass, or ReasonEquivalent.
	Reason Reason
	// Cover is the canonical cover of the schema.
	Cover Dependencies
	// Reduced is the other set after canonical reduction.
	Reduced Dependencies
}

// CheckEquivalence compares the dependencies of s with other, which is
// usually a cover proposed for s.  other must be drawn from the attributes of
// s, otherwise an *AttributeError or *MalformedDependencyError is returned.
//
// other is reduced to a minimal cover and both sets are checked to derive
// each other.  When they do, the reduced form is compared with other itself
// and with the canonical cover of s to tell an exact match from a
// non-minimal or a different minimal cover.
func CheckEquivalence(s *Schema, other Dependencies, opts ...Option) (Equivalence, error) {
	for i, fd := range other {
		if err := ensureDependency(i, fd, s.attrs); err != nil {
			return Equivalence{}, err
		}
	}
	o := newOptions(opts)
	cover := o.minimalCover(s.deps)
	reduced := o.minimalCover(other)
	eq := Equivalence{Cover: cover, Reduced: reduced}

	switch {
	case !Derives(reduced, cover):
		eq.Reason = ReasonNotSuperset
	case !Derives(cover, reduced):
		eq.Reason = ReasonNotSubset
	case !reduced.Equal(other):
		eq.Equivalent = true
		eq.Reason = ReasonNotMinimal
	case !reduced.Equal(cover):
		eq.Equivalent = true
		eq.Reason = ReasonCoverMismatch
	default:
		eq.Equivalent = true
		eq.Reason = ReasonEquivalent
	}
	o.log.Debug("equivalence checked", "equivalent", eq.Equivalent, "reason", eq.Reason.String())
	return eq, nil
}
