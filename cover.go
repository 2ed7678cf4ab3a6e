package rel

import "github.com/JoseManuelVargas/ud-mcic-db-t4/att"

// CanonicalCover returns a new schema over the attributes of s whose
// dependencies are a minimal cover of s's dependencies.  s is not modified.
func CanonicalCover(s *Schema, opts ...Option) *Schema {
	return s.withDependencies(newOptions(opts).minimalCover(s.deps))
}

// MinimalCover reduces l to an equivalent set in which every right hand side
// is a single attribute, no left hand side has an extraneous attribute, and
// no dependency can be derived from the others.
//
// A set can have several minimal covers; which one is returned depends on the
// order the dependencies are tested in.  Only logical equivalence with l is
// guaranteed.
func MinimalCover(l Dependencies, opts ...Option) Dependencies {
	return newOptions(opts).minimalCover(l)
}

func (o *options) minimalCover(l Dependencies) Dependencies {
	l1 := decompose(l)
	l2, extraneous := reduceLeft(l1)
	l3, redundant := removeRedundant(l2)
	o.metrics.Removed("extraneous", extraneous)
	o.metrics.Removed("redundant", redundant)
	o.log.Debug("canonical cover built",
		"dependencies", len(l), "decomposed", len(l1),
		"extraneous", extraneous, "redundant", redundant, "cover", len(l3))
	return l3
}

// decompose splits every dependency into one dependency per right hand side
// attribute, dropping the trivial ones.
func decompose(l Dependencies) Dependencies {
	var fds []Dependency
	for _, fd := range l {
		for _, a := range fd.RHS {
			if fd.LHS.Contains(a) {
				continue
			}
			fds = append(fds, Dependency{fd.LHS, att.Set{a}})
		}
	}
	return NewDependencies(fds...)
}

// reduceLeft removes extraneous attributes from the left hand sides of l.
// An attribute a of X is extraneous in X -> Y when Y is in the closure of
// X - {a}.  Closures are memoised by left hand side for the duration of the
// call only; reducing a left hand side keeps l equivalent, so the closures
// against l stay valid throughout.  It returns the number of attributes
// removed.
func reduceLeft(l Dependencies) (Dependencies, int) {
	closures := make(map[string]att.Set)
	closure := func(lhs att.Set) att.Set {
		k := lhs.Key()
		c, ok := closures[k]
		if !ok {
			c = Closure(lhs, l)
			closures[k] = c
		}
		return c
	}

	removed := 0
	fds := make([]Dependency, len(l))
	for i, fd := range l {
		lhs := fd.LHS
		for reduced := true; reduced && len(lhs) > 1; {
			reduced = false
			for _, a := range lhs {
				cand := lhs.Without(a)
				if fd.RHS.IsSubset(closure(cand)) {
					lhs = cand
					removed++
					reduced = true
					break
				}
			}
		}
		fds[i] = Dependency{lhs, fd.RHS}
	}
	return NewDependencies(fds...), removed
}

// removeRedundant drops every dependency which can be derived from the rest.
// It returns the number of dependencies removed.
func removeRedundant(l Dependencies) (Dependencies, int) {
	work := append(Dependencies{}, l...)
	removed := 0
	for i := 0; i < len(work); {
		rest := work.without(i)
		if Implies(rest, work[i]) {
			work = rest
			removed++
			continue
		}
		i++
	}
	return work, removed
}
