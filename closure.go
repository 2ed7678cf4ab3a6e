package rel

import "github.com/JoseManuelVargas/ud-mcic-db-t4/att"

// Closure returns every attribute which seed determines under l.
//
// Each pass applies the dependencies whose left hand side is already in the
// closure.  The closure only grows, so an applied dependency stays satisfied
// and is dropped from the working set.  The result always contains seed, and
// Closure(Closure(s, l), l) equals Closure(s, l).
func Closure(seed att.Set, l Dependencies) att.Set {
	closure := att.NewSet(seed...)
	work := append(Dependencies{}, l...)
	for changed := true; changed; {
		changed = false
		rest := work[:0]
		for _, fd := range work {
			if fd.LHS.IsSubset(closure) {
				closure = closure.Union(fd.RHS)
				changed = true
				continue
			}
			rest = append(rest, fd)
		}
		work = rest
	}
	return closure
}

// Implies returns true when fd can be derived from l.
func Implies(l Dependencies, fd Dependency) bool {
	return fd.RHS.IsSubset(Closure(fd.LHS, l))
}

// Derives returns true when every dependency in target can be derived from l.
func Derives(l Dependencies, target Dependencies) bool {
	for _, fd := range target {
		if !Implies(l, fd) {
			return false
		}
	}
	return true
}
