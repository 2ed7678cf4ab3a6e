// dependencies are the functional dependencies between sets of attributes,
// and the parsing of the arrow notation used when they are typed in by hand.

package rel

import (
	"sort"
	"strings"
	"unicode"

	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
)

// Dependency is a functional dependency LHS -> RHS: any two tuples which
// agree on LHS also agree on RHS.
type Dependency struct {
	LHS att.Set
	RHS att.Set
}

// NewDependency creates a dependency from its two sides.
func NewDependency(lhs, rhs att.Set) Dependency {
	return Dependency{lhs, rhs}
}

// FD is shorthand for a dependency between single symbol attributes, like
// FD("AB", "C").
func FD(lhs, rhs string) Dependency {
	return Dependency{att.ParseSet(lhs), att.ParseSet(rhs)}
}

// IsTrivial returns true when the right hand side is contained in the left.
func (fd Dependency) IsTrivial() bool {
	return fd.RHS.IsSubset(fd.LHS)
}

// Equal returns true when both sides are equal.
func (fd Dependency) Equal(fd2 Dependency) bool {
	return fd.LHS.Equal(fd2.LHS) && fd.RHS.Equal(fd2.RHS)
}

// Key is a canonical string for fd which can be used as a map key.
func (fd Dependency) Key() string {
	return fd.LHS.Key() + "\x1e" + fd.RHS.Key()
}

// Dependencies is a set of functional dependencies.  Values built with
// NewDependencies are sorted and free of duplicates.
type Dependencies []Dependency

// NewDependencies creates a set of dependencies, dropping duplicates.
func NewDependencies(fds ...Dependency) Dependencies {
	seen := make(map[string]struct{}, len(fds))
	l := make(Dependencies, 0, len(fds))
	for _, fd := range fds {
		k := fd.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		l = append(l, fd)
	}
	sort.Sort(l)
	return l
}

// definitions for the dependency sorting
func (l Dependencies) Len() int {
	return len(l)
}
func (l Dependencies) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}
func (l Dependencies) Less(i, j int) bool {
	// smaller determinants first, then alphabetical
	if !l[i].LHS.Equal(l[j].LHS) {
		return att.Less(l[i].LHS, l[j].LHS)
	}
	return att.Less(l[i].RHS, l[j].RHS)
}

// Equal returns true when l and l2 hold the same dependencies, in any order.
func (l Dependencies) Equal(l2 Dependencies) bool {
	n1, n2 := NewDependencies(l...), NewDependencies(l2...)
	if len(n1) != len(n2) {
		return false
	}
	for i := range n1 {
		if !n1[i].Equal(n2[i]) {
			return false
		}
	}
	return true
}

// Contains returns true when fd is a member of l.
func (l Dependencies) Contains(fd Dependency) bool {
	for _, fd2 := range l {
		if fd.Equal(fd2) {
			return true
		}
	}
	return false
}

// LeftAttributes is the union of all left hand sides.
func (l Dependencies) LeftAttributes() att.Set {
	s := att.Set{}
	for _, fd := range l {
		s = s.Union(fd.LHS)
	}
	return s
}

// RightAttributes is the union of all right hand sides.
func (l Dependencies) RightAttributes() att.Set {
	s := att.Set{}
	for _, fd := range l {
		s = s.Union(fd.RHS)
	}
	return s
}

// Attributes is the union of both sides of every dependency.
func (l Dependencies) Attributes() att.Set {
	return l.LeftAttributes().Union(l.RightAttributes())
}

// without returns a copy of l with the i'th dependency removed.
func (l Dependencies) without(i int) Dependencies {
	l2 := make(Dependencies, 0, len(l)-1)
	l2 = append(l2, l[:i]...)
	return append(l2, l[i+1:]...)
}

// ParseAttributes reads hand typed attributes like "ABCDEF".  Only letters
// are kept, and they are upper cased.
func ParseAttributes(str string) att.Set {
	var attrs []att.Attribute
	for _, r := range str {
		if unicode.IsLetter(r) {
			attrs = append(attrs, att.Attribute(unicode.ToUpper(r)))
		}
	}
	return att.NewSet(attrs...)
}

// ParseDependency reads a single hand typed dependency like "AB->C".
func ParseDependency(str string) (Dependency, error) {
	parts := strings.Split(str, "->")
	if len(parts) != 2 {
		return Dependency{}, &MalformedDependencyError{-1, parts, nil}
	}
	fd := Dependency{ParseAttributes(parts[0]), ParseAttributes(parts[1])}
	if len(fd.LHS) == 0 || len(fd.RHS) == 0 {
		return Dependency{}, &MalformedDependencyError{-1, parts, ErrEmptySide}
	}
	return fd, nil
}

// ParseDependencies reads a comma separated list of hand typed dependencies,
// like "ABC->D,BE->F,AB->E".
func ParseDependencies(str string) (Dependencies, error) {
	words := strings.Split(str, ",")
	fds := make([]Dependency, 0, len(words))
	for i, word := range words {
		fd, err := ParseDependency(word)
		if err != nil {
			if me, ok := err.(*MalformedDependencyError); ok {
				me.Index = i
			}
			return nil, err
		}
		fds = append(fds, fd)
	}
	return NewDependencies(fds...), nil
}

// FormatDependencies writes l in the notation read by ParseDependencies.
func FormatDependencies(l Dependencies) string {
	str := make([]string, len(l))
	for i, fd := range l {
		str[i] = fd.String()
	}
	return strings.Join(str, ",")
}
