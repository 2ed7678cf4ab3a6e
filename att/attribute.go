// Package att represents attributes, the sets of attributes that appear on
// either side of a functional dependency, and the candidate keys built from
// them.
package att

import (
	"sort"
	"strings"
)

// Attribute represents a particular attribute's name in a relation
type Attribute string

// Set is a sorted set of distinct attributes.  Sets are values: every
// operation returns a new Set and leaves its inputs untouched, so a Set can be
// shared between goroutines without locking.
type Set []Attribute

// NewSet creates a set from the given attributes.  Duplicates collapse and the
// order of the arguments does not matter.
func NewSet(attrs ...Attribute) Set {
	if len(attrs) == 0 {
		return Set{}
	}
	s := make(Set, len(attrs))
	copy(s, attrs)
	sort.Sort(s)
	// compact in place
	n := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[n-1] {
			s[n] = s[i]
			n++
		}
	}
	return s[:n]
}

// ParseSet splits a string into single symbol attributes, which is how the
// left and right hand sides of a dependency are written in a schema record.
// "BAA" and "AB" are the same set.
func ParseSet(str string) Set {
	attrs := make([]Attribute, 0, len(str))
	for _, r := range str {
		attrs = append(attrs, Attribute(r))
	}
	return NewSet(attrs...)
}

// definitions for sorting the attributes within a set
func (s Set) Len() int           { return len(s) }
func (s Set) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s Set) Less(i, j int) bool { return s[i] < s[j] }

// Contains returns true when a is a member of s.
func (s Set) Contains(a Attribute) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= a })
	return i < len(s) && s[i] == a
}

// IsSubset returns true if every attribute in s is also in dom.
func (s Set) IsSubset(dom Set) bool {
	if len(s) > len(dom) {
		return false
	}
	j := 0
	for _, a := range s {
		for j < len(dom) && dom[j] < a {
			j++
		}
		if j == len(dom) || dom[j] != a {
			return false
		}
		j++
	}
	return true
}

// IsProperSubset returns true if s is a subset of dom and smaller than it.
func (s Set) IsProperSubset(dom Set) bool {
	return len(s) < len(dom) && s.IsSubset(dom)
}

// Equal returns true when both sets hold the same attributes.
func (s Set) Equal(s2 Set) bool {
	if len(s) != len(s2) {
		return false
	}
	for i := range s {
		if s[i] != s2[i] {
			return false
		}
	}
	return true
}

// Union returns the attributes in either s or s2.
func (s Set) Union(s2 Set) Set {
	u := make(Set, 0, len(s)+len(s2))
	i, j := 0, 0
	for i < len(s) && j < len(s2) {
		switch {
		case s[i] < s2[j]:
			u = append(u, s[i])
			i++
		case s[i] > s2[j]:
			u = append(u, s2[j])
			j++
		default:
			u = append(u, s[i])
			i++
			j++
		}
	}
	u = append(u, s[i:]...)
	return append(u, s2[j:]...)
}

// Diff returns the attributes of s which are not in s2.
func (s Set) Diff(s2 Set) Set {
	d := make(Set, 0, len(s))
	j := 0
	for _, a := range s {
		for j < len(s2) && s2[j] < a {
			j++
		}
		if j < len(s2) && s2[j] == a {
			continue
		}
		d = append(d, a)
	}
	return d
}

// Intersect returns the attributes in both s and s2.
func (s Set) Intersect(s2 Set) Set {
	n := make(Set, 0)
	j := 0
	for _, a := range s {
		for j < len(s2) && s2[j] < a {
			j++
		}
		if j < len(s2) && s2[j] == a {
			n = append(n, a)
		}
	}
	return n
}

// Without returns s with a removed.
func (s Set) Without(a Attribute) Set {
	return s.Diff(Set{a})
}

// With returns s with a added.
func (s Set) With(a Attribute) Set {
	return s.Union(Set{a})
}

// Key is a canonical string for s which can be used as a map key.
func (s Set) Key() string {
	str := make([]string, len(s))
	for i, a := range s {
		str[i] = string(a)
	}
	return strings.Join(str, "\x1f")
}

// Concat joins the attributes without a separator, the way they are written
// on each side of a dependency in a schema record.
func (s Set) Concat() string {
	var b strings.Builder
	for _, a := range s {
		b.WriteString(string(a))
	}
	return b.String()
}

// Strings returns the attribute names in order.
func (s Set) Strings() []string {
	str := make([]string, len(s))
	for i, a := range s {
		str[i] = string(a)
	}
	return str
}

func (s Set) String() string {
	return "{" + strings.Join(s.Strings(), ", ") + "}"
}

// CandKeys is a set of candidate keys
// they should be unique and sorted
type CandKeys []Set

// OrderCandidateKeys sorts candidate keys by number of attributes and then
// alphabetically.  Sets are already alphabetised internally.
func OrderCandidateKeys(ckeys CandKeys) {
	// smaller keys are first
	sort.Sort(ckeys)
}

// String2CandKeys converts a slice of string slices into a set of candidate
// keys.  The result is ordered.
func String2CandKeys(ckeystrs [][]string) CandKeys {
	cks := make(CandKeys, len(ckeystrs))
	for i, ckstr := range ckeystrs {
		attrs := make([]Attribute, len(ckstr))
		for j, str := range ckstr {
			attrs[j] = Attribute(str)
		}
		cks[i] = NewSet(attrs...)
	}
	OrderCandidateKeys(cks)
	return cks
}

// definitions for the candidate key sorting
func (cks CandKeys) Len() int {
	return len(cks)
}
func (cks CandKeys) Swap(i, j int) {
	cks[i], cks[j] = cks[j], cks[i]
}

// Less orders sets by size, then alphabetically.
func Less(ck1 Set, ck2 Set) bool {
	if len(ck1) == len(ck2) {
		// alphabetical ordering
		for k := range ck1 {
			if ck1[k] < ck2[k] {
				return true
			} else if ck1[k] > ck2[k] {
				return false
			}
		}
		return false
	}
	return len(ck1) < len(ck2)
}

func (cks CandKeys) Less(i, j int) bool {
	// note this is smallest to largest
	return Less(cks[i], cks[j])
}

// Contains returns true when k is one of the candidate keys.
func (cks CandKeys) Contains(k Set) bool {
	for _, ck := range cks {
		if ck.Equal(k) {
			return true
		}
	}
	return false
}

// HasSubsetOf returns true if some candidate key is contained in s, which
// means s is a superkey.
func (cks CandKeys) HasSubsetOf(s Set) bool {
	for _, ck := range cks {
		if ck.IsSubset(s) {
			return true
		}
	}
	return false
}

// Prime returns the union of all candidate keys.
func (cks CandKeys) Prime() Set {
	p := Set{}
	for _, ck := range cks {
		p = p.Union(ck)
	}
	return p
}
