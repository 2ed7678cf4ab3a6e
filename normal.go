package rel

import (
	"fmt"
	"strings"

	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
)

// Form is a normal form.
type Form int

const (
	SecondNF Form = iota + 2
	ThirdNF
	BoyceCoddNF
)

func (f Form) String() string {
	switch f {
	case SecondNF:
		return "2NF"
	case ThirdNF:
		return "3NF"
	case BoyceCoddNF:
		return "BCNF"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// ParseForm reads "2nf", "3nf" or "bcnf", in any case.
func ParseForm(str string) (Form, error) {
	switch strings.ToUpper(strings.TrimSpace(str)) {
	case "2NF", "2":
		return SecondNF, nil
	case "3NF", "3":
		return ThirdNF, nil
	case "BCNF", "BC":
		return BoyceCoddNF, nil
	default:
		return 0, fmt.Errorf("rel: unknown normal form %q", str)
	}
}

// NormalForms records which normal forms a schema is in.  The forms are
// checked in order and a failure stops the checks, so IsBCNF implies Is3NF
// and Is3NF implies Is2NF.
type NormalForms struct {
	Is2NF  bool `json:"is_2nf"  yaml:"is_2nf"`
	Is3NF  bool `json:"is_3nf"  yaml:"is_3nf"`
	IsBCNF bool `json:"is_bcnf" yaml:"is_bcnf"`
}

// Satisfies reports whether the schema is in form f.
func (n NormalForms) Satisfies(f Form) bool {
	switch f {
	case SecondNF:
		return n.Is2NF
	case ThirdNF:
		return n.Is3NF
	case BoyceCoddNF:
		return n.IsBCNF
	default:
		return false
	}
}

// Highest names the strictest form satisfied, or "1NF".
func (n NormalForms) Highest() string {
	switch {
	case n.IsBCNF:
		return BoyceCoddNF.String()
	case n.Is3NF:
		return ThirdNF.String()
	case n.Is2NF:
		return SecondNF.String()
	default:
		return "1NF"
	}
}

// ClassifyNormalForms finds the candidate keys of s and checks it against
// 2NF, 3NF and BCNF.
func ClassifyNormalForms(s *Schema, opts ...Option) NormalForms {
	return ClassifyWithKeys(s, CandidateKeys(s, opts...))
}

// ClassifyWithKeys checks s against 2NF, 3NF and BCNF using keys already
// found.  The dependencies checked are the original ones of s.
func ClassifyWithKeys(s *Schema, keys att.CandKeys) NormalForms {
	var n NormalForms
	if n.Is2NF = Is2NF(s.deps); !n.Is2NF {
		return n
	}
	if n.Is3NF = Is3NF(s.attrs, s.deps, keys); !n.Is3NF {
		return n
	}
	n.IsBCNF = IsBCNF(s.deps, keys)
	return n
}

// Is2NF returns false when some dependency X -> Y in l has an attribute a in
// X such that Y is already determined by X - {a}, a partial dependency.
//
// Every dependency of l is checked, not only those whose determinant is part
// of a candidate key, which is stricter than the textbook definition.
func Is2NF(l Dependencies) bool {
	for _, fd := range l {
		for _, a := range fd.LHS {
			if fd.RHS.IsSubset(Closure(fd.LHS.Without(a), l)) {
				return false
			}
		}
	}
	return true
}

// Is3NF returns false when, for some candidate key K, a non key attribute a
// determines another attribute outside of K, a transitive dependency.
func Is3NF(t att.Set, l Dependencies, keys att.CandKeys) bool {
	for _, k := range keys {
		nonkey := t.Diff(k)
		for _, a := range nonkey {
			closure := Closure(att.Set{a}, l)
			if len(closure.Intersect(nonkey.Without(a))) > 0 {
				return false
			}
		}
	}
	return true
}

// IsBCNF returns false when the determinant of a non trivial dependency in l
// is not a superkey, that is, contains no candidate key.
func IsBCNF(l Dependencies, keys att.CandKeys) bool {
	for _, fd := range l {
		if fd.IsTrivial() {
			continue
		}
		if !keys.HasSubsetOf(fd.LHS) {
			return false
		}
	}
	return true
}
