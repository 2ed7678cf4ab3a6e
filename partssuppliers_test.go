package rel

import "github.com/JoseManuelVargas/ud-mcic-db-t4/att"

// This file contains example schemas.  The suppliers, parts & orders schemas
// follow the example provided by C. J. Date in his book "Database in Depth"
// in Figure 1-3, with one letter per attribute:
//
//	suppliers: S = SNO, N = SName, T = Status, C = City
//	parts:     P = PNO, N = PName, O = Color, W = Weight, C = City
//	orders:    P = PNO, S = SNO, Q = Qty

// suppliers schema, with candidate keys {S}, {N}
var suppliers = MustSchema("SNTC", "S->NTC,N->S")

// parts schema, with candidate keys {P}
var parts = MustSchema("PNOWC", "P->NOWC")

// orders schema, with candidate keys {P, S}
var orders = MustSchema("PSQ", "PS->Q")

// small schemas on either side of the normal form boundaries
var (
	// transitive dependency through B
	scenarioA = MustSchema("ABC", "A->B,B->C")
	// two single attribute keys
	scenarioB = MustSchema("AB", "A->B,B->A")
	// composite key with a transitive dependency
	scenarioC = MustSchema("ABCD", "AB->C,C->D")
)

// textbook is the example from Silberschatz, Korth & Sudarshan, "Database
// System Concepts", with candidate key {A, G}.
var textbook = MustSchema("ABCGHI", "A->B,A->C,CG->H,CG->I,B->H")

// overlapping has three overlapping two attribute keys {A, B}, {B, C}, {B, D}.
var overlapping = MustSchema("ABCD", "AB->C,C->D,D->A")

// set is shorthand for att.ParseSet.
func set(str string) att.Set {
	return att.ParseSet(str)
}

// keys is shorthand for a list of candidate keys written as strings.
func keys(strs ...string) att.CandKeys {
	cks := make(att.CandKeys, len(strs))
	for i, str := range strs {
		cks[i] = att.ParseSet(str)
	}
	att.OrderCandidateKeys(cks)
	return cks
}

// subsets returns every subset of t.
func subsets(t att.Set) []att.Set {
	var all []att.Set
	for mask := 0; mask < 1<<len(t); mask++ {
		s := att.Set{}
		for i, a := range t {
			if mask&(1<<i) != 0 {
				s = s.With(a)
			}
		}
		all = append(all, s)
	}
	return all
}

// bruteForceKeys finds the candidate keys of s by testing every subset of
// its attributes.
func bruteForceKeys(s *Schema) att.CandKeys {
	var cks att.CandKeys
	for _, sub := range subsets(s.Attributes()) {
		if s.IsCandidateKey(sub) {
			cks = append(cks, sub)
		}
	}
	att.OrderCandidateKeys(cks)
	return cks
}
