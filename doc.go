// Package rel analyses relation schemas through their functional
// dependencies.
//
// Basics
//
// What follows is a brief introduction.  For a more complete one, please read
// C. J. Date's book "Database in Depth".  This package uses the same
// terminology.
//
// A relation schema R = (T, L) is a heading T of attributes and a set L of
// functional dependencies X -> Y between subsets of T.  A dependency says
// that any two tuples which agree on X also agree on Y.  The package never
// looks at tuples; everything is derived from the dependencies alone.
//
// The operations on a schema are:
//
// Closure, which finds every attribute a set of attributes determines.
//
// CanonicalCover, which reduces the dependencies to an equivalent set where
// every right hand side is a single attribute, no left hand side has an
// extraneous attribute, and no dependency follows from the others.
//
// CandidateKeys, which finds the minimal sets of attributes that determine
// the whole heading.  Attributes are first split into those every key needs,
// those no key needs, and the rest, and only combinations of the rest are
// searched, by a bounded pool of workers.
//
// ClassifyNormalForms, which checks the schema against 2NF, 3NF and BCNF.
//
// CheckEquivalence, which tells whether another set of dependencies says the
// same thing as the schema's, and if not, why.
//
// Attributes are represented in a subpackage, att.  Briefly, they are strings
// collected into sorted sets, with the set operations the analyses need.
//
// Schemas are persisted as records with two fields, the attributes and the
// dependencies:
//
//	{"t_set": ["A", "B", "C"], "l_set": [["A", "B"], ["B", "C"]]}
//
// LoadSchema and SaveSchema convert between records and schemas; reading and
// writing the files themselves is left to the internal recordio package.
package rel

// variable naming conventions
//
// s, s1, s2, ... all represent schemas.
//
// t is an attribute universe and l a set of dependencies, after the T and L
// of R = (T, L).
//
// fd, fd1, fd2, ... all represent single dependencies, and lhs & rhs their
// sides.
//
// k, ck, cks are candidate keys or lists of them.
