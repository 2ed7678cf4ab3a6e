package att

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	fix := []struct {
		name string
		in   Set
		out  Set
	}{
		{"empty", NewSet(), Set{}},
		{"sorted", NewSet("C", "A", "B"), Set{"A", "B", "C"}},
		{"duplicates", NewSet("B", "A", "B", "A"), Set{"A", "B"}},
		{"parsed", ParseSet("CAB"), Set{"A", "B", "C"}},
		{"parsed duplicates", ParseSet("BAA"), Set{"A", "B"}},
	}
	for i, dt := range fix {
		if !dt.in.Equal(dt.out) {
			t.Errorf("%d. %s => %v, want %v", i, dt.name, dt.in, dt.out)
		}
	}
}

func TestSetOperations(t *testing.T) {
	abc := ParseSet("ABC")
	bd := ParseSet("BD")
	fix := []struct {
		name string
		in   Set
		out  Set
	}{
		{"union", abc.Union(bd), ParseSet("ABCD")},
		{"union empty", abc.Union(Set{}), abc},
		{"diff", abc.Diff(bd), ParseSet("AC")},
		{"diff disjoint", bd.Diff(ParseSet("AC")), bd},
		{"intersect", abc.Intersect(bd), ParseSet("B")},
		{"intersect disjoint", ParseSet("AC").Intersect(bd), Set{}},
		{"without", abc.Without("B"), ParseSet("AC")},
		{"without absent", abc.Without("Z"), abc},
		{"with", bd.With("A"), ParseSet("ABD")},
	}
	for i, dt := range fix {
		if !dt.in.Equal(dt.out) {
			t.Errorf("%d. %s => %v, want %v", i, dt.name, dt.in, dt.out)
		}
	}
}

func TestSetPredicates(t *testing.T) {
	abc := ParseSet("ABC")
	fix := []struct {
		name string
		in   bool
		out  bool
	}{
		{"contains", abc.Contains("B"), true},
		{"not contains", abc.Contains("D"), false},
		{"subset", ParseSet("AC").IsSubset(abc), true},
		{"equal is subset", abc.IsSubset(abc), true},
		{"empty subset", Set{}.IsSubset(abc), true},
		{"not subset", ParseSet("AD").IsSubset(abc), false},
		{"larger not subset", ParseSet("ABCD").IsSubset(abc), false},
		{"proper subset", ParseSet("AB").IsProperSubset(abc), true},
		{"equal not proper", abc.IsProperSubset(abc), false},
	}
	for i, dt := range fix {
		if dt.in != dt.out {
			t.Errorf("%d. %s => %v, want %v", i, dt.name, dt.in, dt.out)
		}
	}
}

func TestSetStrings(t *testing.T) {
	s := ParseSet("BCA")
	assert.Equal(t, "{A, B, C}", s.String())
	assert.Equal(t, "ABC", s.Concat())
	assert.Equal(t, []string{"A", "B", "C"}, s.Strings())
	assert.NotEqual(t, NewSet("AB").Key(), NewSet("A", "B").Key())
	assert.Equal(t, NewSet("B", "A").Key(), ParseSet("AB").Key())
}

func TestOrderCandidateKeys(t *testing.T) {
	cks := CandKeys{ParseSet("CD"), ParseSet("B"), ParseSet("AD"), ParseSet("A")}
	OrderCandidateKeys(cks)
	want := CandKeys{ParseSet("A"), ParseSet("B"), ParseSet("AD"), ParseSet("CD")}
	assert.Equal(t, want, cks)

	fromStrings := String2CandKeys([][]string{{"SNO", "PNO"}, {"SName"}})
	assert.Equal(t, CandKeys{NewSet("SName"), NewSet("PNO", "SNO")}, fromStrings)
}

func TestCandKeysQueries(t *testing.T) {
	cks := CandKeys{ParseSet("A"), ParseSet("BC")}
	assert.True(t, cks.Contains(ParseSet("CB")))
	assert.False(t, cks.Contains(ParseSet("B")))
	assert.True(t, cks.HasSubsetOf(ParseSet("BCD")))
	assert.False(t, cks.HasSubsetOf(ParseSet("BD")))
	assert.Equal(t, ParseSet("ABC"), cks.Prime())
}

func TestEnsureSubDomain(t *testing.T) {
	dom := ParseSet("ABC")
	assert.NoError(t, EnsureSubDomain(ParseSet("AB"), dom))

	err := EnsureSubDomain(ParseSet("ABXY"), dom)
	var de *DomainError
	if assert.ErrorAs(t, err, &de) {
		assert.Equal(t, ParseSet("XY"), de.Found)
		assert.Equal(t, dom, de.Expected)
		assert.Equal(t, "rel: expected attributes to be a subset of {A, B, C}, found {X, Y}", err.Error())
	}
}
