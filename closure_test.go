package rel

import (
	"testing"

	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
)

func TestClosure(t *testing.T) {
	fix := []struct {
		name string
		seed att.Set
		l    Dependencies
		out  att.Set
	}{
		{"transitive", set("A"), scenarioA.deps, set("ABC")},
		{"middle of a chain", set("B"), scenarioA.deps, set("BC")},
		{"end of a chain", set("C"), scenarioA.deps, set("C")},
		{"empty seed", set(""), scenarioA.deps, set("")},
		{"no dependencies", set("AB"), Dependencies{}, set("AB")},
		{"composite determinant", set("AB"), scenarioC.deps, set("ABCD")},
		{"half a determinant", set("A"), scenarioC.deps, set("A")},
		{"cycle", set("A"), scenarioB.deps, set("AB")},
		{"textbook AG", set("AG"), textbook.deps, set("ABCGHI")},
		{"textbook CG", set("CG"), textbook.deps, set("CGHI")},
	}
	for i, dt := range fix {
		if out := Closure(dt.seed, dt.l); !out.Equal(dt.out) {
			t.Errorf("%d. %s: Closure(%v) => %v, want %v", i, dt.name, dt.seed, out, dt.out)
		}
	}
}

func TestClosureProperties(t *testing.T) {
	for _, s := range []*Schema{scenarioA, scenarioB, scenarioC, textbook, overlapping, suppliers} {
		all := subsets(s.attrs)
		for _, x := range all {
			cx := Closure(x, s.deps)
			if !x.IsSubset(cx) {
				t.Errorf("%v: Closure(%v) = %v does not contain its seed", s, x, cx)
			}
			if again := Closure(cx, s.deps); !again.Equal(cx) {
				t.Errorf("%v: Closure(%v) = %v, want %v", s, cx, again, cx)
			}
			for _, y := range all {
				if !x.IsSubset(y) {
					continue
				}
				if cy := Closure(y, s.deps); !cx.IsSubset(cy) {
					t.Errorf("%v: Closure(%v) = %v is not within Closure(%v) = %v", s, x, cx, y, cy)
				}
			}
		}
	}
}

func TestImplies(t *testing.T) {
	fix := []struct {
		name string
		l    Dependencies
		fd   Dependency
		out  bool
	}{
		{"member", scenarioA.deps, FD("A", "B"), true},
		{"transitive", scenarioA.deps, FD("A", "C"), true},
		{"trivial", scenarioA.deps, FD("BC", "C"), true},
		{"augmented", scenarioA.deps, FD("AC", "B"), true},
		{"reversed", scenarioA.deps, FD("C", "A"), false},
		{"partial determinant", scenarioC.deps, FD("A", "C"), false},
	}
	for i, dt := range fix {
		if out := Implies(dt.l, dt.fd); out != dt.out {
			t.Errorf("%d. %s: Implies(%v, %v) => %v, want %v", i, dt.name, dt.l, dt.fd, out, dt.out)
		}
	}

	if !Derives(scenarioA.deps, Dependencies{FD("A", "BC"), FD("B", "C")}) {
		t.Errorf("Derives(%v) => false, want true", scenarioA.deps)
	}
	if Derives(scenarioA.deps, Dependencies{FD("A", "C"), FD("C", "B")}) {
		t.Errorf("Derives(%v) => true, want false", scenarioA.deps)
	}
}

func BenchmarkClosure(b *testing.B) {
	seed := set("AG")
	for b.Loop() {
		Closure(seed, textbook.deps)
	}
}
