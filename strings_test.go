package rel

import (
	"fmt"
	"testing"
)

// tests for string conversion
// including String, GoString, and benchmarks

func TestGoString(t *testing.T) {
	out := `rel.Record{TSet: []string{"A", "B", "C", "D"}, LSet: [][]string{{"C", "D"}, {"AB", "C"}}}`
	if in := fmt.Sprintf("%#v", scenarioC); in != out {
		t.Errorf("GoString(scenarioC) = %q, want %q", in, out)
	}
}

func TestString(t *testing.T) {
	fix := []struct {
		name string
		in   string
		out  string
	}{
		{"dependency", FD("BA", "C").String(), "AB->C"},
		{"dependencies", scenarioA.deps.String(), "{A->B, B->C}"},
		{"schema", scenarioC.String(), "R(T={A, B, C, D}, L={C->D, AB->C})"},
		{"empty schema", MustSchema("A", "").String(), "R(T={A}, L={})"},
	}
	for i, dt := range fix {
		if dt.in != dt.out {
			t.Errorf("%d. String(%s) = %q, want %q", i, dt.name, dt.in, dt.out)
		}
	}
}

func TestDependencyTable(t *testing.T) {
	out := ` +--------------+------------+
 |  Determinant |  Dependent |
 +--------------+------------+
 |            A |          B |
 |            B |          C |
 +--------------+------------+`
	if in := DependencyTable(scenarioA.deps); in != out {
		t.Errorf("DependencyTable(scenarioA) = \n%v\n, want \n%v", in, out)
	}

	empty := ` +--------------+------------+
 |  Determinant |  Dependent |
 +--------------+------------+
 +--------------+------------+`
	if in := DependencyTable(Dependencies{}); in != empty {
		t.Errorf("DependencyTable({}) = \n%v\n, want \n%v", in, empty)
	}
}

func TestKeyTable(t *testing.T) {
	out := ` +----------------+-------+
 |  Candidate Key |  Size |
 +----------------+-------+
 |            {A} |     1 |
 |            {B} |     1 |
 +----------------+-------+`
	if in := KeyTable(keys("A", "B")); in != out {
		t.Errorf("KeyTable(A, B) = \n%v\n, want \n%v", in, out)
	}
}

func TestAnalysisString(t *testing.T) {
	out := `R(T={A, B, C}, L={A->B, B->C})
necessary: {A}, useless: {C}, middle: {}
normal form: 2NF (2NF true, 3NF false, BCNF false)
 +--------------+------------+
 |  Determinant |  Dependent |
 +--------------+------------+
 |            A |          B |
 |            B |          C |
 +--------------+------------+
 +----------------+-------+
 |  Candidate Key |  Size |
 +----------------+-------+
 |            {A} |     1 |
 +----------------+-------+`
	if in := Analyze(scenarioA).String(); in != out {
		t.Errorf("Analyze(scenarioA).String() = \n%v\n, want \n%v", in, out)
	}
}

func BenchmarkAnalysisString(b *testing.B) {
	a := Analyze(textbook)
	for b.Loop() {
		_ = a.String()
	}
}
