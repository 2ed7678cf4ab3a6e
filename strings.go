// strings deals with string representation of schemas and their analyses

package rel

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
)

// String writes fd in arrow notation, like "AB->C".
func (fd Dependency) String() string {
	return fd.LHS.Concat() + "->" + fd.RHS.Concat()
}

func (l Dependencies) String() string {
	str := make([]string, len(l))
	for i, fd := range l {
		str[i] = fd.String()
	}
	return "{" + strings.Join(str, ", ") + "}"
}

// String writes s as R(T={...}, L={...}).
func (s *Schema) String() string {
	return fmt.Sprintf("R(T=%v, L=%v)", s.attrs, s.deps)
}

// GoString writes the Record literal which LoadSchema turns back into s.
func (s *Schema) GoString() string {
	rec := SaveSchema(s)
	t := make([]string, len(rec.TSet))
	for i, a := range rec.TSet {
		t[i] = strconv.Quote(a)
	}
	l := make([]string, len(rec.LSet))
	for i, pair := range rec.LSet {
		l[i] = "{" + strconv.Quote(pair[0]) + ", " + strconv.Quote(pair[1]) + "}"
	}
	return "rel.Record{TSet: []string{" + strings.Join(t, ", ") + "}, LSet: [][]string{" + strings.Join(l, ", ") + "}}"
}

// String writes the analysis as a short report followed by tables of the
// canonical cover and the candidate keys.
func (a *Analysis) String() string {
	s := new(bytes.Buffer)
	fmt.Fprintf(s, "%v\n", a.Schema)
	fmt.Fprintf(s, "necessary: %v, useless: %v, middle: %v\n",
		a.Partition.Necessary, a.Partition.Useless, a.Partition.Middle)
	fmt.Fprintf(s, "normal form: %s (2NF %t, 3NF %t, BCNF %t)\n",
		a.NormalForms.Highest(), a.NormalForms.Is2NF, a.NormalForms.Is3NF, a.NormalForms.IsBCNF)
	s.WriteString(DependencyTable(a.Cover.deps))
	s.WriteString("\n")
	s.WriteString(KeyTable(a.Keys))
	return s.String()
}

// DependencyTable writes l as a table with one dependency per row.
func DependencyTable(l Dependencies) string {
	rows := make([][]string, len(l))
	for i, fd := range l {
		rows[i] = []string{fd.LHS.Concat(), fd.RHS.Concat()}
	}
	return stringTabTable([]string{"Determinant", "Dependent"}, rows)
}

// KeyTable writes keys as a table with one candidate key per row.
func KeyTable(keys att.CandKeys) string {
	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{k.String(), strconv.Itoa(len(k))}
	}
	return stringTabTable([]string{"Candidate Key", "Size"}, rows)
}

// stringTabTable makes a boxed, right aligned table out of a heading and
// rows of cells.  Every row must have as many cells as the heading.
func stringTabTable(heading []string, rows [][]string) string {
	// use a buffer to write to and later turn into a string
	s := new(bytes.Buffer)

	w := new(tabwriter.Writer)
	// \xff is used as an escape delim; see the tabwriter docs
	// align elements to the right as well
	w.Init(s, 1, 1, 1, ' ', tabwriter.StripEscape|tabwriter.AlignRight)

	// make a spacer, to be replaced later
	for range heading {
		fmt.Fprintf(w, "+\t ")
	}
	fmt.Fprintf(w, "\t+\n")

	for _, name := range heading {
		fmt.Fprintf(w, "|\t \xff%s\xff ", name)
	}
	fmt.Fprintf(w, "\t|\n")

	for _, row := range rows {
		for _, cell := range row {
			fmt.Fprintf(w, "|\t \xff%s\xff ", cell)
		}
		fmt.Fprintf(w, "\t|\n")
	}
	w.Flush()

	// replace the blanks in the spacer with "-"; every line starts with the
	// padding of the first column
	lines := strings.Split(strings.TrimRight(s.String(), "\n"), "\n")
	sep := " " + strings.ReplaceAll(lines[0][1:], " ", "-")
	out := make([]string, 0, len(lines)+2)
	out = append(out, sep, lines[1], sep)
	out = append(out, lines[2:]...)
	out = append(out, sep)
	return strings.Join(out, "\n")
}
