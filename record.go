// records are the neutral form a schema is persisted in:
//
//	{"t_set": ["A", "B", "C"], "l_set": [["A", "B"], ["B", "C"]]}
//
// The attributes of each side of a dependency are written concatenated.

package rel

import (
	"sort"

	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
)

// Record is the persisted form of a Schema.  A nil field means the field was
// absent from the source.
type Record struct {
	TSet []string   `json:"t_set" yaml:"t_set"`
	LSet [][]string `json:"l_set" yaml:"l_set"`
}

// LoadSchema validates a record and creates a Schema from it.
func LoadSchema(rec Record) (*Schema, error) {
	if rec.TSet == nil {
		return nil, &MissingFieldError{"t_set"}
	}
	if rec.LSet == nil {
		return nil, &MissingFieldError{"l_set"}
	}
	l, err := recordDependencies(rec.LSet)
	if err != nil {
		return nil, err
	}
	attrs := make([]att.Attribute, len(rec.TSet))
	for i, a := range rec.TSet {
		attrs[i] = att.Attribute(a)
	}
	return NewSchema(att.NewSet(attrs...), l)
}

// LoadDependencies reads only the l_set of a record, which is how another set
// of dependencies is supplied for an equivalence check.
func LoadDependencies(rec Record) (Dependencies, error) {
	if rec.LSet == nil {
		return nil, &MissingFieldError{"l_set"}
	}
	return recordDependencies(rec.LSet)
}

func recordDependencies(lset [][]string) (Dependencies, error) {
	fds := make(Dependencies, len(lset))
	for i, pair := range lset {
		if len(pair) != 2 {
			return nil, &MalformedDependencyError{i, pair, nil}
		}
		fds[i] = FD(pair[0], pair[1])
	}
	return fds, nil
}

// SaveSchema creates the record for s.  LoadSchema(SaveSchema(s)) is a schema
// equal to s.
func SaveSchema(s *Schema) Record {
	rec := Record{
		TSet: s.attrs.Strings(),
		LSet: make([][]string, len(s.deps)),
	}
	sort.Strings(rec.TSet)
	for i, fd := range s.deps {
		rec.LSet[i] = []string{fd.LHS.Concat(), fd.RHS.Concat()}
	}
	return rec
}
