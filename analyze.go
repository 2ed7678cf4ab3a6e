package rel

import (
	"time"

	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
)

// Analysis is everything known about a schema after a full analysis.
type Analysis struct {
	Schema      *Schema
	Cover       *Schema
	Partition   Partition
	Keys        att.CandKeys
	NormalForms NormalForms
}

// Analyze builds the canonical cover of s, finds its candidate keys and
// classifies it.
func Analyze(s *Schema, opts ...Option) *Analysis {
	o := newOptions(opts)
	start := time.Now()
	cover := s.withDependencies(o.minimalCover(s.deps))
	keys, part := (&KeyFinder{o}).FindWithCover(cover.attrs, cover.deps)
	a := &Analysis{
		Schema:      s,
		Cover:       cover,
		Partition:   part,
		Keys:        keys,
		NormalForms: ClassifyWithKeys(s, keys),
	}
	o.log.Info("schema analysed",
		"attributes", s.Deg(), "dependencies", len(s.deps), "cover", len(cover.deps),
		"keys", len(keys), "normal_form", a.NormalForms.Highest(), "elapsed", time.Since(start))
	return a
}
