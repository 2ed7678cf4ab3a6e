package rel

import (
	"golang.org/x/sync/errgroup"

	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
)

// Partition splits the attributes of a schema by the role they can play in a
// candidate key, with respect to a canonical cover.
type Partition struct {
	// Necessary attributes are on no right hand side, so nothing determines
	// them and every candidate key contains them.
	Necessary att.Set
	// Useless attributes are on no left hand side and are not necessary.
	// They never help determine anything, so no candidate key contains them.
	Useless att.Set
	// Middle attributes are neither useless nor determined by the necessary
	// attributes.  They are the only ones the key search has to combine.
	Middle att.Set
}

// PartitionAttributes classifies the attributes t under the canonical cover
// l.
func PartitionAttributes(t att.Set, l Dependencies) Partition {
	necessary := t.Diff(l.RightAttributes())
	useless := t.Diff(l.LeftAttributes()).Diff(necessary)
	middle := t.Diff(useless).Diff(Closure(necessary, l))
	return Partition{necessary, useless, middle}
}

// KeyFinder enumerates the candidate keys of a schema.  The search over
// combinations of middle attributes runs on a bounded pool of workers.
type KeyFinder struct {
	opts *options
}

// NewKeyFinder creates a KeyFinder.
func NewKeyFinder(opts ...Option) *KeyFinder {
	return &KeyFinder{newOptions(opts)}
}

// CandidateKeys returns every candidate key of s, smallest first.
func CandidateKeys(s *Schema, opts ...Option) att.CandKeys {
	return NewKeyFinder(opts...).Find(s)
}

// Find returns every candidate key of s, smallest first.
func (f *KeyFinder) Find(s *Schema) att.CandKeys {
	cover := f.opts.minimalCover(s.deps)
	keys, _ := f.FindWithCover(s.attrs, cover)
	return keys
}

// FindWithCover returns every candidate key of the attributes t under the
// canonical cover l, together with the partition the search was based on.
// l must already be a minimal cover for the partition to be meaningful.
//
// Combinations are searched by size, one size at a time, and each size is
// finished before the next one starts.  Every key of a given size is
// therefore known before any larger combination is tested, so a combination
// containing a known key is skipped without computing its closure.  The
// search always runs to completion.
func (f *KeyFinder) FindWithCover(t att.Set, l Dependencies) (att.CandKeys, Partition) {
	log := f.opts.log.With("component", "keys")
	part := PartitionAttributes(t, l)
	log.Debug("attributes partitioned",
		"necessary", part.Necessary.String(), "useless", part.Useless.String(), "middle", part.Middle.String())

	f.opts.metrics.Closure()
	if Closure(part.Necessary, l).Equal(t) {
		log.Debug("necessary attributes form the only key")
		f.opts.metrics.KeyFound()
		f.opts.metrics.Levels(0)
		return att.CandKeys{part.Necessary}, part
	}

	found := newKeySet()
	middle := part.Middle
	for size := 1; size <= len(middle); size++ {
		var g errgroup.Group
		g.SetLimit(f.opts.concurrency)
		for pivot := range middle {
			// the pivot is the smallest middle attribute of every
			// combination in its unit, so no combination is visited twice
			if len(middle)-pivot < size {
				break
			}
			g.Go(func() error {
				found.merge(f.searchPivot(t, l, part.Necessary, middle, pivot, size, found))
				return nil
			})
		}
		// the units never fail
		_ = g.Wait()
		log.Debug("level searched", "size", size, "keys", found.len())
	}
	f.opts.metrics.Levels(len(middle))

	keys := found.candKeys()
	log.Debug("candidate keys found", "count", len(keys))
	return keys, part
}

// searchPivot tests every combination of size middle attributes whose
// smallest member is middle[pivot], and returns the candidate keys among
// them.  found is only read.
func (f *KeyFinder) searchPivot(t att.Set, l Dependencies, necessary, middle att.Set, pivot, size int, found *keySet) []att.Set {
	base := necessary.With(middle[pivot])
	if found.hasSubsetOf(base) {
		f.opts.metrics.Combination("pruned")
		return nil
	}
	rest := middle[pivot+1:]
	var keys []att.Set
	combinations(len(rest), size-1, func(idx []int) {
		c := base
		for _, i := range idx {
			c = c.With(rest[i])
		}
		if found.hasSubsetOf(c) {
			f.opts.metrics.Combination("pruned")
			return
		}
		f.opts.metrics.Closure()
		if Closure(c, l).Equal(t) {
			f.opts.metrics.Combination("key")
			f.opts.metrics.KeyFound()
			keys = append(keys, c)
			return
		}
		f.opts.metrics.Combination("rejected")
	})
	return keys
}
