package rel

import (
	"sync"

	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
)

// combinations calls fn with every r element combination of the indices
// 0..n-1, in lexicographic order.  The slice passed to fn is reused between
// calls.
func combinations(n, r int, fn func(idx []int)) {
	if r < 0 || r > n {
		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		// find the rightmost index that can still be advanced
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// keySet is the candidate key collection shared by the search workers.
type keySet struct {
	mu   sync.RWMutex
	keys map[string]att.Set
}

func newKeySet() *keySet {
	return &keySet{keys: make(map[string]att.Set)}
}

// hasSubsetOf returns true if a key already found is contained in s.
func (ks *keySet) hasSubsetOf(s att.Set) bool {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	for _, k := range ks.keys {
		if k.IsSubset(s) {
			return true
		}
	}
	return false
}

// merge adds the keys a worker found.
func (ks *keySet) merge(found []att.Set) {
	if len(found) == 0 {
		return
	}
	ks.mu.Lock()
	defer ks.mu.Unlock()
	for _, k := range found {
		ks.keys[k.Key()] = k
	}
}

func (ks *keySet) len() int {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	return len(ks.keys)
}

// candKeys returns the keys ordered.
func (ks *keySet) candKeys() att.CandKeys {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	cks := make(att.CandKeys, 0, len(ks.keys))
	for _, k := range ks.keys {
		cks = append(cks, k)
	}
	att.OrderCandidateKeys(cks)
	return cks
}
