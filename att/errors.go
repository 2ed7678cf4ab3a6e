// errors for attribute sets that do not fit the universe they are used in.

package att

import "fmt"

// DomainError represents an error that occurs when a set of attributes is
// not a subset of the attributes it is expected to be drawn from.
type DomainError struct {
	Expected Set
	Found    Set
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("rel: expected attributes to be a subset of %v, found %v", e.Expected, e.Found)
}

// EnsureSubDomain returns an error if the input sub is not a subdomain of
// input dom.  Found holds only the offending attributes.
func EnsureSubDomain(sub, dom Set) error {
	if sub.IsSubset(dom) {
		return nil
	}
	return &DomainError{dom, sub.Diff(dom)}
}
