// errors are the typed failures reported while building a schema.  They are
// returned before any closure, cover or key computation starts, so a caller
// never sees partial results.

package rel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
)

// ErrEmptySide is wrapped by a MalformedDependencyError when either side of a
// dependency has no attributes.
var ErrEmptySide = errors.New("rel: dependency side is empty")

// MissingFieldError represents an error that occurs when a schema record
// lacks one of its two fields.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("rel: schema record has no %q field", e.Field)
}

// AttributeError represents an error that occurs when a dependency refers to
// attributes which are not in the schema's attribute universe.
type AttributeError struct {
	Dependency Dependency
	Expected   att.Set
	Found      att.Set
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("rel: dependency %v uses attributes %v not in %v", e.Dependency, e.Found, e.Expected)
}

// MalformedDependencyError represents an error that occurs when a dependency
// is not a pair of left and right hand sides.  Index is the position of the
// dependency in its input, or -1 when unknown.
type MalformedDependencyError struct {
	Index int
	Parts []string
	Err   error
}

func (e *MalformedDependencyError) Error() string {
	msg := fmt.Sprintf("rel: malformed dependency %d: [%s]", e.Index, strings.Join(e.Parts, ", "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedDependencyError) Unwrap() error {
	return e.Err
}

// IOError represents a failure to read or write a persisted schema record.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("rel: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ensureDependency returns an error if fd has an empty side or refers to an
// attribute outside of t.
func ensureDependency(i int, fd Dependency, t att.Set) error {
	if len(fd.LHS) == 0 || len(fd.RHS) == 0 {
		return &MalformedDependencyError{i, []string{fd.LHS.Concat(), fd.RHS.Concat()}, ErrEmptySide}
	}
	var de *att.DomainError
	if err := att.EnsureSubDomain(fd.LHS.Union(fd.RHS), t); errors.As(err, &de) {
		return &AttributeError{fd, t, de.Found}
	}
	return nil
}
