package lexical

import (
	"errors"
	"fmt"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// Sentinels for errors.Is.
var (
	// ErrStructuralAssertion means the tree and its text model disagree.
	ErrStructuralAssertion = errors.New("structural assertion failed")

	// ErrUnsupportedMutation means a mutation has no text patching rule.
	ErrUnsupportedMutation = errors.New("unsupported mutation")
)

// AssertionError reports a token or child that could not be located where
// the text model requires it.
type AssertionError struct {
	Node   *jast.Node
	Reason string
}

func (e *AssertionError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("%s: %s", ErrStructuralAssertion, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrStructuralAssertion, e.Node.Kind, e.Reason)
}

// Is makes errors.Is(err, ErrStructuralAssertion) hold.
func (e *AssertionError) Is(target error) bool {
	return target == ErrStructuralAssertion
}

func assertionf(n *jast.Node, format string, args ...any) error {
	return &AssertionError{Node: n, Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedMutationError reports a change the printer cannot mirror in the
// text. The change is vetoed, so the tree is left as it was.
type UnsupportedMutationError struct {
	Change jast.Change
	Reason string
}

func (e *UnsupportedMutationError) Error() string {
	return fmt.Sprintf("%s: %s %s.%s: %s",
		ErrUnsupportedMutation, e.Change.Kind, e.Change.Node.Kind, e.Change.Property, e.Reason)
}

// Is makes errors.Is(err, ErrUnsupportedMutation) hold.
func (e *UnsupportedMutationError) Is(target error) bool {
	return target == ErrUnsupportedMutation
}

func unsupported(change jast.Change, reason string) error {
	return &UnsupportedMutationError{Change: change, Reason: reason}
}
