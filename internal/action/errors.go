package action

import (
	"errors"
	"fmt"

	"github.com/atomicstack/helium/internal/identifier"
)

var (
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("action not found")
	// ErrMismatchInput matches every *MismatchInputError.
	ErrMismatchInput = errors.New("action input type mismatch")
)

// NotFoundError reports an invocation of an identifier with no registered
// action.
type NotFoundError struct {
	ID identifier.Identifier
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("action %q not found", e.ID.String())
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// MismatchInputError reports an invocation whose input does not have the
// type the handler was registered with. Both fields are Go type names.
type MismatchInputError struct {
	Expected string
	Found    string
}

func (e *MismatchInputError) Error() string {
	return fmt.Sprintf("action input mismatch: expected %s, found %s", e.Expected, e.Found)
}

func (e *MismatchInputError) Is(target error) bool { return target == ErrMismatchInput }

// IsMismatchInput reports whether err is or wraps a MismatchInputError.
func IsMismatchInput(err error) bool {
	return errors.Is(err, ErrMismatchInput)
}
