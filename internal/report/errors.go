package report

import (
	"errors"
	"fmt"
)

var (
	ErrMissingChain     = errors.New("unknown certificate chain")
	ErrMissingComponent = errors.New("unknown component")
	ErrMissingService   = errors.New("unknown service")
)

// ReferenceError reports a join key with nothing on the other side.
type ReferenceError struct {
	Ref Unresolved
	Err error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%v %q referenced by %s", e.Err, e.Ref.ID, e.Ref.From)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}
