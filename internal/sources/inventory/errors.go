package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen is returned when an input file cannot be opened.
	ErrOpen = errors.New("failed to open")

	ErrShortRow     = errors.New("not enough fields")
	ErrInvalidDepth = errors.New("invalid depth")
)

// RowError locates a malformed data row.
type RowError struct {
	File string
	Line int
	Err  error

	// Detail is the offending value or the field count, depending on Err.
	Detail string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s line %d: %v: %s", e.File, e.Line, e.Err, e.Detail)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
