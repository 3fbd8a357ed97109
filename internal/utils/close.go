package utils

import (
	"errors"
	"fmt"
	"io"
)

// Close closes c and ignores any error.
// Use for read-only files where a close error cannot lose data.
func Close(c io.Closer) {
	_ = c.Close()
}

// CloseInto closes c and records its error in *errp unless *errp already
// holds one. Use with a named return when closing flushes written data.
//
//	defer utils.CloseInto(f, &err, path)
func CloseInto(c io.Closer, errp *error, name string) {
	if cerr := c.Close(); cerr != nil {
		*errp = errors.Join(*errp, fmt.Errorf("failed to close %s: %w", name, cerr))
	}
}
