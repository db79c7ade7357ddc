package scaffold

import (
	"errors"
	"fmt"
)

// ErrWrite matches any *WriteError.
var ErrWrite = errors.New("writing declaration")

// WriteError reports a failed filesystem step while emitting a declaration.
// There is no cleanup: a file may be left partially written.
type WriteError struct {
	Op   string // "mkdir", "create" or "write"
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrWrite) succeed.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }
