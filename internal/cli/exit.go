package cli

import (
	"errors"

	"github.com/pkgmap/pkgmap"
)

// usageError is an invalid invocation: bad flag combinations or inputs
// rejected before any file access.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

// ExitCode maps an error returned by command execution to the process exit
// code: 0 on success, 2 when the mapping document does not exist, 1 for
// everything else (invalid invocation, malformed document, unresolved names).
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, pkgmap.ErrNotFound):
		return 2
	default:
		return 1
	}
}
