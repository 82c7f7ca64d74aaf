package pkgmap

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound indicates that no mapping document exists at the resolved
// location. Callers typically treat this as "no customization defined" and
// surface it separately from hard failures.
var ErrNotFound = errors.New("mapping document not found")

// MalformedDocumentError indicates that a mapping document exists but could
// not be parsed. The original parse diagnostic is preserved in Err.
type MalformedDocumentError struct {
	Path string
	Err  error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed mapping document %s: %v", e.Path, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// UnresolvedError reports every logical name that was absent from the
// effective mapping, not just the first, so a caller can fix the whole
// document in one pass.
type UnresolvedError struct {
	Names []string
}

func (e *UnresolvedError) Error() string {
	return "no mapping found for: " + strings.Join(e.Names, ", ")
}
