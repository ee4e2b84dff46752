package traverse

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousModule is matched by *AmbiguousModuleError.
	ErrAmbiguousModule = errors.New("ambiguous module")
	// ErrNotExpandable is returned when module expansion is asked of a
	// non-source item.
	ErrNotExpandable = errors.New("item cannot be expanded into modules")
)

// AmbiguousModuleError reports a `mod` declaration for which both the
// directory entry (name/mod.rs) and the sibling file (name.rs) exist.
type AmbiguousModuleError struct {
	Declarer string
	Module   string
	DirEntry string
	Sibling  string
}

func (e *AmbiguousModuleError) Error() string {
	return fmt.Sprintf("%s: module %q is ambiguous: both %s and %s exist",
		e.Declarer, e.Module, e.DirEntry, e.Sibling)
}

func (e *AmbiguousModuleError) Is(target error) bool {
	return target == ErrAmbiguousModule
}
