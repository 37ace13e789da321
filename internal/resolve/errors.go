package resolve

import (
	"errors"
	"fmt"

	"github.com/vk/targetplan/internal/modgraph"
)

var (
	ErrModuleNotFound   = errors.New("module not found")
	ErrCyclicDependency = errors.New("cyclic dependency")
)

// ResolutionError reports why a target's module set could not be built.
// Reason is ErrModuleNotFound or ErrCyclicDependency.
type ResolutionError struct {
	Target string
	Reason error

	// Module is the module that could not be found.
	Module string
	// RequiredBy is the chain of modules that led to Module, outermost first.
	RequiredBy []string
	// Cycle is the closed cycle path, e.g. [A B A].
	Cycle []string
	// Err is the lookup's own error, if it gave one.
	Err error
}

func (e *ResolutionError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case len(e.Cycle) > 0:
		return fmt.Sprintf("target %q: %s: %s", e.Target, e.Reason, modgraph.FormatPath(e.Cycle))
	case len(e.RequiredBy) > 0:
		return fmt.Sprintf("target %q: %s: %q (required by %s)", e.Target, e.Reason, e.Module, modgraph.FormatPath(e.RequiredBy))
	case e.Module != "":
		return fmt.Sprintf("target %q: %s: %q", e.Target, e.Reason, e.Module)
	}
	return fmt.Sprintf("target %q: %s", e.Target, e.Reason)
}

// Unwrap exposes Reason, and the lookup's error when present.
func (e *ResolutionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}
