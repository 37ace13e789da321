package resolve

import (
	"fmt"
	"slices"
)

// ModuleLookup answers "what does this module depend on directly". It must
// behave as a pure, read-only function for the duration of a resolution
// run. A module it does not know yields an error matching ErrModuleNotFound.
type ModuleLookup interface {
	DirectDependencies(name string) ([]string, error)
}

// StaticLookup is a ModuleLookup backed by a fixed map of module name to
// direct dependencies. It is the stand-in used wherever a registry would be
// overkill.
type StaticLookup map[string][]string

// DirectDependencies implements ModuleLookup.
func (l StaticLookup) DirectDependencies(name string) ([]string, error) {
	deps, ok := l[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, name)
	}
	return slices.Clone(deps), nil
}
