package resolve

import (
	"slices"

	"github.com/vk/targetplan/internal/modgraph"
)

// ModuleSet is the resolved, deduplicated module list of one target, in
// dependency order, along with the direct-dependency edges discovered while
// resolving it. It is immutable once returned by Resolve.
type ModuleSet struct {
	modules []string
	graph   *modgraph.Graph
}

// Modules returns the module names, dependencies first.
func (s *ModuleSet) Modules() []string { return slices.Clone(s.modules) }

// Len returns the number of modules.
func (s *ModuleSet) Len() int { return len(s.modules) }

// Contains reports whether the set includes the module.
func (s *ModuleSet) Contains(name string) bool { return s.graph.Has(name) }

// DependenciesOf returns the direct dependencies of a module in the set,
// in lookup order, or nil if the module is not in the set.
func (s *ModuleSet) DependenciesOf(name string) []string {
	deps, err := s.graph.Dependencies(name)
	if err != nil {
		return nil
	}
	return deps
}

// Edges returns every module's direct dependencies keyed by module name.
// Modules without dependencies are omitted.
func (s *ModuleSet) Edges() map[string][]string {
	edges := make(map[string][]string)
	for _, m := range s.modules {
		if deps := s.DependenciesOf(m); len(deps) > 0 {
			edges[m] = deps
		}
	}
	return edges
}
