package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/ident"
	"github.com/vk/targetplan/internal/resolve"
)

// ErrAlreadyRegistered is returned when two manifests declare the same module.
var ErrAlreadyRegistered = errors.New("module already registered")

// entry is the registry's private copy of a module manifest.
type entry struct {
	deps   []string
	source string
}

// Registry maps module names to their direct dependencies.
type Registry struct {
	modules map[string]*entry
	sealed  bool
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		modules: make(map[string]*entry),
	}
}

// Register adds a module manifest. Names and dependency names must be valid
// identifiers and a module may only be registered once. Register panics if
// the registry has already been sealed.
func (r *Registry) Register(rec *config.ModuleRecord) error {
	if r.sealed {
		panic("registry: Register called after Seal")
	}
	if rec == nil {
		return fmt.Errorf("module record is nil")
	}
	name, err := ident.Parse(rec.Name)
	if err != nil {
		return fmt.Errorf("module name: %w", err)
	}
	if prev, exists := r.modules[name]; exists {
		return fmt.Errorf("%w: %q (first declared at %s)", ErrAlreadyRegistered, name, describeSource(prev.source))
	}

	deps := rec.DirectDependencies()
	for i, dep := range deps {
		if _, err := ident.Parse(dep); err != nil {
			return fmt.Errorf("module %q: dependency #%d: %w", name, i, err)
		}
	}

	slog.Debug("Registering module.", "module", name, "dependencies", len(deps))
	r.modules[name] = &entry{deps: deps, source: rec.Source}
	return nil
}

// PopulateFromModel registers every module record of the model. All
// failures are collected so that one run reports every bad manifest.
func (r *Registry) PopulateFromModel(model *config.Model) error {
	if model == nil {
		return nil
	}
	var errs []error
	for _, rec := range model.Modules {
		if err := r.Register(rec); err != nil {
			if rec != nil && rec.Source != "" {
				err = fmt.Errorf("%s: %w", rec.Source, err)
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Seal freezes the registry. Lookups are only safe for concurrent use once
// the registry is sealed.
func (r *Registry) Seal() { r.sealed = true }

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool { return r.sealed }

// DirectDependencies implements resolve.ModuleLookup. Public dependencies
// come first, then private ones, each in declared order.
func (r *Registry) DirectDependencies(name string) ([]string, error) {
	e, ok := r.modules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", resolve.ErrModuleNotFound, name)
	}
	return slices.Clone(e.deps), nil
}

// Has reports whether the module is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.modules[name]
	return ok
}

// Len returns the number of registered modules.
func (r *Registry) Len() int { return len(r.modules) }

// Modules returns the registered module names in sorted order.
func (r *Registry) Modules() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func describeSource(source string) string {
	if source == "" {
		return "<unknown>"
	}
	return source
}

var _ resolve.ModuleLookup = (*Registry)(nil)
