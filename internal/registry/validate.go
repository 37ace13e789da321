package registry

import (
	"context"
	"fmt"

	"github.com/vk/targetplan/internal/ctxlog"
	"github.com/vk/targetplan/internal/modgraph"
	"github.com/vk/targetplan/internal/resolve"
)

// Validate checks the registry for problems that only matter if a target
// reaches them: dependencies on unregistered modules and dependency cycles.
// Each problem is logged as a warning and returned; none of them is fatal,
// since resolution reports the same conditions per target as errors.
func (r *Registry) Validate(ctx context.Context) []error {
	logger := ctxlog.FromContext(ctx)
	var warnings []error

	g := modgraph.New()
	names := r.Modules()
	for _, name := range names {
		g.AddNode(name)
	}

	for _, name := range names {
		for _, dep := range r.modules[name].deps {
			if !g.Has(dep) {
				warnings = append(warnings, fmt.Errorf("module %q: %w: %s", name, resolve.ErrModuleNotFound, dep))
				logger.Warn("Module depends on an unregistered module.", "module", name, "dependency", dep, "source", r.modules[name].source)
				continue
			}
			if err := g.AddEdge(name, dep); err != nil {
				// Both nodes were added above.
				panic(err)
			}
		}
	}

	if cycle := g.FindCycle(); cycle != nil {
		warnings = append(warnings, fmt.Errorf("%w: %s", resolve.ErrCyclicDependency, modgraph.FormatPath(cycle)))
		logger.Warn("Module manifests contain a dependency cycle.", "cycle", modgraph.FormatPath(cycle))
	}

	if len(warnings) == 0 {
		logger.Debug("Registry validation passed.", "modules", len(names))
	}
	return warnings
}
