package resolve

import (
	"context"
	"errors"
	"slices"

	"github.com/vk/targetplan/internal/ctxlog"
	"github.com/vk/targetplan/internal/modgraph"
	"github.com/vk/targetplan/internal/target"
)

// Resolve expands the descriptor's extra module names into a ModuleSet
// using a depth-first traversal over the lookup. ctx supplies the logger;
// a context that is already done fails the call before any work starts.
func Resolve(ctx context.Context, d *target.Descriptor, lookup ModuleLookup) (*ModuleSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolve: starting module traversal.", "target", d.Name(), "roots", d.ExtraModules())

	r := &resolver{
		target:  d.Name(),
		lookup:  lookup,
		graph:   modgraph.New(),
		done:    make(map[string]bool),
		onStack: make(map[string]int),
	}

	for _, root := range d.ExtraModules() {
		if err := r.visit(root); err != nil {
			logger.Debug("Resolve: traversal failed.", "target", d.Name(), "error", err)
			return nil, err
		}
	}

	logger.Debug("Resolve: traversal complete.", "target", d.Name(), "modules", len(r.order))
	return &ModuleSet{modules: r.order, graph: r.graph}, nil
}

// resolver holds the traversal state of one Resolve call.
type resolver struct {
	target string
	lookup ModuleLookup
	graph  *modgraph.Graph

	// done marks modules that have been fully expanded and appended.
	done map[string]bool
	// onStack maps a module on the current recursion path to its position.
	onStack map[string]int
	stack   []string
	order   []string
}

func (r *resolver) visit(name string) error {
	if r.done[name] {
		return nil
	}
	if pos, ok := r.onStack[name]; ok {
		cycle := append(slices.Clone(r.stack[pos:]), name)
		return &ResolutionError{Target: r.target, Reason: ErrCyclicDependency, Cycle: cycle}
	}

	deps, err := r.lookup.DirectDependencies(name)
	if err != nil {
		resErr := &ResolutionError{
			Target:     r.target,
			Reason:     ErrModuleNotFound,
			Module:     name,
			RequiredBy: slices.Clone(r.stack),
		}
		if !errors.Is(err, ErrModuleNotFound) {
			// Lookups are static configuration, so any failure means the
			// module cannot be found; keep the cause for the message.
			resErr.Err = err
		}
		return resErr
	}

	r.graph.AddNode(name)
	r.onStack[name] = len(r.stack)
	r.stack = append(r.stack, name)

	for _, dep := range deps {
		if err := r.visit(dep); err != nil {
			return err
		}
		// dep is now in the graph: visit either appended it or found it done.
		if err := r.graph.AddEdge(name, dep); err != nil {
			return err
		}
	}

	r.stack = r.stack[:len(r.stack)-1]
	delete(r.onStack, name)
	r.done[name] = true
	r.order = append(r.order, name)
	return nil
}
