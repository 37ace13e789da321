package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vk/targetplan/internal/ctxlog"
	"github.com/vk/targetplan/internal/inmemorystore"
	"github.com/vk/targetplan/internal/modgraph"
	"github.com/vk/targetplan/internal/pipeline"
	"github.com/vk/targetplan/internal/resolve"
	"github.com/vk/targetplan/internal/target"
)

// RunError is returned by Run when one or more targets failed.
type RunError struct {
	Failed int
	Total  int
	Errs   []error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%d of %d targets failed", e.Failed, e.Total)
}

// Unwrap exposes every target's error to errors.Is and errors.As.
func (e *RunError) Unwrap() []error { return e.Errs }

// Run plans every loaded target and hands each plan to the toolchain. It
// returns a *RunError if any target failed; sibling targets are planned
// regardless.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	targets := a.model.Targets
	if len(targets) == 0 {
		a.logger.Warn("No targets found, planning not required.")
		a.results = nil
		return nil
	}

	a.logger.Info("🚀 Starting planning...", "targets", len(targets), "workers", a.config.WorkerCount)
	p := pipeline.New(a.registry, inmemorystore.New(), a.invoker, a.config.WorkerCount)
	a.results = p.Run(ctx, targets)

	var errs []error
	for _, r := range a.results {
		if r.Err != nil {
			logFailure(a.logger, r)
			errs = append(errs, r.Err)
			continue
		}
		a.logger.Info("Target planned.", "target", r.Target, "output", r.Plan.OutputKind(), "modules", len(r.Plan.Modules()), "plan_id", r.Plan.ID())
	}

	a.logger.Info("🏁 Planning finished.", "planned", len(a.results)-len(errs), "failed", len(errs))
	a.logger.Debug("App.Run method finished.")
	if len(errs) > 0 {
		return &RunError{Failed: len(errs), Total: len(a.results), Errs: errs}
	}
	return nil
}

// logFailure logs a target failure with its kind and the offending name or
// cycle, so a human can fix the descriptor or module graph.
func logFailure(logger *slog.Logger, r pipeline.Result) {
	attrs := []any{"target", r.Target, "stage", r.Stage.String()}
	if r.Source != "" {
		attrs = append(attrs, "source", r.Source)
	}

	var (
		parseErr *target.ParseError
		valErr   *target.ValidationError
		resErr   *resolve.ResolutionError
	)
	switch {
	case errors.As(r.Err, &parseErr):
		attrs = append(attrs, "kind", "parse")
		if parseErr.Field != "" {
			attrs = append(attrs, "field", parseErr.Field)
		}
	case errors.As(r.Err, &valErr):
		attrs = append(attrs, "kind", valErr.Reason.Error())
	case errors.As(r.Err, &resErr):
		attrs = append(attrs, "kind", resErr.Reason.Error())
		if resErr.Module != "" {
			attrs = append(attrs, "module", resErr.Module)
		}
		if len(resErr.Cycle) > 0 {
			attrs = append(attrs, "cycle", modgraph.FormatPath(resErr.Cycle))
		}
	case errors.Is(r.Err, context.Canceled), errors.Is(r.Err, context.DeadlineExceeded):
		attrs = append(attrs, "kind", "cancelled")
	}

	attrs = append(attrs, "error", r.Err)
	logger.Error("Target failed.", attrs...)
}
