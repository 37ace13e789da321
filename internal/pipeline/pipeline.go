package pipeline

import (
	"context"
	"fmt"

	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/ctxlog"
	"github.com/vk/targetplan/internal/plan"
	"github.com/vk/targetplan/internal/resolve"
	"github.com/vk/targetplan/internal/stagestore"
	"github.com/vk/targetplan/internal/target"
	"github.com/vk/targetplan/internal/toolchain"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of planning one record.
type Result struct {
	// Target is the record's declared name, possibly empty or malformed.
	Target string
	// Source locates the record, if the loader recorded it.
	Source string
	// Plan is set when the target reached StagePlanned.
	Plan *plan.BuildPlan
	// Err is the error that halted the target.
	Err error
	// Stage is the last stage the target reached.
	Stage stagestore.Stage
}

// OK reports whether the target was planned.
func (r Result) OK() bool { return r.Err == nil && r.Plan != nil }

// Pipeline plans batches of targets.
type Pipeline struct {
	lookup  resolve.ModuleLookup
	store   stagestore.Store
	invoker toolchain.Invoker
	workers int
}

// New creates a pipeline. The lookup must not change while Run is in
// progress. A nil invoker discards plans; workers below one means one.
func New(lookup resolve.ModuleLookup, store stagestore.Store, invoker toolchain.Invoker, workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{lookup: lookup, store: store, invoker: invoker, workers: workers}
}

// storeKey identifies a record in the stage store. Records are keyed by
// batch position so that duplicate names stay apart.
func storeKey(i int, name string) string {
	return fmt.Sprintf("%d/%s", i, name)
}

// Run plans every record and returns one Result per record, in input order.
func (p *Pipeline) Run(ctx context.Context, records []*config.TargetRecord) []Result {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Pipeline started.", "targets", len(records), "workers", p.workers)

	results := make([]Result, len(records))
	descriptors := make([]*target.Descriptor, len(records))

	for i, rec := range records {
		if rec != nil {
			results[i].Target = rec.Name
			results[i].Source = rec.Source
		}
		d, err := target.Load(rec)
		if err != nil {
			p.fail(ctx, i, &results[i], err)
			continue
		}
		if err := p.advance(ctx, i, &results[i], stagestore.StageLoaded); err != nil {
			continue
		}
		descriptors[i] = d
	}

	for i, err := range target.ValidateBatch(descriptors) {
		if descriptors[i] == nil {
			continue
		}
		if err != nil {
			p.fail(ctx, i, &results[i], err)
			descriptors[i] = nil
			continue
		}
		if err := p.advance(ctx, i, &results[i], stagestore.StageValidated); err != nil {
			descriptors[i] = nil
		}
	}

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, d := range descriptors {
		if d == nil {
			continue
		}
		g.Go(func() error {
			p.planTarget(ctx, i, d, &results[i])
			return nil
		})
	}
	// Workers never return errors; failures are recorded per target.
	_ = g.Wait()

	logger.Debug("Pipeline finished.", "targets", len(records))
	return results
}

// planTarget runs the resolve and emit stages for one validated target.
func (p *Pipeline) planTarget(ctx context.Context, i int, d *target.Descriptor, res *Result) {
	tctx := ctxlog.With(ctx, "target", d.Name())
	logger := ctxlog.FromContext(tctx)

	set, err := resolve.Resolve(tctx, d, p.lookup)
	if err != nil {
		p.fail(tctx, i, res, err)
		return
	}
	if err := p.advance(tctx, i, res, stagestore.StageResolved); err != nil {
		return
	}

	bp := plan.Emit(d, set)
	if err := p.advance(tctx, i, res, stagestore.StagePlanned); err != nil {
		return
	}
	_ = p.store.SetOutput(tctx, storeKey(i, res.Target), bp)
	res.Plan = bp
	logger.Debug("Target planned.", "output", bp.OutputKind(), "modules", len(bp.Modules()), "plan_id", bp.ID())

	if p.invoker != nil {
		p.invoker.Invoke(tctx, bp)
	}
}

// advance moves a record to the next stage, failing it if the store
// rejects the move.
func (p *Pipeline) advance(ctx context.Context, i int, res *Result, to stagestore.Stage) error {
	if err := p.store.Advance(ctx, storeKey(i, res.Target), to); err != nil {
		p.fail(ctx, i, res, err)
		return err
	}
	res.Stage = to
	return nil
}

func (p *Pipeline) fail(ctx context.Context, i int, res *Result, err error) {
	ctxlog.FromContext(ctx).Debug("Target halted.", "target", res.Target, "stage", res.Stage, "error", err)
	res.Err = err
	_ = p.store.SetError(ctx, storeKey(i, res.Target), err)
}
