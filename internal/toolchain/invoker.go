package toolchain

import (
	"context"
	"slices"
	"sync"

	"github.com/vk/targetplan/internal/plan"
)

// Invoker receives completed build plans. It has no way to report success
// or failure back to the planner; implementations deal with their own
// errors.
type Invoker interface {
	Invoke(ctx context.Context, p *plan.BuildPlan)
}

// InvokerFunc adapts a function to the Invoker interface.
type InvokerFunc func(ctx context.Context, p *plan.BuildPlan)

// Invoke calls f(ctx, p).
func (f InvokerFunc) Invoke(ctx context.Context, p *plan.BuildPlan) { f(ctx, p) }

// Recorder keeps every plan it receives in memory. It is safe for
// concurrent use.
type Recorder struct {
	mu    sync.Mutex
	plans []*plan.BuildPlan
}

// Invoke implements Invoker.
func (r *Recorder) Invoke(_ context.Context, p *plan.BuildPlan) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans = append(r.plans, p)
}

// Plans returns the received plans in arrival order.
func (r *Recorder) Plans() []*plan.BuildPlan {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.plans)
}

// Plan returns the plan received for the named target, or nil.
func (r *Recorder) Plan(target string) *plan.BuildPlan {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if p.Target() == target {
			return p
		}
	}
	return nil
}

// Multi hands every plan to each invoker in turn.
type Multi []Invoker

// Invoke implements Invoker.
func (m Multi) Invoke(ctx context.Context, p *plan.BuildPlan) {
	for _, inv := range m {
		inv.Invoke(ctx, p)
	}
}
