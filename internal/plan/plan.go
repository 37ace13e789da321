package plan

import (
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/vk/targetplan/internal/resolve"
	"github.com/vk/targetplan/internal/target"
)

// BuildPlan is the immutable result of planning one target.
type BuildPlan struct {
	target        string
	targetType    target.TargetType
	output        OutputKind
	buildSettings target.BuildSettingsVersion
	includeOrder  target.IncludeOrderVersion
	modules       []string
	edges         map[string][]string
	fingerprint   string
	id            uuid.UUID
}

// Emit builds the plan for a validated descriptor and its resolved module
// set. It cannot fail: a descriptor that passed validation always has a
// known target type.
func Emit(d *target.Descriptor, set *resolve.ModuleSet) *BuildPlan {
	output, _ := OutputKindFor(d.Type())
	p := &BuildPlan{
		target:        d.Name(),
		targetType:    d.Type(),
		output:        output,
		buildSettings: d.BuildSettings(),
		includeOrder:  d.IncludeOrder(),
		modules:       set.Modules(),
		edges:         set.Edges(),
	}
	p.fingerprint = fingerprint(p)
	p.id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(p.fingerprint))
	return p
}

// ID is a deterministic identifier derived from the fingerprint.
func (p *BuildPlan) ID() uuid.UUID { return p.id }

// Target is the name of the planned target.
func (p *BuildPlan) Target() string { return p.target }

// TargetType is the type of the planned target.
func (p *BuildPlan) TargetType() target.TargetType { return p.targetType }

// OutputKind is the kind of binary the toolchain should produce.
func (p *BuildPlan) OutputKind() OutputKind { return p.output }

// BuildSettings is the concrete build-settings version.
func (p *BuildPlan) BuildSettings() target.BuildSettingsVersion { return p.buildSettings }

// IncludeOrder is the concrete include-order version.
func (p *BuildPlan) IncludeOrder() target.IncludeOrderVersion { return p.includeOrder }

// Modules returns the resolved modules, dependencies first.
func (p *BuildPlan) Modules() []string { return slices.Clone(p.modules) }

// Dependencies returns a copy of the direct-dependency edges of the plan's
// modules. Modules without dependencies are omitted.
func (p *BuildPlan) Dependencies() map[string][]string {
	out := make(map[string][]string, len(p.edges))
	for k, v := range p.edges {
		out[k] = slices.Clone(v)
	}
	return out
}

// Fingerprint is a hex sha256 digest of the plan's contents. Two plans have
// the same fingerprint exactly when they would drive the same build.
func (p *BuildPlan) Fingerprint() string { return p.fingerprint }

func (p *BuildPlan) String() string {
	return p.target + " (" + string(p.output) + ")"
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys(m map[string][]string) []string {
	return slices.Sorted(maps.Keys(m))
}
