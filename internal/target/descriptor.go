package target

import (
	"fmt"
	"slices"
)

// Descriptor is a loaded target descriptor. It is created once, by Load or
// New, and never changes afterwards; accessors hand out copies.
type Descriptor struct {
	name          string
	targetType    TargetType
	buildSettings BuildSettingsVersion
	includeOrder  IncludeOrderVersion
	extraModules  []string
	source        string

	// declared keeps version names exactly as written, so that an unknown
	// value can be reported by the name the user typed.
	declaredBuildSettings string
	declaredIncludeOrder  string
}

// New builds a descriptor directly from typed values. It performs no
// validation; run Validate or ValidateBatch before resolving it.
func New(name string, t TargetType, bs BuildSettingsVersion, io IncludeOrderVersion, extraModules ...string) *Descriptor {
	d := &Descriptor{
		name:          name,
		targetType:    t,
		buildSettings: bs,
		includeOrder:  io,
		extraModules:  slices.Clone(extraModules),
	}
	if bs.Known() {
		d.declaredBuildSettings = bs.String()
	}
	if io.Known() {
		d.declaredIncludeOrder = io.String()
	}
	return d
}

// Name is the target's unique name.
func (d *Descriptor) Name() string { return d.name }

// Type is the target type.
func (d *Descriptor) Type() TargetType { return d.targetType }

// BuildSettings is the concrete build-settings version.
func (d *Descriptor) BuildSettings() BuildSettingsVersion { return d.buildSettings }

// IncludeOrder is the concrete include-order version.
func (d *Descriptor) IncludeOrder() IncludeOrderVersion { return d.includeOrder }

// ExtraModules returns a copy of the module names the target links, in
// declared order.
func (d *Descriptor) ExtraModules() []string { return slices.Clone(d.extraModules) }

// Source locates the record the descriptor was loaded from, if any.
func (d *Descriptor) Source() string { return d.source }

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s(%s, %s, %s, %v)", d.name, d.targetType, d.buildSettings, d.includeOrder, d.extraModules)
}
