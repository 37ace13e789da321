package config

// Model is the unified, format-agnostic representation of everything read
// from configuration: target descriptors and module manifests.
type Model struct {
	Targets []*TargetRecord
	Modules []*ModuleRecord
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Merge appends the records of other to m. Duplicate names are kept; they
// are reported by the validator and the registry respectively.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Targets = append(m.Targets, other.Targets...)
	m.Modules = append(m.Modules, other.Modules...)
}

// TargetRecord is one raw target descriptor as read from a file. Fields
// hold whatever the file declared; empty strings mean "not declared".
type TargetRecord struct {
	Name                 string
	TargetType           string
	BuildSettingsVersion string
	IncludeOrderVersion  string
	ExtraModules         []string

	// Source locates the record for error messages, e.g. "targets.hcl:3".
	Source string
	// Err is set when the loader could read the record's position but not
	// its contents (wrong attribute types, schema violations). The record
	// then fails to load without affecting its siblings.
	Err error
}

// ModuleRecord is one module manifest entry.
type ModuleRecord struct {
	Name                string
	PublicDependencies  []string
	PrivateDependencies []string
	Source              string
}

// DirectDependencies returns the module's dependencies in lookup order:
// public first, then private, each in declared order.
func (r *ModuleRecord) DirectDependencies() []string {
	deps := make([]string, 0, len(r.PublicDependencies)+len(r.PrivateDependencies))
	deps = append(deps, r.PublicDependencies...)
	deps = append(deps, r.PrivateDependencies...)
	return deps
}
