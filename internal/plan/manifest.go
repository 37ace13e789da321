package plan

import (
	"path/filepath"
	"strings"
)

// ManifestMarker sits between a target name and the format extension in
// manifest file names, e.g. "TestShooterClient.plan.json".
const ManifestMarker = ".plan"

// IsManifestFile reports whether path names a written plan manifest.
func IsManifestFile(path string) bool {
	ext := filepath.Ext(path)
	return ext != "" && strings.HasSuffix(strings.TrimSuffix(path, ext), ManifestMarker)
}

// Manifest is the serialisable form of a BuildPlan, as written for the
// toolchain layer.
type Manifest struct {
	ID                   string              `json:"id" yaml:"id"`
	Target               string              `json:"target" yaml:"target"`
	TargetType           string              `json:"targetType" yaml:"targetType"`
	OutputKind           string              `json:"outputKind" yaml:"outputKind"`
	BuildSettingsVersion string              `json:"buildSettingsVersion" yaml:"buildSettingsVersion"`
	IncludeOrderVersion  string              `json:"includeOrderVersion" yaml:"includeOrderVersion"`
	Modules              []string            `json:"modules" yaml:"modules"`
	Dependencies         map[string][]string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Fingerprint          string              `json:"fingerprint" yaml:"fingerprint"`
}

// Manifest returns the serialisable form of the plan.
func (p *BuildPlan) Manifest() *Manifest {
	return &Manifest{
		ID:                   p.id.String(),
		Target:               p.target,
		TargetType:           p.targetType.String(),
		OutputKind:           p.output.String(),
		BuildSettingsVersion: p.buildSettings.String(),
		IncludeOrderVersion:  p.includeOrder.String(),
		Modules:              append([]string{}, p.modules...),
		Dependencies:         p.Dependencies(),
		Fingerprint:          p.fingerprint,
	}
}
