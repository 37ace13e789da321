package target

import "strings"

// BuildSettingsVersion pins the default build settings of the compilation
// layer. Values are ordered: a larger value is a newer schema.
type BuildSettingsVersion int

const (
	BuildSettingsUnknown BuildSettingsVersion = iota
	BuildSettingsV1
	BuildSettingsV2
	BuildSettingsV3
	BuildSettingsV4
	BuildSettingsV5
)

// BuildSettingsLatest is the concrete value the "Latest" sentinel resolves to.
const BuildSettingsLatest = BuildSettingsV5

const buildSettingsPrefix = "BuildSettingsVersion."

var buildSettingsNames = [...]string{"Unknown", "V1", "V2", "V3", "V4", "V5"}

func (v BuildSettingsVersion) String() string {
	if v < 0 || int(v) >= len(buildSettingsNames) {
		return buildSettingsNames[BuildSettingsUnknown]
	}
	return buildSettingsNames[v]
}

// Known reports whether v is a concrete, recognised version.
func (v BuildSettingsVersion) Known() bool {
	return v > BuildSettingsUnknown && v <= BuildSettingsLatest
}

// Deprecated reports whether v is recognised but no longer supported.
func (v BuildSettingsVersion) Deprecated() bool {
	return v == BuildSettingsV1
}

// ParseBuildSettingsVersion maps a declared name to its concrete version.
// "Latest" resolves to BuildSettingsLatest. The enum qualifier
// "BuildSettingsVersion." is accepted and ignored.
func ParseBuildSettingsVersion(name string) (BuildSettingsVersion, bool) {
	name = strings.TrimPrefix(name, buildSettingsPrefix)
	if name == "Latest" {
		return BuildSettingsLatest, true
	}
	for i := BuildSettingsV1; i <= BuildSettingsLatest; i++ {
		if buildSettingsNames[i] == name {
			return i, true
		}
	}
	return BuildSettingsUnknown, false
}

// BuildSettingsNames returns every name ParseBuildSettingsVersion accepts,
// sentinels included.
func BuildSettingsNames() []string {
	names := make([]string, 0, len(buildSettingsNames))
	names = append(names, buildSettingsNames[BuildSettingsV1:]...)
	return append(names, "Latest")
}

// IncludeOrderVersion pins the header include order of the compilation
// layer. Values are ordered: a larger value is a newer engine release.
type IncludeOrderVersion int

const (
	IncludeOrderUnknown IncludeOrderVersion = iota
	IncludeOrderUnreal5_0
	IncludeOrderUnreal5_1
	IncludeOrderUnreal5_2
	IncludeOrderUnreal5_3
	IncludeOrderUnreal5_4
	IncludeOrderUnreal5_5
)

const (
	// IncludeOrderLatest is the concrete value the "Latest" sentinel resolves to.
	IncludeOrderLatest = IncludeOrderUnreal5_5
	// IncludeOrderOldest is the concrete value the "Oldest" sentinel resolves
	// to: the oldest version that is still supported.
	IncludeOrderOldest = IncludeOrderUnreal5_1
)

const includeOrderPrefix = "EngineIncludeOrderVersion."

var includeOrderNames = [...]string{"Unknown", "Unreal5_0", "Unreal5_1", "Unreal5_2", "Unreal5_3", "Unreal5_4", "Unreal5_5"}

func (v IncludeOrderVersion) String() string {
	if v < 0 || int(v) >= len(includeOrderNames) {
		return includeOrderNames[IncludeOrderUnknown]
	}
	return includeOrderNames[v]
}

// Known reports whether v is a concrete, recognised version.
func (v IncludeOrderVersion) Known() bool {
	return v > IncludeOrderUnknown && v <= IncludeOrderLatest
}

// Deprecated reports whether v is recognised but older than IncludeOrderOldest.
func (v IncludeOrderVersion) Deprecated() bool {
	return v.Known() && v < IncludeOrderOldest
}

// ParseIncludeOrderVersion maps a declared name to its concrete version.
// "Latest" and "Oldest" resolve to IncludeOrderLatest and IncludeOrderOldest.
// The enum qualifier "EngineIncludeOrderVersion." is accepted and ignored.
func ParseIncludeOrderVersion(name string) (IncludeOrderVersion, bool) {
	name = strings.TrimPrefix(name, includeOrderPrefix)
	switch name {
	case "Latest":
		return IncludeOrderLatest, true
	case "Oldest":
		return IncludeOrderOldest, true
	}
	for i := IncludeOrderUnreal5_0; i <= IncludeOrderLatest; i++ {
		if includeOrderNames[i] == name {
			return i, true
		}
	}
	return IncludeOrderUnknown, false
}

// IncludeOrderNames returns every name ParseIncludeOrderVersion accepts,
// sentinels included.
func IncludeOrderNames() []string {
	names := make([]string, 0, len(includeOrderNames)+1)
	names = append(names, includeOrderNames[IncludeOrderUnreal5_0:]...)
	return append(names, "Latest", "Oldest")
}
