package plan

import "github.com/vk/targetplan/internal/target"

// OutputKind names the kind of binary the toolchain produces for a target.
type OutputKind string

const (
	OutputClient     OutputKind = "executable-client"
	OutputHeadless   OutputKind = "executable-headless"
	OutputTooling    OutputKind = "executable-with-tooling"
	OutputStandalone OutputKind = "executable-standalone"
	OutputUtility    OutputKind = "executable-utility"
)

var outputKinds = map[target.TargetType]OutputKind{
	target.TypeClient:  OutputClient,
	target.TypeServer:  OutputHeadless,
	target.TypeEditor:  OutputTooling,
	target.TypeGame:    OutputStandalone,
	target.TypeProgram: OutputUtility,
}

// OutputKindFor maps a target type to its output kind. Every known target
// type has one.
func OutputKindFor(t target.TargetType) (OutputKind, bool) {
	k, ok := outputKinds[t]
	return k, ok
}

func (k OutputKind) String() string { return string(k) }
