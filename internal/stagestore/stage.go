package stagestore

import "fmt"

// Stage is the position of a target in the planning pipeline.
type Stage int

const (
	StageUnloaded Stage = iota
	StageLoaded
	StageValidated
	StageResolved
	StagePlanned
)

var stageNames = [...]string{"Unloaded", "Loaded", "Validated", "Resolved", "Planned"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Terminal reports whether s is the last stage.
func (s Stage) Terminal() bool { return s == StagePlanned }

// CanAdvance reports whether a target at stage from may move to stage to.
// Stages are strictly linear: every move is exactly one step forward.
func CanAdvance(from, to Stage) bool {
	return from >= StageUnloaded && from < StagePlanned && to == from+1
}
