// Package stagestore defines the interface for tracking where each target
// is in the planning pipeline, and what it produced or failed with.
//
// # Lifecycle
//
// Every target starts Unloaded and moves strictly forward, one stage at a
// time:
//
//	Unloaded → Loaded → Validated → Resolved → Planned
//
// A failure halts the target at the last stage it reached; the error is
// recorded next to it. Back-transitions and skipped stages are rejected
// with ErrInvalidTransition.
//
// # Thread-Safety Requirements
//
// The pipeline plans independent targets in parallel, so implementations
// MUST be safe for concurrent use. See internal/inmemorystore for the
// reference implementation.
package stagestore

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a stage move is not one step forward.
var ErrInvalidTransition = errors.New("invalid stage transition")

// TransitionError describes a rejected stage move.
type TransitionError struct {
	Target   string
	From, To Stage
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("target %q: %s: %s -> %s", e.Target, ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// Store tracks per-target pipeline state.
type Store interface {
	// Advance moves the target to the given stage. It fails with an error
	// matching ErrInvalidTransition unless to is exactly one stage after
	// the target's current stage.
	Advance(ctx context.Context, target string, to Stage) error

	// Stage returns the target's current stage, StageUnloaded if the
	// target has never advanced.
	Stage(ctx context.Context, target string) (Stage, error)

	// SetOutput records what the target's last stage produced.
	SetOutput(ctx context.Context, target string, output any) error

	// Output returns the recorded output, or nil.
	Output(ctx context.Context, target string) (any, error)

	// SetError records why the target halted.
	SetError(ctx context.Context, target string, targetErr error) error

	// Error returns the recorded failure, or nil.
	Error(ctx context.Context, target string) (error, error)
}
