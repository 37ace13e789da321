// Package inmemorystore provides an ephemeral, thread-safe, in-memory
// implementation of the stagestore.Store interface.
//
// # Concurrency Model
//
// The store uses sync.Map: the key space (target names) is fixed once the
// batch is loaded, each target is written by a single pipeline worker, and
// the app reads every target after the run.
package inmemorystore

import (
	"context"
	"sync"

	"github.com/vk/targetplan/internal/stagestore"
)

// Store is an in-memory implementation of stagestore.Store.
//
// The store maintains three independent sync.Maps:
//   - stages: target name to stagestore.Stage
//   - outputs: target name to the last stage's output
//   - errors: target name to the error that halted it
type Store struct {
	stages  sync.Map
	outputs sync.Map
	errors  sync.Map
}

// New creates a new, empty in-memory stage store.
func New() *Store {
	return &Store{}
}

// Advance moves a target one stage forward. Concurrent moves of the same
// target are serialised: exactly one of two racing identical moves wins.
func (s *Store) Advance(ctx context.Context, target string, to stagestore.Stage) error {
	for {
		current, loaded := s.stages.Load(target)
		from := stagestore.StageUnloaded
		if loaded {
			from = current.(stagestore.Stage)
		}
		if !stagestore.CanAdvance(from, to) {
			return &stagestore.TransitionError{Target: target, From: from, To: to}
		}

		if !loaded {
			if _, raced := s.stages.LoadOrStore(target, to); !raced {
				return nil
			}
			continue
		}
		if s.stages.CompareAndSwap(target, from, to) {
			return nil
		}
	}
}

// Stage returns the current stage of a target, StageUnloaded if unknown.
func (s *Store) Stage(ctx context.Context, target string) (stagestore.Stage, error) {
	v, ok := s.stages.Load(target)
	if !ok {
		return stagestore.StageUnloaded, nil
	}
	return v.(stagestore.Stage), nil
}

// SetOutput records the output of a target's last stage.
func (s *Store) SetOutput(ctx context.Context, target string, output any) error {
	s.outputs.Store(target, output)
	return nil
}

// Output retrieves the recorded output of a target.
func (s *Store) Output(ctx context.Context, target string) (any, error) {
	output, ok := s.outputs.Load(target)
	if !ok {
		return nil, nil // If not found, the output is nil.
	}
	return output, nil
}

// SetError records the failure of a target.
func (s *Store) SetError(ctx context.Context, target string, targetErr error) error {
	s.errors.Store(target, targetErr)
	return nil
}

// Error retrieves the recorded failure of a target.
func (s *Store) Error(ctx context.Context, target string) (error, error) {
	err, ok := s.errors.Load(target)
	if !ok {
		return nil, nil // If not found, there is no error.
	}
	return err.(error), nil
}

var _ stagestore.Store = (*Store)(nil)
