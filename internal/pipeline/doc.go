// Package pipeline drives a batch of target records through the planning
// stages: load, validate, resolve and emit. Targets are independent: each
// one halts on its own failure and never stops its siblings. Resolution and
// emission run in parallel on a bounded pool of workers.
package pipeline
