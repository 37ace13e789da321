// Package inmemorystore provides a thread-safe, in-memory implementation
// of the stagestore.Store interface. It is suitable for a single planning
// run, where target state does not need to outlive the process.
package inmemorystore
