// Package modgraph is a small directed graph of module names. It records
// which module depends on which, preserves insertion order everywhere so
// that every query is deterministic, and can extract a cycle path for error
// reporting.
//
// The resolver uses it to record the edges it discovers for one target;
// the registry uses it to check the whole module manifest set for cycles.
package modgraph
