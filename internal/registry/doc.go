// Package registry holds the module manifests of a single application
// instance and answers dependency lookups for the resolver.
//
// The Registry is populated once at start-up from the loaded config model,
// checked for hygiene problems (dangling references, cycles) and then
// sealed. After Seal it is read-only and safe for concurrent readers, which
// is how the pipeline uses it while resolving targets in parallel.
package registry
