// Package resolve expands a target's extra module names into a resolved
// module set: every module the target needs, transitively, listed once and
// with dependencies before their dependents.
//
// Module dependency information comes from a ModuleLookup supplied by the
// caller. The resolver never inspects modules beyond their dependency
// lists and never mutates caller state: it returns a fresh ModuleSet or a
// *ResolutionError.
//
// Order is fully determined by the inputs. Modules are visited in the
// order the descriptor lists them and each module's dependencies in the
// order the lookup returns them; a module is appended once all of its
// dependencies have been appended.
package resolve
