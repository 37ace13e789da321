// Package plan combines a validated target descriptor and its resolved
// module set into an immutable BuildPlan, the unit handed to the toolchain
// layer.
package plan
