// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading target
// descriptors and module manifests from various sources.
//
// The `config.Model` holds raw records only: nothing in it has been checked
// beyond what a file format can express. Turning a TargetRecord into a
// validated descriptor is the job of the `target` package, and turning
// ModuleRecords into a Module Lookup is the job of the `registry` package.
// Concrete loaders, such as for HCL, are provided in separate packages.
package config
