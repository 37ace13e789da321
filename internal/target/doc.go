// Package target holds target descriptors: the named, typed, versioned
// build targets read from configuration, together with the two stages that
// produce them.
//
// Load turns a raw config.TargetRecord into an immutable Descriptor,
// substituting version sentinels such as "Latest" with concrete values.
// ValidateBatch then checks a batch of loaded descriptors: unique names,
// recognised target types, supported versions and duplicate-free module
// lists. Both stages are pure; a descriptor that fails either one is
// rejected wholesale.
package target
