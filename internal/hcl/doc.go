// Package hcl provides the HCL implementation of config.Loader. It is
// responsible for file parsing, the evaluation context that exposes the
// enum namespaces, and translating blocks into config records.
package hcl
