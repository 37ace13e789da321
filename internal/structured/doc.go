// Package structured provides the YAML and JSON implementation of
// config.Loader. Documents are checked against embedded JSON Schemas before
// they are translated into config records.
package structured
