// internal/ident/doc.go

/*
Package ident validates the identifiers used to name targets and modules.

An identifier is a single word made of ASCII letters, digits and
underscores that does not start with a digit, e.g. `TestShooter`,
`EnhancedInput` or `Unreal5_4`. Target names, module names and enum member
names written in configuration all pass through Parse before they are used.
*/
package ident
