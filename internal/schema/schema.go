// Package schema declares the HCL block structures read from target and
// module manifest files. The structs are decoded with gohcl.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// File is the top-level structure of any .hcl file. Both block kinds may
// appear in any file, in any order.
type File struct {
	Targets []*Target `hcl:"target,block"`
	Modules []*Module `hcl:"module,block"`
}

// Target is a `target` block. Only the label is decoded up front; the body
// is decoded per target so that one malformed target does not fail the
// whole file.
type Target struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// Module is a `module` block.
type Module struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// ModuleBody holds the attributes of a `module` block.
type ModuleBody struct {
	PublicDependencies  []string `hcl:"public_dependencies,optional"`
	PrivateDependencies []string `hcl:"private_dependencies,optional"`
}

// Attribute names accepted inside a `target` block.
const (
	AttrType                 = "type"
	AttrDefaultBuildSettings = "default_build_settings"
	AttrIncludeOrderVersion  = "include_order_version"
	AttrExtraModuleNames     = "extra_module_names"
)

// TargetAttributes lists every attribute a `target` block may set.
var TargetAttributes = []string{
	AttrType,
	AttrDefaultBuildSettings,
	AttrIncludeOrderVersion,
	AttrExtraModuleNames,
}
