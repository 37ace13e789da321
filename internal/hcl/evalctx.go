package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/targetplan/internal/target"
	"github.com/zclconf/go-cty/cty"
)

// Enum namespaces available as variables in target blocks, so that
// `type = TargetType.Client` evaluates to "Client".
const (
	nsTargetType    = "TargetType"
	nsBuildSettings = "BuildSettingsVersion"
	nsIncludeOrder  = "EngineIncludeOrderVersion"
)

// enumObject builds an object whose attributes evaluate to their own names.
func enumObject(names []string) cty.Value {
	attrs := make(map[string]cty.Value, len(names))
	for _, n := range names {
		attrs[n] = cty.StringVal(n)
	}
	return cty.ObjectVal(attrs)
}

// newEvalContext returns the evaluation context used for target blocks.
func newEvalContext() *hcl.EvalContext {
	types := target.TargetTypes()
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = t.String()
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			nsTargetType:    enumObject(typeNames),
			nsBuildSettings: enumObject(target.BuildSettingsNames()),
			nsIncludeOrder:  enumObject(target.IncludeOrderNames()),
		},
	}
}

// enumMember recognises a static reference like `TargetType.Foo` and returns
// it as the qualified name "TargetType.Foo". Members the eval context does
// not know fail to evaluate; reading them back as names lets the validator
// report an unknown value rather than the loader a syntax problem.
func enumMember(expr hcl.Expression) (string, bool) {
	trav, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() || len(trav) != 2 {
		return "", false
	}
	switch trav.RootName() {
	case nsTargetType, nsBuildSettings, nsIncludeOrder:
	default:
		return "", false
	}
	attr, ok := trav[1].(hcl.TraverseAttr)
	if !ok {
		return "", false
	}
	return trav.RootName() + "." + attr.Name, true
}
