package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeString evaluates an attribute that holds a single name. Null leaves
// the result empty, which the loader treats as "not declared".
func decodeString(attr *hcl.Attribute, evalCtx *hcl.EvalContext) (string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(evalCtx)
	if diags.HasErrors() {
		if name, ok := enumMember(attr.Expr); ok {
			return name, nil
		}
		return "", diags
	}
	if val.IsNull() {
		return "", nil
	}

	var out string
	if err := decodeValue(val, cty.String, &out); err != nil {
		return "", typeMismatch(attr, err)
	}
	return out, nil
}

// decodeStringList evaluates an attribute that holds a list of names.
func decodeStringList(attr *hcl.Attribute, evalCtx *hcl.EvalContext) ([]string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	var out []string
	if err := decodeValue(val, cty.List(cty.String), &out); err != nil {
		return nil, typeMismatch(attr, err)
	}
	return out, nil
}

// decodeValue converts val to the wanted type and decodes it into goVal.
func decodeValue(val cty.Value, want cty.Type, goVal any) error {
	if !val.IsWhollyKnown() {
		return fmt.Errorf("value is not known")
	}
	converted, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), want.FriendlyName(), err)
	}
	return gocty.FromCtyValue(converted, goVal)
}

func typeMismatch(attr *hcl.Attribute, err error) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Incorrect attribute value type",
		Detail:   fmt.Sprintf("Inappropriate value for attribute %q: %s.", attr.Name, err),
		Subject:  attr.Expr.Range().Ptr(),
	}}
}
