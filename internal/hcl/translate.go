package hcl

import (
	"fmt"
	"slices"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/schema"
)

// translateTarget decodes a target block into a record. Decode problems are
// attached to the record instead of being returned, so the target fails on
// its own when it is loaded.
func (l *Loader) translateTarget(t *schema.Target) *config.TargetRecord {
	rec := &config.TargetRecord{
		Name:   t.Name,
		Source: blockSource(t.Body),
	}

	attrs, diags := t.Body.JustAttributes()
	if diags.HasErrors() {
		rec.Err = diags
		return rec
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		attr := attrs[name]
		if !slices.Contains(schema.TargetAttributes, name) {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported argument",
				Detail:   fmt.Sprintf("An argument named %q is not expected in a target block.", name),
				Subject:  attr.NameRange.Ptr(),
			})
			continue
		}

		var d hcl.Diagnostics
		switch name {
		case schema.AttrType:
			rec.TargetType, d = decodeString(attr, l.evalCtx)
		case schema.AttrDefaultBuildSettings:
			rec.BuildSettingsVersion, d = decodeString(attr, l.evalCtx)
		case schema.AttrIncludeOrderVersion:
			rec.IncludeOrderVersion, d = decodeString(attr, l.evalCtx)
		case schema.AttrExtraModuleNames:
			rec.ExtraModules, d = decodeStringList(attr, l.evalCtx)
		}
		diags = diags.Extend(d)
	}

	if diags.HasErrors() {
		rec.Err = diags
	}
	return rec
}

// translateModule decodes a module block. Module manifests are shared by
// every target, so a malformed one is returned as an error.
func (l *Loader) translateModule(m *schema.Module) (*config.ModuleRecord, error) {
	var body schema.ModuleBody
	if diags := gohcl.DecodeBody(m.Body, nil, &body); diags.HasErrors() {
		return nil, fmt.Errorf("module %q: %w", m.Name, diags)
	}
	return &config.ModuleRecord{
		Name:                m.Name,
		PublicDependencies:  body.PublicDependencies,
		PrivateDependencies: body.PrivateDependencies,
		Source:              blockSource(m.Body),
	}, nil
}

// blockSource renders the position of a block body as "file:line".
func blockSource(body hcl.Body) string {
	sb, ok := body.(*hclsyntax.Body)
	if !ok {
		return ""
	}
	r := sb.SrcRange
	return fmt.Sprintf("%s:%d", r.Filename, r.Start.Line)
}
