package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/ctxlog"
	"github.com/vk/targetplan/internal/fsutil"
	"github.com/vk/targetplan/internal/schema"
)

// Extension is the file extension this loader reads.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{evalCtx: newEvalContext()}
}

// Load parses every .hcl file under paths. Any block may appear in any
// file. Syntax errors and malformed module blocks abort the load; problems
// inside a target block are attached to that target's record.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, t := range root.Targets {
			rec := l.translateTarget(t)
			if rec.Err != nil {
				logger.Debug("Target block has decode errors.", "target", rec.Name, "source", rec.Source, "error", rec.Err)
			}
			model.Targets = append(model.Targets, rec)
		}
		for _, m := range root.Modules {
			rec, err := l.translateModule(m)
			if err != nil {
				return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
			}
			model.Modules = append(model.Modules, rec)
		}
	}

	logger.Debug("HCL loading complete.", "targets", len(model.Targets), "modules", len(model.Modules))
	return model, nil
}

var _ config.Loader = (*Loader)(nil)
