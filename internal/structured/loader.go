package structured

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/ctxlog"
	"github.com/vk/targetplan/internal/fsutil"
	"github.com/vk/targetplan/internal/plan"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions this loader reads. JSON documents
// are parsed by the YAML decoder.
var Extensions = []string{".yaml", ".yml", ".json"}

// document is the top-level shape of a file. Entries are kept as nodes so
// that each can be validated and located on its own.
type document struct {
	Targets []yaml.Node `yaml:"targets"`
	Modules []yaml.Node `yaml:"modules"`
}

type targetEntry struct {
	Name                 string   `yaml:"name"`
	TargetType           string   `yaml:"targetType"`
	BuildSettingsVersion string   `yaml:"buildSettingsVersion"`
	IncludeOrderVersion  string   `yaml:"includeOrderVersion"`
	ExtraModules         []string `yaml:"extraModules"`
}

type moduleEntry struct {
	Name                string   `yaml:"name"`
	PublicDependencies  []string `yaml:"publicDependencies"`
	PrivateDependencies []string `yaml:"privateDependencies"`
}

// Loader is the YAML/JSON implementation of the config.Loader interface.
type Loader struct {
	schemas *compiledSchemas
}

// NewLoader creates a new structured configuration loader.
func NewLoader() *Loader {
	return &Loader{schemas: schemas}
}

// Load reads every YAML and JSON file under paths. A file that is not a
// valid document aborts the load; a target entry that fails its schema is
// kept as a record carrying the error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Structured loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered structured files.", "count", len(files))

	model := config.NewModel()
	for _, file := range files {
		// Manifests from an earlier run may sit under a target path.
		if plan.IsManifestFile(file) {
			logger.Debug("Skipping plan manifest.", "file", file)
			continue
		}
		fileModel, err := l.loadFile(file)
		if err != nil {
			return nil, err
		}
		for _, rec := range fileModel.Targets {
			if rec.Err != nil {
				logger.Debug("Target entry has decode errors.", "target", rec.Name, "source", rec.Source, "error", rec.Err)
			}
		}
		model.Merge(fileModel)
	}

	logger.Debug("Structured loading complete.", "targets", len(model.Targets), "modules", len(model.Modules))
	return model, nil
}

func (l *Loader) loadFile(file string) (*config.Model, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	model := config.NewModel()
	if raw == nil {
		return model, nil
	}
	if err := l.schemas.document.Validate(raw); err != nil {
		return nil, fmt.Errorf("invalid document %s: %w", file, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file, err)
	}

	for i := range doc.Targets {
		model.Targets = append(model.Targets, l.translateTarget(file, &doc.Targets[i]))
	}
	for i := range doc.Modules {
		rec, err := l.translateModule(file, &doc.Modules[i])
		if err != nil {
			return nil, err
		}
		model.Modules = append(model.Modules, rec)
	}
	return model, nil
}

// translateTarget decodes one target entry. Problems are attached to the
// record, not returned.
func (l *Loader) translateTarget(file string, n *yaml.Node) *config.TargetRecord {
	rec := &config.TargetRecord{Source: nodeSource(file, n)}

	var raw any
	if err := n.Decode(&raw); err != nil {
		rec.Err = err
		return rec
	}
	if m, ok := raw.(map[string]any); ok {
		// Keep the name even when the rest is invalid, for error messages.
		if name, ok := m["name"].(string); ok {
			rec.Name = name
		}
	}
	if err := l.schemas.target.Validate(raw); err != nil {
		rec.Err = fmt.Errorf("schema validation failed: %w", err)
		return rec
	}

	var entry targetEntry
	if err := n.Decode(&entry); err != nil {
		rec.Err = err
		return rec
	}
	rec.Name = entry.Name
	rec.TargetType = entry.TargetType
	rec.BuildSettingsVersion = entry.BuildSettingsVersion
	rec.IncludeOrderVersion = entry.IncludeOrderVersion
	rec.ExtraModules = entry.ExtraModules
	return rec
}

func (l *Loader) translateModule(file string, n *yaml.Node) (*config.ModuleRecord, error) {
	var entry moduleEntry
	if err := n.Decode(&entry); err != nil {
		return nil, fmt.Errorf("failed to decode module at %s: %w", nodeSource(file, n), err)
	}
	return &config.ModuleRecord{
		Name:                entry.Name,
		PublicDependencies:  entry.PublicDependencies,
		PrivateDependencies: entry.PrivateDependencies,
		Source:              nodeSource(file, n),
	}, nil
}

func nodeSource(file string, n *yaml.Node) string {
	return fmt.Sprintf("%s:%d", file, n.Line)
}

var _ config.Loader = (*Loader)(nil)
