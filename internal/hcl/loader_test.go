package hcl_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/hcl"
	"github.com/vk/targetplan/internal/testutil"
)

func load(t *testing.T, files map[string]string) (*config.Model, error) {
	t.Helper()
	dir := testutil.WriteFiles(t, files)
	return hcl.NewLoader().Load(context.Background(), dir)
}

func TestLoad_TargetsAndModules(t *testing.T) {
	model, err := load(t, map[string]string{
		"targets.hcl": `
target "TestShooterClient" {
  type                   = TargetType.Client
  default_build_settings = BuildSettingsVersion.V2
  include_order_version  = EngineIncludeOrderVersion.Latest
  extra_module_names     = ["TestShooter"]
}
`,
		"modules/shooter.hcl": `
module "TestShooter" {
  public_dependencies  = ["Core", "Engine"]
  private_dependencies = ["Slate"]
}

module "Core" {}
`,
	})
	require.NoError(t, err)

	require.Len(t, model.Targets, 1)
	rec := model.Targets[0]
	require.NoError(t, rec.Err)
	assert.Equal(t, "TestShooterClient", rec.Name)
	assert.Equal(t, "Client", rec.TargetType)
	assert.Equal(t, "V2", rec.BuildSettingsVersion)
	assert.Equal(t, "Latest", rec.IncludeOrderVersion)
	assert.Equal(t, []string{"TestShooter"}, rec.ExtraModules)
	assert.Equal(t, "targets.hcl:2", filepath.Base(rec.Source))

	require.Len(t, model.Modules, 2)
	assert.Equal(t, "TestShooter", model.Modules[0].Name)
	assert.Equal(t, []string{"Core", "Engine", "Slate"}, model.Modules[0].DirectDependencies())
	assert.Equal(t, "Core", model.Modules[1].Name)
	assert.Empty(t, model.Modules[1].DirectDependencies())
}

func TestLoad_TargetAttributeValues(t *testing.T) {
	testCases := []struct {
		name  string
		body  string
		check func(t *testing.T, rec *config.TargetRecord)
	}{
		{
			name: "plain strings",
			body: `type = "Server"
default_build_settings = "Latest"
include_order_version = "Unreal5_3"`,
			check: func(t *testing.T, rec *config.TargetRecord) {
				assert.Equal(t, "Server", rec.TargetType)
				assert.Equal(t, "Latest", rec.BuildSettingsVersion)
				assert.Equal(t, "Unreal5_3", rec.IncludeOrderVersion)
			},
		},
		{
			name: "unknown enum members are read back as names",
			body: `type = TargetType.Gadget
default_build_settings = BuildSettingsVersion.V9`,
			check: func(t *testing.T, rec *config.TargetRecord) {
				assert.Equal(t, "TargetType.Gadget", rec.TargetType)
				assert.Equal(t, "BuildSettingsVersion.V9", rec.BuildSettingsVersion)
			},
		},
		{
			name: "omitted and null attributes stay empty",
			body: `type = TargetType.Editor
include_order_version = null`,
			check: func(t *testing.T, rec *config.TargetRecord) {
				assert.Equal(t, "Editor", rec.TargetType)
				assert.Empty(t, rec.BuildSettingsVersion)
				assert.Empty(t, rec.IncludeOrderVersion)
				assert.Empty(t, rec.ExtraModules)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			model, err := load(t, map[string]string{
				"t.hcl": "target \"Example\" {\n" + tc.body + "\n}\n",
			})
			require.NoError(t, err)
			require.Len(t, model.Targets, 1)
			require.NoError(t, model.Targets[0].Err)
			tc.check(t, model.Targets[0])
		})
	}
}

func TestLoad_BadTargetIsIsolated(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "unknown attribute",
			body:    `type = TargetType.Client` + "\n" + `platform = "Win64"`,
			wantErr: "Unsupported argument",
		},
		{
			name:    "wrong value type",
			body:    `type = ["Client"]`,
			wantErr: "Incorrect attribute value type",
		},
		{
			name:    "wrong list element type",
			body:    `type = "Client"` + "\n" + `extra_module_names = [["Core"]]`,
			wantErr: "Incorrect attribute value type",
		},
		{
			name:    "nested block",
			body:    "type = \"Client\"\nsettings {\n}",
			wantErr: "Unexpected",
		},
		{
			name:    "unknown variable",
			body:    `type = Platform.Win64`,
			wantErr: "Unknown variable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			model, err := load(t, map[string]string{
				"t.hcl": "target \"Broken\" {\n" + tc.body + "\n}\n\n" +
					"target \"Fine\" {\n  type = TargetType.Game\n}\n",
			})
			require.NoError(t, err)
			require.Len(t, model.Targets, 2)

			assert.Equal(t, "Broken", model.Targets[0].Name)
			require.Error(t, model.Targets[0].Err)
			assert.Contains(t, model.Targets[0].Err.Error(), tc.wantErr)

			assert.Equal(t, "Fine", model.Targets[1].Name)
			assert.NoError(t, model.Targets[1].Err)
			assert.Equal(t, "Game", model.Targets[1].TargetType)
		})
	}
}

func TestLoad_FatalErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `target "Broken" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown top-level block",
			content: `plugin "X" {}`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "target without label",
			content: `target {}`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "malformed module",
			content: `module "Core" { public_dependencies = "Engine" }`,
			wantErr: `module "Core"`,
		},
		{
			name:    "unknown module attribute",
			content: `module "Core" { version = 2 }`,
			wantErr: `module "Core"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			model, err := load(t, map[string]string{"bad.hcl": tc.content})
			require.Error(t, err)
			assert.Nil(t, model)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_PathsAndExtensions(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"a.hcl":     `module "A" {}`,
		"b.yaml":    "modules: []",
		"sub/c.hcl": `module "C" {}`,
	})

	model, err := hcl.NewLoader().Load(context.Background(), dir, filepath.Join(dir, "a.hcl"), filepath.Join(dir, "missing"))
	require.NoError(t, err)

	names := make([]string, 0, len(model.Modules))
	for _, m := range model.Modules {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t, []string{"A", "C"}, names)
}

func TestLoad_NoFiles(t *testing.T) {
	model, err := hcl.NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nothing"))
	require.NoError(t, err)
	assert.Empty(t, model.Targets)
	assert.Empty(t, model.Modules)
}
