package integration_tests

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/targetplan/internal/app"
	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/hcl"
	"github.com/vk/targetplan/internal/plan"
	"github.com/vk/targetplan/internal/structured"
	"github.com/vk/targetplan/internal/testutil"
	"gopkg.in/yaml.v3"
)

const shooterTargetsHCL = `
target "TestShooterClient" {
  type                   = TargetType.Client
  default_build_settings = BuildSettingsVersion.V2
  include_order_version  = EngineIncludeOrderVersion.Latest
  extra_module_names     = ["TestShooter"]
}

target "TestShooterServer" {
  type                   = TargetType.Server
  default_build_settings = BuildSettingsVersion.Latest
  include_order_version  = EngineIncludeOrderVersion.Unreal5_4
  extra_module_names     = ["TestShooter", "OnlineSubsystem"]
}
`

var shooterDependencies = map[string][]string{
	"CoreUObject":   {"Core"},
	"Engine":        {"Core", "CoreUObject"},
	"InputCore":     {"Core"},
	"EnhancedInput": {"InputCore", "Engine"},
	"TestShooter":   {"Core", "Engine", "EnhancedInput"},
}

func expectedManifests() map[string]*plan.Manifest {
	serverDeps := map[string][]string{"OnlineSubsystem": {"Core"}}
	for k, v := range shooterDependencies {
		serverDeps[k] = v
	}
	return map[string]*plan.Manifest{
		"TestShooterClient": {
			Target:               "TestShooterClient",
			TargetType:           "Client",
			OutputKind:           "executable-client",
			BuildSettingsVersion: "V2",
			IncludeOrderVersion:  "Unreal5_5",
			Modules:              testutil.ShooterModuleOrder,
			Dependencies:         shooterDependencies,
		},
		"TestShooterServer": {
			Target:               "TestShooterServer",
			TargetType:           "Server",
			OutputKind:           "executable-headless",
			BuildSettingsVersion: "V5",
			IncludeOrderVersion:  "Unreal5_4",
			Modules:              append(append([]string{}, testutil.ShooterModuleOrder...), "OnlineSubsystem"),
			Dependencies:         serverDeps,
		},
	}
}

// ignoreIdentity drops the derived fields; they are checked for stability
// separately.
var ignoreIdentity = cmpopts.IgnoreFields(plan.Manifest{}, "ID", "Fingerprint")

func decodeJSONStream(t *testing.T, s string) map[string]*plan.Manifest {
	t.Helper()
	out := map[string]*plan.Manifest{}
	dec := json.NewDecoder(strings.NewReader(s))
	for {
		var m plan.Manifest
		err := dec.Decode(&m)
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out[m.Target] = &m
	}
}

func TestEndToEnd_ShooterTargetsArePlanned(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{
		"targets/shooter.hcl": shooterTargetsHCL,
		"modules/engine.hcl":  testutil.ShooterModulesHCL,
	})
	require.NoError(t, result.Err)

	testutil.AssertTargetPlanned(t, result, "TestShooterClient")
	testutil.AssertTargetPlanned(t, result, "TestShooterServer")

	got := decodeJSONStream(t, result.Output)
	if diff := cmp.Diff(expectedManifests(), got, ignoreIdentity); diff != "" {
		t.Errorf("streamed manifests mismatch (-want +got):\n%s", diff)
	}

	recorded := result.App.Plans().Plan("TestShooterClient")
	require.NotNil(t, recorded)
	assert.Equal(t, recorded.ID().String(), got["TestShooterClient"].ID)
	assert.Equal(t, recorded.Fingerprint(), got["TestShooterClient"].Fingerprint)
	assert.NotEqual(t, got["TestShooterClient"].ID, got["TestShooterServer"].ID)

	assert.Contains(t, result.LogOutput, "🏁 Planning finished.")
}

func TestEndToEnd_ManifestsWrittenToOutDir(t *testing.T) {
	var outDir string
	result := testutil.RunIntegrationTestWithContext(t.Context(), t, map[string]string{
		"targets/shooter.hcl": shooterTargetsHCL,
		"modules/engine.hcl":  testutil.ShooterModulesHCL,
	}, func(cfg *app.Config) {
		outDir = filepath.Join(filepath.Dir(cfg.ModulesPath), "out")
		cfg.OutDir = outDir
		cfg.OutFormat = "yaml"
	})
	require.NoError(t, result.Err)
	assert.Empty(t, result.Output, "nothing is streamed when writing to a directory")

	want := expectedManifests()
	for name, expected := range want {
		data, err := os.ReadFile(filepath.Join(outDir, name+".plan.yaml"))
		require.NoError(t, err)

		var got plan.Manifest
		require.NoError(t, yaml.Unmarshal(data, &got))
		if diff := cmp.Diff(expected, &got, ignoreIdentity); diff != "" {
			t.Errorf("%s manifest mismatch (-want +got):\n%s", name, diff)
		}
	}
}

// The same target declared in HCL and in YAML yields the same plan.
func TestEndToEnd_PlansAreFormatIndependent(t *testing.T) {
	fromHCL := testutil.RunIntegrationTest(t, map[string]string{
		"targets/shooter.hcl": shooterTargetsHCL,
		"modules/engine.hcl":  testutil.ShooterModulesHCL,
	})
	require.NoError(t, fromHCL.Err)

	fromYAML := testutil.RunIntegrationTest(t, map[string]string{
		"targets/shooter.yaml": `
targets:
  - name: TestShooterClient
    targetType: Client
    buildSettingsVersion: V2
    includeOrderVersion: Latest
    extraModules: [TestShooter]
`,
		"modules/engine.hcl": testutil.ShooterModulesHCL,
	})
	require.NoError(t, fromYAML.Err)

	a := fromHCL.App.Plans().Plan("TestShooterClient")
	b := fromYAML.App.Plans().Plan("TestShooterClient")
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, a.ID(), b.ID())
}

func TestEndToEnd_NoTargets(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{
		"modules/engine.hcl": testutil.ShooterModulesHCL,
	})
	require.NoError(t, result.Err)
	assert.Empty(t, result.App.Results())
	assert.Empty(t, result.Output)
	assert.Contains(t, result.LogOutput, "No targets found, planning not required.")
}

// Manifests written under a target path are not read back as input.
func TestEndToEnd_RerunWithOutDirUnderTargets(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"targets/shooter.hcl": shooterTargetsHCL,
		"modules/engine.hcl":  testutil.ShooterModulesHCL,
	})
	cfg, err := app.NewConfig(app.Config{
		TargetPaths: []string{filepath.Join(dir, "targets")},
		ModulesPath: filepath.Join(dir, "modules"),
		OutDir:      filepath.Join(dir, "targets", "out"),
		OutFormat:   "yaml",
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 2,
	})
	require.NoError(t, err)

	for run := 1; run <= 2; run++ {
		logs := &testutil.SafeBuffer{}
		a, err := app.NewApp(io.Discard, logs, cfg, config.MultiLoader{hcl.NewLoader(), structured.NewLoader()})
		require.NoError(t, err, "run %d", run)
		require.NoError(t, a.Run(t.Context()), "run %d", run)
		assert.Len(t, a.Model().Targets, 2, "run %d", run)
		assert.Len(t, a.Plans().Plans(), 2, "run %d", run)
	}

	_, err = os.Stat(filepath.Join(dir, "targets", "out", "TestShooterServer.plan.yaml"))
	require.NoError(t, err)
}
