package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/targetplan/internal/app"
	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/hcl"
	"github.com/vk/targetplan/internal/structured"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	// Output is what the app streamed to stdout: the plan manifests.
	Output string
	Err    error
	App    *app.App
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, nil)
}

// RunIntegrationTestWithContext writes files into a temporary directory and
// runs the app over it. Descriptor files belong under "targets/" and module
// manifests under "modules/". configure, if non-nil, may adjust the app
// config before the app is created.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, configure func(*app.Config)) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)
	for _, dir := range []string{"targets", "modules"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	appConfig := &app.Config{
		TargetPaths: []string{filepath.Join(root, "targets")},
		ModulesPath: filepath.Join(root, "modules"),
		OutFormat:   "json",
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 4,
	}
	if configure != nil {
		configure(appConfig)
	}

	logBuffer := &SafeBuffer{}
	outBuffer := &SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv("TARGETPLAN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	loader := config.MultiLoader{hcl.NewLoader(), structured.NewLoader()}
	testApp, err := app.NewApp(outBuffer, logBuffer, appConfig, loader)
	if err != nil {
		return &HarnessResult{LogOutput: logBuffer.String(), Err: err}
	}

	runErr := testApp.Run(ctx)
	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Output:    outBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
