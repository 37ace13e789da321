package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/targetplan/internal/pipeline"
)

// FindResult returns the first result for the named target.
func FindResult(t *testing.T, result *HarnessResult, name string) pipeline.Result {
	t.Helper()
	require.NotNil(t, result.App, "app failed to start: %v", result.Err)
	for _, r := range result.App.Results() {
		if r.Target == name {
			return r
		}
	}
	require.FailNow(t, "target not found in results", "target %q", name)
	return pipeline.Result{}
}

// AssertTargetPlanned checks that the target was planned and that the app
// logged it.
func AssertTargetPlanned(t *testing.T, result *HarnessResult, name string) pipeline.Result {
	t.Helper()

	r := FindResult(t, result, name)
	require.NoError(t, r.Err, "target %q should have been planned", name)
	require.NotNil(t, r.Plan)

	expected := fmt.Sprintf("target=%s", name)
	require.True(t,
		strings.Contains(result.LogOutput, expected),
		"expected log output for target %q was not found in logs", name,
	)
	return r
}

// AssertTargetFailed checks that the target failed with an error matching
// want, and that the failure was logged.
func AssertTargetFailed(t *testing.T, result *HarnessResult, name string, want error) pipeline.Result {
	t.Helper()

	r := FindResult(t, result, name)
	require.ErrorIs(t, r.Err, want, "target %q", name)
	require.Nil(t, r.Plan)
	require.Contains(t, result.LogOutput, "Target failed.")
	return r
}
