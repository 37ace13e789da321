package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/inmemorystore"
	"github.com/vk/targetplan/internal/plan"
	"github.com/vk/targetplan/internal/resolve"
	"github.com/vk/targetplan/internal/stagestore"
	"github.com/vk/targetplan/internal/target"
	"github.com/vk/targetplan/internal/toolchain"
)

func record(name, targetType string, modules ...string) *config.TargetRecord {
	return &config.TargetRecord{
		Name:                 name,
		TargetType:           targetType,
		BuildSettingsVersion: "V2",
		IncludeOrderVersion:  "Latest",
		ExtraModules:         modules,
	}
}

func TestRun_TestShooterTargets(t *testing.T) {
	rec := &toolchain.Recorder{}
	p := New(resolve.StaticLookup{"TestShooter": nil}, inmemorystore.New(), rec, 2)

	results := p.Run(context.Background(), []*config.TargetRecord{
		record("TestShooterClient", "Client", "TestShooter"),
		record("TestShooterServer", "Server", "TestShooter"),
	})

	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
		assert.True(t, r.OK())
		assert.Equal(t, stagestore.StagePlanned, r.Stage)
		assert.Equal(t, []string{"TestShooter"}, r.Plan.Modules())
	}
	assert.Equal(t, plan.OutputClient, results[0].Plan.OutputKind())
	assert.Equal(t, plan.OutputHeadless, results[1].Plan.OutputKind())

	assert.Len(t, rec.Plans(), 2)
	assert.Same(t, results[1].Plan, rec.Plan("TestShooterServer"))
}

func TestRun_FailuresAreIsolated(t *testing.T) {
	lookup := resolve.StaticLookup{
		"TestShooter": {"Core"},
		"Core":        nil,
		"A":           {"B"},
		"B":           {"A"},
	}
	records := []*config.TargetRecord{
		record("Good", "Client", "TestShooter"),
		record("NoType", ""),
		record("Good", "Server", "TestShooter"),
		record("Gadget", "Gadget"),
		record("Legacy", "Game"),
		record("DupModules", "Game", "Core", "Core"),
		record("Missing", "Editor", "TestShooter", "Slate"),
		record("Cyclic", "Program", "A"),
		nil,
		record("AlsoGood", "Game", "Core"),
	}
	records[4].BuildSettingsVersion = "V1"

	rec := &toolchain.Recorder{}
	store := inmemorystore.New()
	results := New(lookup, store, rec, 4).Run(context.Background(), records)
	require.Len(t, results, len(records))

	testCases := []struct {
		index     int
		wantErr   error
		wantStage stagestore.Stage
	}{
		{index: 0, wantStage: stagestore.StagePlanned},
		{index: 1, wantErr: target.ErrParse, wantStage: stagestore.StageUnloaded},
		{index: 2, wantErr: target.ErrDuplicateName, wantStage: stagestore.StageLoaded},
		{index: 3, wantErr: target.ErrUnknownTargetType, wantStage: stagestore.StageLoaded},
		{index: 4, wantErr: target.ErrUnsupportedVersion, wantStage: stagestore.StageLoaded},
		{index: 5, wantErr: target.ErrDuplicateModule, wantStage: stagestore.StageLoaded},
		{index: 6, wantErr: resolve.ErrModuleNotFound, wantStage: stagestore.StageValidated},
		{index: 7, wantErr: resolve.ErrCyclicDependency, wantStage: stagestore.StageValidated},
		{index: 8, wantErr: target.ErrParse, wantStage: stagestore.StageUnloaded},
		{index: 9, wantStage: stagestore.StagePlanned},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("record %d", tc.index), func(t *testing.T) {
			r := results[tc.index]
			assert.Equal(t, tc.wantStage, r.Stage)
			if tc.wantErr == nil {
				require.NoError(t, r.Err)
				require.NotNil(t, r.Plan)
				return
			}
			assert.ErrorIs(t, r.Err, tc.wantErr)
			assert.Nil(t, r.Plan)
			assert.False(t, r.OK())

			stored, err := store.Error(context.Background(), storeKey(tc.index, r.Target))
			require.NoError(t, err)
			assert.Equal(t, r.Err, stored)
		})
	}

	planned := make([]string, 0)
	for _, p := range rec.Plans() {
		planned = append(planned, p.Target())
	}
	assert.ElementsMatch(t, []string{"Good", "AlsoGood"}, planned)
}

func TestRun_StoreTracksStages(t *testing.T) {
	store := inmemorystore.New()
	results := New(resolve.StaticLookup{"Core": nil}, store, nil, 1).Run(context.Background(), []*config.TargetRecord{
		record("Game", "Game", "Core"),
	})
	require.True(t, results[0].OK())

	ctx := context.Background()
	stage, err := store.Stage(ctx, storeKey(0, "Game"))
	require.NoError(t, err)
	assert.Equal(t, stagestore.StagePlanned, stage)

	output, err := store.Output(ctx, storeKey(0, "Game"))
	require.NoError(t, err)
	assert.Same(t, results[0].Plan, output)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &toolchain.Recorder{}
	results := New(resolve.StaticLookup{"Core": nil}, inmemorystore.New(), rec, 2).Run(ctx, []*config.TargetRecord{
		record("Client", "Client", "Core"),
		record("Server", "Server", "Core"),
		record("Broken", ""),
	})

	for _, r := range results[:2] {
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Equal(t, stagestore.StageValidated, r.Stage)
	}
	assert.ErrorIs(t, results[2].Err, target.ErrParse)
	assert.Empty(t, rec.Plans())
}

func TestRun_EmptyBatch(t *testing.T) {
	results := New(resolve.StaticLookup{}, inmemorystore.New(), nil, 0).Run(context.Background(), nil)
	assert.Empty(t, results)
}

// slowLookup records how many lookups run at the same time.
type slowLookup struct {
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (l *slowLookup) DirectDependencies(string) ([]string, error) {
	n := l.inFlight.Add(1)
	defer l.inFlight.Add(-1)
	for {
		peak := l.peak.Load()
		if n <= peak || l.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	return nil, nil
}

func TestRun_WorkerLimit(t *testing.T) {
	const workers = 3
	lookup := &slowLookup{}

	var records []*config.TargetRecord
	for i := range 12 {
		records = append(records, record(fmt.Sprintf("Target%d", i), "Game", "Core"))
	}

	results := New(lookup, inmemorystore.New(), nil, workers).Run(context.Background(), records)
	for _, r := range results {
		require.NoError(t, r.Err)
	}
	assert.LessOrEqual(t, lookup.peak.Load(), int32(workers))
	assert.GreaterOrEqual(t, lookup.peak.Load(), int32(1))
}
