package stagestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAdvance(t *testing.T) {
	testCases := []struct {
		from, to Stage
		want     bool
	}{
		{StageUnloaded, StageLoaded, true},
		{StageLoaded, StageValidated, true},
		{StageValidated, StageResolved, true},
		{StageResolved, StagePlanned, true},
		{StageUnloaded, StageValidated, false},
		{StageLoaded, StagePlanned, false},
		{StageResolved, StageLoaded, false},
		{StagePlanned, StagePlanned, false},
		{StagePlanned, Stage(5), false},
		{StageLoaded, StageLoaded, false},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, CanAdvance(tc.from, tc.to))
		})
	}
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "Validated", StageValidated.String())
	assert.Equal(t, "Stage(9)", Stage(9).String())
	assert.True(t, StagePlanned.Terminal())
	assert.False(t, StageResolved.Terminal())
}

func TestTransitionError(t *testing.T) {
	err := &TransitionError{Target: "Game", From: StageLoaded, To: StagePlanned}
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.EqualError(t, err, `target "Game": invalid stage transition: Loaded -> Planned`)
}
