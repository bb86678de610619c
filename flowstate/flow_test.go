package flowstate_test

import (
	"testing"

	"github.com/arborist-go/fcutter/flowstate"
	"github.com/stretchr/testify/require"
)

func TestFlowZeroInitialized(t *testing.T) {
	f := flowstate.New(4)
	for a := int32(0); a < 4; a++ {
		require.Equal(t, int8(0), f.Value(a))
		require.False(t, f.SaturatedForward(a))
	}
}

func TestPushMaintainsAntisymmetry(t *testing.T) {
	f := flowstate.New(2)
	require.NoError(t, f.Push(0, 1))
	require.Equal(t, int8(1), f.Value(0))
	require.Equal(t, int8(-1), f.Value(1))
	require.True(t, f.SaturatedForward(0))
	require.False(t, f.SaturatedForward(1))
}

func TestIncreaseRejectsDoubleSaturation(t *testing.T) {
	f := flowstate.New(1)
	require.NoError(t, f.Increase(0))
	require.ErrorIs(t, f.Increase(0), flowstate.ErrCannotIncrease)
}

func TestDecreaseRejectsDoubleSaturation(t *testing.T) {
	f := flowstate.New(1)
	require.NoError(t, f.Decrease(0))
	require.ErrorIs(t, f.Decrease(0), flowstate.ErrCannotDecrease)
}

func TestClearResetsToZero(t *testing.T) {
	f := flowstate.New(3)
	require.NoError(t, f.Push(0, 1))
	f.Clear()
	for a := int32(0); a < 3; a++ {
		require.Equal(t, int8(0), f.Value(a))
	}
}
