package geopos_test

import (
	"testing"

	"github.com/arborist-go/fcutter/geopos"
	"github.com/stretchr/testify/require"
)

func TestOrderedNodesSortsByProjection(t *testing.T) {
	positions := []geopos.Pos{
		{Lon: 3, Lat: 0},
		{Lon: 1, Lat: 0},
		{Lon: 2, Lat: 0},
	}
	order := geopos.OrderedNodes(positions, geopos.Longitude)
	require.Equal(t, []int32{1, 2, 0}, order)
}

func TestExtremesSplitsLowAndHigh(t *testing.T) {
	order := []int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	low, high := geopos.Extremes(order, 0.2)
	require.Equal(t, []int32{0, 1}, low)
	require.Equal(t, []int32{8, 9}, high)
}

func TestBoundsReportsMinMax(t *testing.T) {
	positions := []geopos.Pos{{Lon: -1, Lat: 5}, {Lon: 4, Lat: -2}}
	min, max := geopos.Bounds(positions, geopos.Latitude)
	require.Equal(t, -2.0, min)
	require.Equal(t, 5.0, max)
}
