package geopos

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Pos is a node's geographic position, longitude and latitude in any
// consistent linear unit (degrees or a projected planar coordinate).
type Pos struct {
	Lon, Lat float64
}

// Axis names one of the four directions inertial flow projects onto.
type Axis int

const (
	// Longitude projects onto Lon alone.
	Longitude Axis = iota
	// Latitude projects onto Lat alone.
	Latitude
	// Diagonal projects onto Lon+Lat.
	Diagonal
	// Antidiagonal projects onto Lon-Lat.
	Antidiagonal
)

// Axes lists all four projections inertial flow evaluates, in a fixed
// order used to assign ensemble cutter slots deterministically.
var Axes = [4]Axis{Longitude, Latitude, Diagonal, Antidiagonal}

// Project returns the scalar coordinate of p along axis.
func Project(p Pos, axis Axis) float64 {
	switch axis {
	case Latitude:
		return p.Lat
	case Diagonal:
		return p.Lon + p.Lat
	case Antidiagonal:
		return p.Lon - p.Lat
	default:
		return p.Lon
	}
}

// OrderedNodes returns node ids 0..len(positions)-1 sorted by ascending
// projection along axis. Only the id slice is sorted (a stable sort keyed
// by each id's projected coordinate); ties keep ascending id order.
func OrderedNodes(positions []Pos, axis Axis) []int32 {
	n := len(positions)
	coord := make([]float64, n)
	order := make([]int32, n)
	for i, p := range positions {
		coord[i] = Project(p, axis)
		order[i] = int32(i)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return coord[order[i]] < coord[order[j]]
	})

	return order
}

// Extremes returns the ceil(fraction*n) smallest and ceil(fraction*n)
// largest nodes of order (at least 1, at most n/2 each), the endpoint sets inertial flow uses as its source and sink
// for one axis. Complexity: O(len(order)).
func Extremes(order []int32, fraction float64) (low, high []int32) {
	n := len(order)
	k := int(math.Ceil(fraction * float64(n)))
	if k < 1 {
		k = 1
	}
	if k > n/2 {
		k = n / 2
	}

	return append([]int32(nil), order[:k]...), append([]int32(nil), order[n-k:]...)
}

// Bounds returns the min/max projected coordinate along axis, used by
// callers that want to report the span a projection covers rather than
// just its ordering.
func Bounds(positions []Pos, axis Axis) (min, max float64) {
	coords := make([]float64, len(positions))
	for i, p := range positions {
		coords[i] = Project(p, axis)
	}
	if len(coords) == 0 {
		return 0, 0
	}

	return floats.Min(coords), floats.Max(coords)
}
