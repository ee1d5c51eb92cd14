package oracle

import (
	"math"

	"go.viam.com/coverage/gridmap"
)

// straightLine is a deterministic ShortestPath stand-in used in tests: it
// ignores obstacles entirely and reports the Euclidean distance and a
// two-point trace directly from a to b. Per design note 9, the fixed
// test variant for the shortest-path capability is a straight-line
// Euclidean oracle.
type straightLine struct{}

// NewEuclideanStraightLine returns a ShortestPath oracle that always
// succeeds with a direct line between the two points, disregarding
// obstacles. Intended for tests exercising the stitcher/planner logic in
// isolation from a real path planner.
func NewEuclideanStraightLine() ShortestPath {
	return straightLine{}
}

func (straightLine) Distance(_ *gridmap.Grid, a, b gridmap.Point) (float64, error) {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy), nil
}

func (straightLine) Trace(_ *gridmap.Grid, a, b gridmap.Point) ([]gridmap.Point, error) {
	return []gridmap.Point{a, b}, nil
}

// identityTsp is a deterministic Tsp stand-in: it returns nodes in their
// given order, rotated so startIndex comes first. Per design note 9, the
// fixed test variant for the TSP capability is an identity ordering.
type identityTsp struct{}

// NewIdentityTSP returns a Tsp oracle that leaves the node order
// unchanged aside from rotating to start at startIndex.
func NewIdentityTSP() Tsp {
	return identityTsp{}
}

func (identityTsp) Solve(nodes []gridmap.Point, _ float64, startIndex int) ([]int, error) {
	if len(nodes) == 0 {
		return nil, ErrNoTour
	}
	if startIndex < 0 || startIndex >= len(nodes) {
		startIndex = 0
	}
	order := make([]int, 0, len(nodes))
	for i := 0; i < len(nodes); i++ {
		order = append(order, (startIndex+i)%len(nodes))
	}
	return order, nil
}
