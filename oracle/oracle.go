// Package oracle declares the two capability interfaces the coverage
// planner treats as black boxes: a shortest-path planner over free cells
// and a TSP solver over cell centroids. Both are modeled as small
// interfaces with swappable variants, per the requirement that the
// planner depend on collaborators rather than module-level singletons:
// production implementations backed by github.com/katalvlaran/lvlath live
// alongside deterministic stand-ins for tests.
package oracle

import (
	"errors"

	"go.viam.com/coverage/gridmap"
)

// ErrNoPath is returned when no route exists between two free cells.
var ErrNoPath = errors.New("oracle: no path between points")

// ErrNoTour is returned when a TSP query cannot produce a tour, e.g. an
// empty node list.
var ErrNoTour = errors.New("oracle: no tour over given nodes")

// ShortestPath is the A*-family black-box planner assumed available over
// the free grid. Distance units are left to the implementation as long
// as they're used consistently; the planner only compares distances
// returned by the same oracle.
type ShortestPath interface {
	// Distance returns the cost of the shortest route between a and b
	// over g's free cells.
	Distance(g *gridmap.Grid, a, b gridmap.Point) (float64, error)
	// Trace returns the ordered sequence of points along the shortest
	// route between a and b, inclusive of both endpoints.
	Trace(g *gridmap.Grid, a, b gridmap.Point) ([]gridmap.Point, error)
}

// Tsp is the black-box combinatorial oracle used to choose a cell visit
// order. Solve returns a permutation of indices [0, len(nodes)) starting
// at startIndex.
type Tsp interface {
	Solve(nodes []gridmap.Point, resolution float64, startIndex int) ([]int, error)
}
