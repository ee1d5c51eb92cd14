package oracle

import (
	"testing"

	"go.viam.com/coverage/gridmap"
	"go.viam.com/test"
)

func TestStraightLineOracle(t *testing.T) {
	sp := NewEuclideanStraightLine()
	g := gridmap.New(10, 10, gridmap.Free)

	dist, err := sp.Distance(g, gridmap.Point{X: 0, Y: 0}, gridmap.Point{X: 3, Y: 4})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, dist, test.ShouldEqual, 5.0)

	path, err := sp.Trace(g, gridmap.Point{X: 0, Y: 0}, gridmap.Point{X: 3, Y: 4})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path, test.ShouldHaveLength, 2)
}

func TestIdentityTsp(t *testing.T) {
	solver := NewIdentityTSP()
	nodes := []gridmap.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}

	order, err := solver.Solve(nodes, 1.0, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, order, test.ShouldResemble, []int{1, 2, 0})
}

func TestIdentityTspEmpty(t *testing.T) {
	solver := NewIdentityTSP()
	_, err := solver.Solve(nil, 1.0, 0)
	test.That(t, err, test.ShouldEqual, ErrNoTour)
}

func TestLvlathShortestPathOnOpenGrid(t *testing.T) {
	sp := NewShortestPath()
	g := gridmap.New(5, 5, gridmap.Free)

	dist, err := sp.Distance(g, gridmap.Point{X: 0, Y: 0}, gridmap.Point{X: 4, Y: 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, dist, test.ShouldEqual, 4.0)

	path, err := sp.Trace(g, gridmap.Point{X: 0, Y: 0}, gridmap.Point{X: 4, Y: 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path[0], test.ShouldResemble, gridmap.Point{X: 0, Y: 0})
	test.That(t, path[len(path)-1], test.ShouldResemble, gridmap.Point{X: 4, Y: 0})
}

func TestLvlathShortestPathOutOfBoundsTarget(t *testing.T) {
	sp := NewShortestPath()
	g := gridmap.New(3, 3, gridmap.Free)

	_, err := sp.Distance(g, gridmap.Point{X: 0, Y: 0}, gridmap.Point{X: 1, Y: 1})
	test.That(t, err, test.ShouldBeNil)

	_, err = sp.Distance(g, gridmap.Point{X: 0, Y: 0}, gridmap.Point{X: 10, Y: 10})
	test.That(t, err, test.ShouldEqual, ErrNoPath)
}

func TestLvlathTspOnTriangle(t *testing.T) {
	solver := NewTsp()
	nodes := []gridmap.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}

	order, err := solver.Solve(nodes, 1.0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, order, test.ShouldHaveLength, 3)
}
