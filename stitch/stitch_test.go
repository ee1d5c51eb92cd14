package stitch

import (
	"testing"

	"go.viam.com/coverage/boustrophedon"
	"go.viam.com/coverage/gridmap"
	"go.viam.com/coverage/logging"
	"go.viam.com/coverage/oracle"
	"go.viam.com/test"
)

func TestCellSingleLine(t *testing.T) {
	g := gridmap.New(20, 5, gridmap.Free)
	lines := []boustrophedon.Line{
		{Left: gridmap.Point{X: 2, Y: 2}, Right: gridmap.Point{X: 17, Y: 2}},
	}
	sp := oracle.NewEuclideanStraightLine()

	path, to := Cell(g, lines, gridmap.Point{X: 0, Y: 0}, 2, sp, logging.NewTestLogger(t))
	test.That(t, path, test.ShouldNotBeEmpty)
	test.That(t, path[0].X, test.ShouldEqual, 2)
	test.That(t, to.X, test.ShouldEqual, 17)
}

func TestCellMultipleLinesAlternateDirection(t *testing.T) {
	g := gridmap.New(20, 10, gridmap.Free)
	lines := []boustrophedon.Line{
		{Left: gridmap.Point{X: 2, Y: 1}, Right: gridmap.Point{X: 17, Y: 1}},
		{Left: gridmap.Point{X: 2, Y: 3}, Right: gridmap.Point{X: 17, Y: 3}},
	}
	sp := oracle.NewEuclideanStraightLine()

	path, _ := Cell(g, lines, gridmap.Point{X: 0, Y: 0}, 2, sp, logging.NewTestLogger(t))
	test.That(t, path, test.ShouldNotBeEmpty)
	// first line traced left-to-right ending at x=17, second starts there
	// and should run right-to-left ending at x=2.
	last := path[len(path)-1]
	test.That(t, last.X, test.ShouldEqual, 2)
}

func TestCellEmptyLines(t *testing.T) {
	path, to := Cell(gridmap.New(5, 5, gridmap.Free), nil, gridmap.Point{X: 1, Y: 1}, 1, oracle.NewEuclideanStraightLine(), logging.NewTestLogger(t))
	test.That(t, path, test.ShouldBeEmpty)
	test.That(t, to, test.ShouldResemble, gridmap.Point{X: 1, Y: 1})
}
