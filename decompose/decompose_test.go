package decompose

import (
	"testing"

	"go.viam.com/coverage/contour"
	"go.viam.com/coverage/gridmap"
	"go.viam.com/test"
)

func TestDecomposeOpenRectangleUnchanged(t *testing.T) {
	g := gridmap.New(10, 6, gridmap.Free)
	out := Decompose(g)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			test.That(t, out.AtXY(x, y), test.ShouldEqual, g.AtXY(x, y))
		}
	}
}

func TestDecomposeEmptyGridNoOp(t *testing.T) {
	g := gridmap.New(5, 5, gridmap.Obstacle)
	out := Decompose(g)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			test.That(t, out.AtXY(x, y), test.ShouldEqual, gridmap.Obstacle)
		}
	}
}

// TestDecomposeInteriorObstacleSplitsRoom covers the IN/OUT sweep over a
// two-row interior obstacle that neither touches the grid's left/right
// edges: an IN event on entering the obstacle's first row paints a full
// wall across that row, and the matching OUT event on leaving it paints a
// full wall across the last obstacle row, leaving two disjoint free
// regions above and below.
func TestDecomposeInteriorObstacleSplitsRoom(t *testing.T) {
	g := gridmap.New(10, 6, gridmap.Free)
	for y := 2; y <= 3; y++ {
		g.Set(gridmap.Point{X: 4, Y: y}, gridmap.Obstacle)
		g.Set(gridmap.Point{X: 5, Y: y}, gridmap.Obstacle)
	}

	out := Decompose(g)

	for _, y := range []int{2, 3} {
		for x := 0; x < g.Width; x++ {
			test.That(t, out.AtXY(x, y), test.ShouldEqual, gridmap.Obstacle)
		}
	}
	for _, y := range []int{0, 1, 4, 5} {
		test.That(t, out.AtXY(0, y), test.ShouldEqual, gridmap.Free)
	}

	polys := contour.Extract(out)
	test.That(t, len(polys), test.ShouldEqual, 2)
}
