package cellorder

import (
	"testing"

	"go.viam.com/coverage/contour"
	"go.viam.com/coverage/gridmap"
	"go.viam.com/coverage/logging"
	"go.viam.com/coverage/oracle"
	"go.viam.com/test"
)

func rectPolygon(minX, minY, maxX, maxY int) contour.Polygon {
	g := gridmap.New(maxX+2, maxY+2, gridmap.Obstacle)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			g.Set(gridmap.Point{X: x, Y: y}, gridmap.Free)
		}
	}
	polys := contour.Extract(g)
	return polys[0]
}

func TestOrderAnchorsAtStartingCell(t *testing.T) {
	polys := []contour.Polygon{
		rectPolygon(0, 0, 4, 4),
		rectPolygon(10, 0, 14, 4),
	}
	order := Order(polys, gridmap.Point{X: 11, Y: 1}, 1.0, oracle.NewIdentityTSP(), logging.NewTestLogger(t))
	test.That(t, order[0], test.ShouldEqual, 1)
	test.That(t, order, test.ShouldHaveLength, 2)
}

func TestOrderFallsBackToIndexZero(t *testing.T) {
	polys := []contour.Polygon{
		rectPolygon(0, 0, 4, 4),
		rectPolygon(10, 0, 14, 4),
	}
	order := Order(polys, gridmap.Point{X: 500, Y: 500}, 1.0, oracle.NewIdentityTSP(), logging.NewTestLogger(t))
	test.That(t, order[0], test.ShouldEqual, 0)
}

func TestOrderEmpty(t *testing.T) {
	order := Order(nil, gridmap.Point{}, 1.0, oracle.NewIdentityTSP(), logging.NewTestLogger(t))
	test.That(t, order, test.ShouldBeNil)
}
