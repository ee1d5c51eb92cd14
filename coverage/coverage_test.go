package coverage

import (
	"testing"

	"github.com/golang/geo/r2"

	"go.viam.com/coverage/gridmap"
	"go.viam.com/coverage/oracle"
	"go.viam.com/test"
)

func baseConfig(g *gridmap.Grid) Config {
	return Config{
		RoomMap:          g,
		MapResolution:    0.05,
		StartingPosition: gridmap.Point{X: 1, Y: 1},
		MapOrigin:        r2.Point{X: 0, Y: 0},
		FittingRadius:    0.1,
		PathEps:          2,
		PlanForFootprint: true,
		ShortestPath:     oracle.NewEuclideanStraightLine(),
		Tsp:              oracle.NewIdentityTSP(),
	}
}

func TestPlanEmptyGridYieldsEmptyPath(t *testing.T) {
	g := gridmap.New(10, 10, gridmap.Obstacle)
	poses, err := Plan(baseConfig(g))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldBeEmpty)
}

func TestPlanInvalidConfigYieldsEmptyPath(t *testing.T) {
	g := gridmap.New(10, 10, gridmap.Free)
	cfg := baseConfig(g)
	cfg.FittingRadius = 0
	poses, err := Plan(cfg)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldBeEmpty)
}

func TestPlanSingleRoomProducesPoses(t *testing.T) {
	g := gridmap.New(20, 10, gridmap.Free)
	poses, err := Plan(baseConfig(g))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldNotBeEmpty)
}

func TestPlanDeterministic(t *testing.T) {
	g := gridmap.New(30, 20, gridmap.Free)
	cfg := baseConfig(g)

	first, err := Plan(cfg)
	test.That(t, err, test.ShouldBeNil)
	second, err := Plan(cfg)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, first, test.ShouldResemble, second)
}

func TestPlanWithInteriorObstacleProducesPoses(t *testing.T) {
	g := gridmap.New(30, 20, gridmap.Free)
	for y := 7; y < 13; y++ {
		for x := 12; x < 18; x++ {
			g.Set(gridmap.Point{X: x, Y: y}, gridmap.Obstacle)
		}
	}
	poses, err := Plan(baseConfig(g))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldNotBeEmpty)
}
