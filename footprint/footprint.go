// Package footprint maps the annotated pose sequence into world-frame
// poses, either treating the path as robot-body poses directly or
// converting from a sensor field-of-view path to a reachable body path.
package footprint

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/coverage/gridmap"
	"go.viam.com/coverage/orientation"
)

// circleSteps is the number of samples taken around the fallback search
// circle, i.e. a 10-degree step.
const circleSteps = 36

// Config carries the parameters footprint mapping needs beyond the pose
// list itself.
type Config struct {
	Resolution       float64
	Origin           r2.Point
	PlanForFootprint bool
	RobotToFOVVec    r2.Point
}

// WorldPose is a pose in world coordinates (meters, radians).
type WorldPose struct {
	Point r2.Point
	Theta float64
}

// Map converts poses (in grid coordinates) into world poses per cfg. In
// footprint mode every pose becomes a world pose directly. In FOV mode
// each pose is treated as a sensor field-of-view midpoint and mapped to
// a body pose by subtracting the rotated robot->FOV offset, falling back
// to the nearest free point on a search circle when the direct body
// point is occupied; a pose with no free fallback is dropped.
func Map(poses []orientation.Pose, cfg Config, g *gridmap.Grid) []WorldPose {
	if cfg.PlanForFootprint {
		out := make([]WorldPose, len(poses))
		for i, pose := range poses {
			out[i] = toWorld(pose.Point, pose.Theta, cfg)
		}
		return out
	}

	if len(poses) == 0 {
		return nil
	}

	out := make([]WorldPose, 0, len(poses))
	prevBody := poses[0].Point
	for _, pose := range poses {
		offsetCells := metersToCells(rotate(cfg.RobotToFOVVec, pose.Theta), cfg.Resolution)
		body := gridmap.Point{
			X: pose.Point.X - round(offsetCells.X),
			Y: pose.Point.Y - round(offsetCells.Y),
		}

		if !g.IsFree(body) {
			found, ok := nearestFreeOnCircle(g, pose.Point, offsetCells, prevBody)
			if !ok {
				continue
			}
			body = found
		}

		prevBody = body
		out = append(out, toWorld(body, pose.Theta, cfg))
	}
	return out
}

func toWorld(p gridmap.Point, theta float64, cfg Config) WorldPose {
	return WorldPose{
		Point: r2.Point{
			X: float64(p.X)*cfg.Resolution + cfg.Origin.X,
			Y: float64(p.Y)*cfg.Resolution + cfg.Origin.Y,
		},
		Theta: theta,
	}
}

// rotate applies a 2D rotation by theta to v.
func rotate(v r2.Point, theta float64) r2.Point {
	cos, sin := math.Cos(theta), math.Sin(theta)
	return r2.Point{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

func metersToCells(v r2.Point, resolution float64) r2.Point {
	if resolution == 0 {
		return r2.Point{}
	}
	return r2.Point{X: v.X / resolution, Y: v.Y / resolution}
}

func round(f float64) int {
	return int(math.Round(f))
}

// nearestFreeOnCircle samples circleSteps points on the circle of radius
// ||offsetCells|| around fovPoint and returns the free one closest to
// prevBody.
func nearestFreeOnCircle(g *gridmap.Grid, fovPoint gridmap.Point, offsetCells r2.Point, prevBody gridmap.Point) (gridmap.Point, bool) {
	radius := math.Hypot(offsetCells.X, offsetCells.Y)
	if radius == 0 {
		return gridmap.Point{}, false
	}

	best := gridmap.Point{}
	bestDist := math.Inf(1)
	found := false

	for i := 0; i < circleSteps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(circleSteps)
		candidate := gridmap.Point{
			X: fovPoint.X + round(radius*math.Cos(angle)),
			Y: fovPoint.Y + round(radius*math.Sin(angle)),
		}
		if !g.IsFree(candidate) {
			continue
		}
		dx := float64(candidate.X - prevBody.X)
		dy := float64(candidate.Y - prevBody.Y)
		dist := dx*dx + dy*dy
		if dist < bestDist {
			bestDist = dist
			best = candidate
			found = true
		}
	}
	return best, found
}
