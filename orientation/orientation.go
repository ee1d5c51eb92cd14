// Package orientation turns a waypoint sequence into a pose sequence by
// deriving heading from the direction of travel to the next waypoint.
package orientation

import (
	"math"

	"go.viam.com/coverage/gridmap"
)

// Pose is a waypoint annotated with a heading, in grid coordinates.
type Pose struct {
	Point gridmap.Point
	Theta float64
}

// Annotate returns one Pose per waypoint in path. Theta for waypoint i is
// the angle toward waypoint i+1; the last waypoint's Theta wraps
// cyclically to the first, since there is no "next" point to aim at
// otherwise. Callers whose path is not physically cyclic should discard
// or override that final Theta.
func Annotate(path []gridmap.Point) []Pose {
	n := len(path)
	poses := make([]Pose, n)
	for i := 0; i < n; i++ {
		next := path[(i+1)%n]
		dx := float64(next.X - path[i].X)
		dy := float64(next.Y - path[i].Y)
		poses[i] = Pose{Point: path[i], Theta: math.Atan2(dy, dx)}
	}
	return poses
}
