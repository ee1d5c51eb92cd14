package orientation

import (
	"math"
	"testing"

	"go.viam.com/coverage/gridmap"
	"go.viam.com/test"
)

func TestAnnotateStraightLine(t *testing.T) {
	path := []gridmap.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}
	poses := Annotate(path)

	test.That(t, poses, test.ShouldHaveLength, 3)
	test.That(t, poses[0].Theta, test.ShouldEqual, 0.0)
	test.That(t, poses[1].Theta, test.ShouldEqual, 0.0)
}

func TestAnnotateCyclicLastPose(t *testing.T) {
	path := []gridmap.Point{{X: 0, Y: 0}, {X: 0, Y: 5}}
	poses := Annotate(path)

	test.That(t, poses[0].Theta, test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, poses[1].Theta, test.ShouldAlmostEqual, -math.Pi/2)
}

func TestAnnotateEmpty(t *testing.T) {
	poses := Annotate(nil)
	test.That(t, poses, test.ShouldBeEmpty)
}
