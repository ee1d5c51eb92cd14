package gridmap

import (
	"testing"

	"go.viam.com/test"
)

func TestGridBasics(t *testing.T) {
	g := New(4, 3, Free)
	test.That(t, g.Width, test.ShouldEqual, 4)
	test.That(t, g.Height, test.ShouldEqual, 3)
	test.That(t, g.IsFree(Point{0, 0}), test.ShouldBeTrue)
	test.That(t, g.Empty(), test.ShouldBeFalse)

	g.Set(Point{1, 1}, Obstacle)
	test.That(t, g.At(Point{1, 1}), test.ShouldEqual, Obstacle)
	test.That(t, g.IsFree(Point{1, 1}), test.ShouldBeFalse)
}

func TestOutOfBoundsReadsAsObstacle(t *testing.T) {
	g := New(2, 2, Free)
	test.That(t, g.At(Point{-1, 0}), test.ShouldEqual, Obstacle)
	test.That(t, g.At(Point{2, 0}), test.ShouldEqual, Obstacle)
	test.That(t, g.InBounds(Point{2, 0}), test.ShouldBeFalse)
}

func TestClone(t *testing.T) {
	g := New(3, 3, Free)
	g.Set(Point{0, 0}, Obstacle)
	clone := g.Clone()
	clone.Set(Point{1, 1}, Obstacle)

	test.That(t, g.At(Point{1, 1}), test.ShouldEqual, Free)
	test.That(t, clone.At(Point{0, 0}), test.ShouldEqual, Obstacle)
}

func TestEmptyGrid(t *testing.T) {
	g := New(5, 5, Obstacle)
	test.That(t, g.Empty(), test.ShouldBeTrue)
}
