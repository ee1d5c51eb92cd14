package mathutil

import (
	"testing"

	"go.viam.com/test"
)

func TestIntHelpers(t *testing.T) {
	test.That(t, MaxInt(3, 7), test.ShouldEqual, 7)
	test.That(t, MaxInt(7, 3), test.ShouldEqual, 7)
	test.That(t, MinInt(3, 7), test.ShouldEqual, 3)
	test.That(t, MinInt(7, 3), test.ShouldEqual, 3)
}
