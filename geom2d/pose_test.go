package geom2d

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestNormalizeAngle(t *testing.T) {
	test.That(t, NormalizeAngle(0), test.ShouldAlmostEqual, 0)
	test.That(t, NormalizeAngle(math.Pi), test.ShouldAlmostEqual, math.Pi)
	test.That(t, NormalizeAngle(3*math.Pi), test.ShouldAlmostEqual, math.Pi)
	test.That(t, NormalizeAngle(-3*math.Pi), test.ShouldAlmostEqual, math.Pi)
	test.That(t, NormalizeAngle(2*math.Pi+0.1), test.ShouldAlmostEqual, 0.1)
	test.That(t, NormalizeAngle(-2*math.Pi-0.1), test.ShouldAlmostEqual, -0.1)
}

func TestAngleDiff(t *testing.T) {
	test.That(t, AngleDiff(math.Pi-0.1, -math.Pi+0.1), test.ShouldAlmostEqual, -2*0.1)
	test.That(t, AngleDiff(0.1, -0.1), test.ShouldAlmostEqual, 0.2)
}

func TestJackknife(t *testing.T) {
	p := Pose{Point: r2.Point{X: 0, Y: 0}, YawT: 0.2, YawR: -0.1}
	test.That(t, p.Jackknife(), test.ShouldAlmostEqual, 0.3)
}

func TestPoseAlmostEqual(t *testing.T) {
	a := Pose{Point: r2.Point{X: 0, Y: 0}, YawT: 0}
	b := Pose{Point: r2.Point{X: 0.01, Y: 0}, YawT: 0.01}
	test.That(t, a.AlmostEqual(b, 0.1, 0.1), test.ShouldBeTrue)
	test.That(t, a.AlmostEqual(b, 0.001, 0.1), test.ShouldBeFalse)
}
