package hybridastar

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"github.com/viam-labs/trailerplan/geom2d"
)

func TestKeyOfFloorDivision(t *testing.T) {
	pose := geom2d.Pose{Point: r2.Point{X: 1.9, Y: -0.1}, YawT: 0, YawR: 0}
	k := KeyOf(pose, 2.0, math.Pi/12)
	test.That(t, k.IX, test.ShouldEqual, 0)
	test.That(t, k.IY, test.ShouldEqual, -1)
}

func TestKeyOfSameCellSameKey(t *testing.T) {
	a := geom2d.Pose{Point: r2.Point{X: 0.1, Y: 0.1}, YawT: 0.01, YawR: 0.01}
	b := geom2d.Pose{Point: r2.Point{X: 0.9, Y: 0.9}, YawT: 0.02, YawR: 0.02}
	test.That(t, KeyOf(a, 2.0, math.Pi/12), test.ShouldResemble, KeyOf(b, 2.0, math.Pi/12))
}

func TestKeyOfWrapBoundary(t *testing.T) {
	// Angles just below pi and just above -pi are close on the circle but
	// lie on opposite sides of the (-pi, pi] wrap; since normalization runs
	// before the floor division in KeyOf, they land in different yaw
	// buckets (11 and -12 at pi/12).
	a := geom2d.Pose{YawT: math.Pi - 0.001}
	b := geom2d.Pose{YawT: -math.Pi + 0.001}
	ka := KeyOf(a, 1.0, math.Pi/12)
	kb := KeyOf(b, 1.0, math.Pi/12)
	test.That(t, ka.IYawT, test.ShouldNotEqual, kb.IYawT)
}

func TestNodePoseIsLastSample(t *testing.T) {
	root := newRootNode(geom2d.Pose{Point: r2.Point{X: 3, Y: 4}, YawT: 0.5}, 2.0, math.Pi/12)
	test.That(t, root.Pose().Point.X, test.ShouldEqual, 3)
	test.That(t, root.Pose().Point.Y, test.ShouldEqual, 4)
	test.That(t, root.hasParent, test.ShouldBeFalse)
}
