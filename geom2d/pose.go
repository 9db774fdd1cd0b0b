// Package geom2d provides the planar pose and geometry primitives shared by
// every component of the tractor-trailer planner: angle normalization,
// tractor/trailer poses, and oriented-rectangle containment tests.
package geom2d

import (
	"math"

	"github.com/golang/geo/r2"
)

// NormalizeAngle maps any real-valued angle (radians) to (-pi, pi]. Every
// component that stores or compares a yaw must route it through this
// function, so that the discrete grid key derived from an angle and the
// angle itself never disagree about which side of the wrap they fall on.
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta <= -math.Pi {
		theta += 2 * math.Pi
	} else if theta > math.Pi {
		theta -= 2 * math.Pi
	}
	return theta
}

// AngleDiff returns a-b normalized to (-pi, pi].
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(a - b)
}

// TractorPose is the tractor-only half of a full Pose: position and tractor
// heading. It is what the Reeds-Shepp solver operates on, since R-S curves
// know nothing about a trailer.
type TractorPose struct {
	Point r2.Point
	Yaw   float64
}

// Pose is the full four-variable continuous state of the planner: tractor
// rear-axle position, tractor heading, and trailer heading.
type Pose struct {
	Point    r2.Point
	YawT     float64
	YawR     float64
	Backward bool // direction of travel that produced this pose, if any
}

// Tractor projects a Pose down to its TractorPose, discarding the trailer
// heading — used when handing a pose to the Reeds-Shepp solver.
func (p Pose) Tractor() TractorPose {
	return TractorPose{Point: p.Point, Yaw: p.YawT}
}

// X is a convenience accessor.
func (p Pose) X() float64 { return p.Point.X }

// Y is a convenience accessor.
func (p Pose) Y() float64 { return p.Point.Y }

// Jackknife returns the signed angular difference between tractor and
// trailer heading, normalized to (-pi, pi].
func (p Pose) Jackknife() float64 {
	return AngleDiff(p.YawT, p.YawR)
}

// AlmostEqual reports whether two poses agree within the given position and
// yaw tolerances. Only the tractor heading is compared against yawTol; the
// trailer heading and the Backward flag are ignored.
func (p Pose) AlmostEqual(o Pose, posTol, yawTol float64) bool {
	dx := p.Point.X - o.Point.X
	dy := p.Point.Y - o.Point.Y
	if math.Hypot(dx, dy) > posTol {
		return false
	}
	if math.Abs(AngleDiff(p.YawT, o.YawT)) > yawTol {
		return false
	}
	return true
}
