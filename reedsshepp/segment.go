// Package reedsshepp enumerates Reeds-Shepp paths: the shortest curves for a
// car-like vehicle that may drive forward or backward with a bounded
// turning radius, ignoring obstacles. It mirrors the shape of this
// codebase's Dubins{Radius, PointSeparation}.AllPaths(...)/sample(...)
// primitive (see the sibling motion-planning package's dubins.go) but
// additionally allows reverse travel, as Reeds-Shepp curves require.
package reedsshepp

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/viam-labs/trailerplan/geom2d"
)

// Letter identifies a segment's curvature: turn left, turn right, or drive
// straight.
type Letter byte

const (
	Left     Letter = 'L'
	Right    Letter = 'R'
	Straight Letter = 'S'
)

// Segment is one constant-curvature arc (or straight run) of a Reeds-Shepp
// path. Length is signed: positive means driven forward, negative means
// driven in reverse. Its absolute value is an arc length in meters (already
// scaled by the turning radius, not the normalized unit-radius value the
// enumeration formulas work in).
type Segment struct {
	Curve  Letter
	Length float64
}

// Forward reports whether this segment is driven forward.
func (s Segment) Forward() bool { return s.Length >= 0 }

// Path is a complete Reeds-Shepp path: an ordered list of segments and their
// total unsigned arc length.
type Path struct {
	Segments  []Segment
	TotalLen  float64
}

// apply advances pose by one segment of a path driven at turning radius r.
func apply(pose geom2d.TractorPose, seg Segment, r float64) geom2d.TractorPose {
	s := seg.Length
	switch seg.Curve {
	case Straight:
		return geom2d.TractorPose{
			Point: r2.Point{X: pose.Point.X + s*math.Cos(pose.Yaw), Y: pose.Point.Y + s*math.Sin(pose.Yaw)},
			Yaw:   pose.Yaw,
		}
	case Left:
		newYaw := geom2d.NormalizeAngle(pose.Yaw + s/r)
		return geom2d.TractorPose{
			Point: r2.Point{
				X: pose.Point.X + r*(math.Sin(pose.Yaw+s/r)-math.Sin(pose.Yaw)),
				Y: pose.Point.Y - r*(math.Cos(pose.Yaw+s/r)-math.Cos(pose.Yaw)),
			},
			Yaw: newYaw,
		}
	case Right:
		newYaw := geom2d.NormalizeAngle(pose.Yaw - s/r)
		return geom2d.TractorPose{
			Point: r2.Point{
				X: pose.Point.X - r*(math.Sin(pose.Yaw-s/r)-math.Sin(pose.Yaw)),
				Y: pose.Point.Y + r*(math.Cos(pose.Yaw-s/r)-math.Cos(pose.Yaw)),
			},
			Yaw: newYaw,
		}
	default:
		return pose
	}
}

// Endpoint forward-simulates the whole path from src at turning radius r and
// returns the resulting pose. Used both to verify a candidate path actually
// closes on its intended destination, and as the terminal pose for the
// analytic-expansion acceptance check.
func (p Path) Endpoint(src geom2d.TractorPose, r float64) geom2d.TractorPose {
	cur := src
	for _, seg := range p.Segments {
		cur = apply(cur, seg, r)
	}
	return cur
}
