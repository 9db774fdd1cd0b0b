package geom2d

import (
	"math"

	"github.com/golang/geo/r2"
)

// OrientedRect is a rectangle centered at Center, rotated by Yaw, with the
// given full Length (along its heading axis) and Width (perpendicular to
// it). It is the footprint primitive used for both the tractor and trailer
// bodies.
type OrientedRect struct {
	Center r2.Point
	Yaw    float64
	Length float64
	Width  float64
}

// BoundingRadius returns the radius of a circle centered at Center that
// fully encloses the rectangle, used to size k-d tree radius queries.
func (r OrientedRect) BoundingRadius() float64 {
	return 0.5 * math.Hypot(r.Length, r.Width)
}

// Contains reports whether the world-frame point p lies inside the
// rectangle, by rotating p into the rectangle's local frame and comparing
// against its half-extents.
func (r OrientedRect) Contains(p r2.Point) bool {
	dx := p.X - r.Center.X
	dy := p.Y - r.Center.Y
	c, s := math.Cos(-r.Yaw), math.Sin(-r.Yaw)
	localX := dx*c - dy*s
	localY := dx*s + dy*c
	return math.Abs(localX) <= r.Length/2 && math.Abs(localY) <= r.Width/2
}
