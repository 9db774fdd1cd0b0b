// Package vehicle builds the tractor+trailer footprint at a given pose and
// checks it for collisions against a static obstacle set, accelerated by a
// k-d tree, mirroring this codebase's collisionGraph geometry-pair checks
// but specialized to two fixed oriented rectangles instead of an arbitrary
// geometry graph.
package vehicle

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/viam-labs/trailerplan/geom2d"
	"github.com/viam-labs/trailerplan/kdtree"
)

// Dims collects the fixed tractor and trailer body dimensions used to build
// the footprint rectangles. RearToHitch is the distance from the tractor's
// rear axle (the point whose position a Pose tracks) to the hitch.
type Dims struct {
	TractorLength float64
	TractorWidth  float64
	TrailerLength float64
	TrailerWidth  float64
	RearToHitch   float64
	MaxJackknife  float64
}

// Checker performs collision checks against a fixed obstacle k-d tree.
type Checker struct {
	obstacles *kdtree.Tree
	dims      Dims
}

// NewChecker builds a Checker over the given obstacle point set.
func NewChecker(obstacles *kdtree.Tree, dims Dims) *Checker {
	return &Checker{obstacles: obstacles, dims: dims}
}

// tractorRect returns the tractor's footprint rectangle at pose. The
// tractor body is centered half its length ahead of the rear axle, along
// its own heading.
func (d Dims) tractorRect(pose geom2d.Pose) geom2d.OrientedRect {
	offset := d.TractorLength / 2
	center := r2.Point{
		X: pose.Point.X + offset*math.Cos(pose.YawT),
		Y: pose.Point.Y + offset*math.Sin(pose.YawT),
	}
	return geom2d.OrientedRect{Center: center, Yaw: pose.YawT, Length: d.TractorLength, Width: d.TractorWidth}
}

// hitchPoint returns the world-frame location of the hitch, RearToHitch
// behind the tractor rear axle.
func (d Dims) hitchPoint(pose geom2d.Pose) r2.Point {
	return r2.Point{
		X: pose.Point.X - d.RearToHitch*math.Cos(pose.YawT),
		Y: pose.Point.Y - d.RearToHitch*math.Sin(pose.YawT),
	}
}

// trailerRect returns the trailer's footprint rectangle at pose. The
// trailer body is centered half its length behind the hitch, along the
// trailer's own heading.
func (d Dims) trailerRect(pose geom2d.Pose) geom2d.OrientedRect {
	hitch := d.hitchPoint(pose)
	offset := d.TrailerLength / 2
	center := r2.Point{
		X: hitch.X - offset*math.Cos(pose.YawR),
		Y: hitch.Y - offset*math.Sin(pose.YawR),
	}
	return geom2d.OrientedRect{Center: center, Yaw: pose.YawR, Length: d.TrailerLength, Width: d.TrailerWidth}
}

// Check reports whether pose is jackknife-feasible and collision-free.
func (c *Checker) Check(pose geom2d.Pose) bool {
	if math.Abs(pose.Jackknife()) > c.dims.MaxJackknife {
		return false
	}
	for _, rect := range [2]geom2d.OrientedRect{c.dims.tractorRect(pose), c.dims.trailerRect(pose)} {
		if c.rectCollides(rect) {
			return false
		}
	}
	return true
}

func (c *Checker) rectCollides(rect geom2d.OrientedRect) bool {
	if c.obstacles == nil || c.obstacles.Len() == 0 {
		return false
	}
	candidates := c.obstacles.RadiusNearestNeighbors(rect.Center, rect.BoundingRadius(), true)
	for _, cand := range candidates {
		if rect.Contains(cand.P) {
			return true
		}
	}
	return false
}

// CheckPath reports whether every pose in samples passes Check, returning
// false at the first failure without checking the remainder.
func (c *Checker) CheckPath(samples []geom2d.Pose) bool {
	for _, s := range samples {
		if !c.Check(s) {
			return false
		}
	}
	return true
}
