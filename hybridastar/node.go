// Package hybridastar implements the hybrid-state A* search core: the
// motion-primitive expander (C5), the analytic-expansion attempt (C6), the
// open/closed-set search loop (C7), and path reconstruction (C8). It uses
// the vehicle, kinematic, reedsshepp and heuristic packages directly,
// through their concrete types.
package hybridastar

import (
	"math"

	"github.com/viam-labs/trailerplan/geom2d"
)

// Key is the discrete 4-tuple identity of a node: floor-divided (x, y,
// yaw_tractor, yaw_trailer). Two continuous poses that floor-divide to the
// same Key are considered the same node for open/closed-set membership.
type Key struct {
	IX, IY, IYawT, IYawR int
}

// KeyOf derives the discrete Key of a continuous pose under the given grid
// resolutions. Both xyRes and yawRes must be positive.
func KeyOf(pose geom2d.Pose, xyRes, yawRes float64) Key {
	return Key{
		IX:    floorDiv(pose.Point.X, xyRes),
		IY:    floorDiv(pose.Point.Y, xyRes),
		IYawT: floorDiv(geom2d.NormalizeAngle(pose.YawT), yawRes),
		IYawR: floorDiv(geom2d.NormalizeAngle(pose.YawR), yawRes),
	}
}

func floorDiv(v, res float64) int {
	return int(math.Floor(v / res))
}

// node is a single search record. Its samples slice covers every
// micro-step of the edge that produced it (including the parent's own pose
// as element 0); samples[len(samples)-1] is always the node's own
// continuous pose, per the node invariant in SPEC_FULL.md §3.
type node struct {
	key       Key
	samples   []geom2d.Pose
	steer     float64
	g         float64
	parent    Key
	hasParent bool
}

// Pose returns the node's own continuous pose: the final sample of its
// arriving edge.
func (n *node) Pose() geom2d.Pose {
	return n.samples[len(n.samples)-1]
}

func newRootNode(start geom2d.Pose, xyRes, yawRes float64) *node {
	return &node{
		key:     KeyOf(start, xyRes, yawRes),
		samples: []geom2d.Pose{start},
	}
}
