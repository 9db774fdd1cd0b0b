package kinematic

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/viam-labs/trailerplan/geom2d"
)

// Step advances pose by one arc-length step of magnitude params.MotionResolution,
// signed by forward (+1) or backward (-1) travel, with tractor steering angle
// steer (radians). This is the bicycle-with-trailer update of the planner's
// kinematic model:
//
//	x'     = x + D*cos(yaw_t)
//	y'     = y + D*sin(yaw_t)
//	yaw_t' = yaw_t + D/WB * tan(steer)
//	yaw_r' = yaw_r + D/LT * sin(yaw_t - yaw_r)
func Step(pose geom2d.Pose, steer float64, forward bool, params Params) geom2d.Pose {
	d := params.MotionResolution
	if !forward {
		d = -d
	}
	yawT := geom2d.NormalizeAngle(pose.YawT + d/params.WheelBase*math.Tan(steer))
	yawR := geom2d.NormalizeAngle(pose.YawR + d/params.TrailerLength*math.Sin(pose.YawT-pose.YawR))
	return geom2d.Pose{
		Point:    r2.Point{X: pose.Point.X + d*math.Cos(pose.YawT), Y: pose.Point.Y + d*math.Sin(pose.YawT)},
		YawT:     yawT,
		YawR:     yawR,
		Backward: !forward,
	}
}

// Integrate applies Step nSteps times starting from pose, returning the
// dense sample sequence including the starting pose as element 0 — so the
// returned slice always has length nSteps+1. This is the forward simulation
// C5 runs per (steer, direction) candidate to build one hybrid-A* edge.
func Integrate(pose geom2d.Pose, steer float64, forward bool, nSteps int, params Params) []geom2d.Pose {
	samples := make([]geom2d.Pose, nSteps+1)
	samples[0] = pose
	cur := pose
	for i := 1; i <= nSteps; i++ {
		cur = Step(cur, steer, forward, params)
		samples[i] = cur
	}
	return samples
}

// ArcLength returns the total signed-magnitude arc length traversed by n
// steps at the integrator's fixed motion resolution.
func ArcLength(nSteps int, params Params) float64 {
	return float64(nSteps) * params.MotionResolution
}
