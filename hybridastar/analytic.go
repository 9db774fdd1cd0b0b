package hybridastar

import (
	"math"

	"github.com/viam-labs/trailerplan/geom2d"
	"github.com/viam-labs/trailerplan/kinematic"
	"github.com/viam-labs/trailerplan/reedsshepp"
)

// analyticSegment is the accepted goal-connection shot produced by C6: the
// dense sample sequence (tractor samples fixed by the Reeds-Shepp curve,
// trailer yaw forward-propagated to follow it) and per-sample direction.
type analyticSegment struct {
	samples []geom2d.Pose
}

// shouldAttemptAnalytic implements the throttle SPEC_FULL.md §4.6 and §4.7
// call for: attempts concentrate near the goal rather than firing on every
// pop, which the source implementation does and which is too costly.
func (s *Searcher) shouldAttemptAnalytic(hRS float64) bool {
	return hRS < s.cfg.AnalyticExpansionRatio*s.cfg.XYResolution
}

// tryAnalyticExpansion attempts a Reeds-Shepp shot from candidate to goal.
// It enumerates candidate curves in increasing length order, forward-
// propagates the trailer heading along each, and accepts the first that
// both closes on the goal's trailer yaw within GoalYawTolerance and passes
// collision/jackknife checks over its full dense sample sequence.
func (s *Searcher) tryAnalyticExpansion(candidate *node, goal geom2d.Pose) (*analyticSegment, bool) {
	src := candidate.Pose()
	paths := reedsshepp.AllPaths(src.Tractor(), goal.Tractor(), s.rMin)
	for _, path := range paths {
		tractorPoses, dirs := path.Sample(src.Tractor(), s.rMin, s.cfg.MotionResolution)
		samples := propagateTrailer(src, tractorPoses, dirs, s.cfg.Kinematic)

		terminal := samples[len(samples)-1]
		if math.Abs(geom2d.AngleDiff(terminal.YawR, goal.YawR)) > s.cfg.GoalYawTolerance {
			continue
		}
		if !s.checker.CheckPath(samples) {
			continue
		}
		return &analyticSegment{samples: samples}, true
	}
	return nil, false
}

// propagateTrailer walks the tractor-only poses/directions a Reeds-Shepp
// curve produced and forward-propagates the trailer heading one kinematic
// micro-step at a time, since the R-S curve fixes only the tractor's path;
// the trailer follows it exactly as it would during a normal C5 expansion.
func propagateTrailer(start geom2d.Pose, tractorPoses []geom2d.TractorPose, dirs []bool, params kinematic.Params) []geom2d.Pose {
	out := make([]geom2d.Pose, len(tractorPoses))
	out[0] = start
	yawR := start.YawR
	for i := 1; i < len(tractorPoses); i++ {
		prev := tractorPoses[i-1]
		cur := tractorPoses[i]
		d := math.Hypot(cur.Point.X-prev.Point.X, cur.Point.Y-prev.Point.Y)
		if !dirs[i] {
			d = -d
		}
		yawR = geom2d.NormalizeAngle(yawR + d/params.TrailerLength*math.Sin(prev.Yaw-yawR))
		out[i] = geom2d.Pose{Point: cur.Point, YawT: cur.Yaw, YawR: yawR, Backward: !dirs[i]}
	}
	return out
}
