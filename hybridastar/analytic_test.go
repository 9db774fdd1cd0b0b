package hybridastar

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"github.com/viam-labs/trailerplan/geom2d"
	"github.com/viam-labs/trailerplan/kdtree"
	"github.com/viam-labs/trailerplan/vehicle"
)

func TestShouldAttemptAnalyticThrottlesOnDistance(t *testing.T) {
	cfg := testConfig()
	s := &Searcher{cfg: cfg}

	near := cfg.AnalyticExpansionRatio*cfg.XYResolution - 1
	far := cfg.AnalyticExpansionRatio*cfg.XYResolution + 1
	test.That(t, s.shouldAttemptAnalytic(near), test.ShouldBeTrue)
	test.That(t, s.shouldAttemptAnalytic(far), test.ShouldBeFalse)
}

func TestTryAnalyticExpansionReachesNearbyGoal(t *testing.T) {
	cfg := testConfig()
	s := &Searcher{
		checker: emptyChecker(),
		cfg:     cfg,
		rMin:    cfg.Kinematic.MinTurningRadius(),
		logger:  testLogger(),
	}
	start := geom2d.Pose{}
	goal := geom2d.Pose{Point: r2.Point{X: 10, Y: 0}, YawT: 0, YawR: 0}
	candidate := newRootNode(start, cfg.XYResolution, cfg.YawResolution)

	seg, ok := s.tryAnalyticExpansion(candidate, goal)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, len(seg.samples), test.ShouldBeGreaterThan, 1)

	terminal := seg.samples[len(seg.samples)-1]
	test.That(t, terminal.Point.X, test.ShouldAlmostEqual, goal.Point.X, 0.5)
	test.That(t, math.Abs(geom2d.AngleDiff(terminal.YawR, goal.YawR)), test.ShouldBeLessThan, cfg.GoalYawTolerance+1e-6)
}

func TestTryAnalyticExpansionRejectsWhenBlocked(t *testing.T) {
	cfg := testConfig()
	start := geom2d.Pose{}
	goal := geom2d.Pose{Point: r2.Point{X: 10, Y: 0}, YawT: 0, YawR: 0}

	// A wall of obstacle points straight between start and goal blocks
	// every Reeds-Shepp candidate shot.
	var pts []r2.Point
	for y := -3.0; y <= 3.0; y += 0.25 {
		pts = append(pts, r2.Point{X: 5, Y: y})
	}
	checker := vehicle.NewChecker(kdtree.New(pts), cfg.Vehicle)
	s := &Searcher{checker: checker, cfg: cfg, rMin: cfg.Kinematic.MinTurningRadius(), logger: testLogger()}
	candidate := newRootNode(start, cfg.XYResolution, cfg.YawResolution)

	_, ok := s.tryAnalyticExpansion(candidate, goal)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestPropagateTrailerKeepsStartPose(t *testing.T) {
	start := geom2d.Pose{Point: r2.Point{X: 1, Y: 2}, YawT: 0.1, YawR: 0.1}
	tractorPoses := []geom2d.TractorPose{start.Tractor(), {Point: r2.Point{X: 2, Y: 2}, Yaw: 0.1}}
	dirs := []bool{true, true}

	out := propagateTrailer(start, tractorPoses, dirs, testConfig().Kinematic)
	test.That(t, len(out), test.ShouldEqual, 2)
	test.That(t, out[0], test.ShouldResemble, start)
}
