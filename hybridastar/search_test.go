package hybridastar

import (
	"context"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"github.com/viam-labs/trailerplan/geom2d"
)

func TestSearchSamePoseClosesImmediately(t *testing.T) {
	cfg := testConfig()
	grid := emptyGrid(0, 0)
	s := NewSearcher(emptyChecker(), grid, cfg, testLogger())

	start := geom2d.Pose{}
	res, err := s.Search(context.Background(), start, start)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.terminal, test.ShouldNotBeNil)

	path, err := Reconstruct(res)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(path), test.ShouldBeGreaterThan, 0)
	test.That(t, path[len(path)-1].AlmostEqual(start, 0.5, cfg.GoalYawTolerance+0.2), test.ShouldBeTrue)
}

func TestSearchOpenFieldReachesForwardGoal(t *testing.T) {
	cfg := testConfig()
	start := geom2d.Pose{}
	goal := geom2d.Pose{Point: r2.Point{X: 15, Y: 0}, YawT: 0, YawR: 0}
	grid := emptyGrid(goal.Point.X, goal.Point.Y)
	s := NewSearcher(emptyChecker(), grid, cfg, testLogger())

	res, err := s.Search(context.Background(), start, goal)
	test.That(t, err, test.ShouldBeNil)

	path, err := Reconstruct(res)
	test.That(t, err, test.ShouldBeNil)
	terminal := path[len(path)-1]
	test.That(t, terminal.Point.X, test.ShouldAlmostEqual, goal.Point.X, 0.5)
	test.That(t, terminal.Point.Y, test.ShouldAlmostEqual, goal.Point.Y, 0.5)
}

func TestSearchOpenFieldReachesReverseGoal(t *testing.T) {
	cfg := testConfig()
	start := geom2d.Pose{}
	goal := geom2d.Pose{Point: r2.Point{X: -12, Y: 0}, YawT: math.Pi, YawR: math.Pi}
	grid := emptyGrid(goal.Point.X, goal.Point.Y)
	s := NewSearcher(emptyChecker(), grid, cfg, testLogger())

	res, err := s.Search(context.Background(), start, goal)
	test.That(t, err, test.ShouldBeNil)

	path, err := Reconstruct(res)
	test.That(t, err, test.ShouldBeNil)
	terminal := path[len(path)-1]
	test.That(t, terminal.Point.X, test.ShouldAlmostEqual, goal.Point.X, 0.5)
}

func TestSearchJackknifeForcedExhaustion(t *testing.T) {
	cfg := testConfig()
	cfg.Vehicle.MaxJackknife = 1e-9
	cfg.Kinematic.MaxJackknife = 1e-9
	cfg.NodeBudget = 500

	start := geom2d.Pose{}
	goal := geom2d.Pose{Point: r2.Point{X: 15, Y: 15}, YawT: math.Pi / 2, YawR: math.Pi / 2}
	grid := emptyGrid(goal.Point.X, goal.Point.Y)
	s := NewSearcher(emptyChecker(), grid, cfg, testLogger())

	_, err := s.Search(context.Background(), start, goal)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSearchNodeBudgetExceeded(t *testing.T) {
	cfg := testConfig()
	cfg.NodeBudget = 1

	start := geom2d.Pose{}
	goal := geom2d.Pose{Point: r2.Point{X: 500, Y: 500}, YawT: 0, YawR: 0}
	grid := emptyGrid(goal.Point.X, goal.Point.Y)
	s := NewSearcher(emptyChecker(), grid, cfg, testLogger())

	_, err := s.Search(context.Background(), start, goal)
	test.That(t, err, test.ShouldEqual, ErrBudgetExceeded)
}

func TestSearchRespectsContextCancellation(t *testing.T) {
	cfg := testConfig()
	start := geom2d.Pose{}
	goal := geom2d.Pose{Point: r2.Point{X: 500, Y: 500}, YawT: 0, YawR: 0}
	grid := emptyGrid(goal.Point.X, goal.Point.Y)
	s := NewSearcher(emptyChecker(), grid, cfg, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Search(ctx, start, goal)
	test.That(t, err, test.ShouldEqual, ErrBudgetExceeded)
}
