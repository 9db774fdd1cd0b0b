// Package trailerplan plans a collision-free, kinematically-feasible path
// for a tractor-trailer vehicle between two poses using hybrid-state A*
// search with Reeds-Shepp analytic shortcuts, mirroring how this codebase's
// sibling motion-planning package exposes a single Plan-style entry point
// backed by a layered internal search core.
package trailerplan

import (
	"context"
	"math"

	"github.com/golang/geo/r2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/viam-labs/trailerplan/geom2d"
	"github.com/viam-labs/trailerplan/heuristic"
	"github.com/viam-labs/trailerplan/hybridastar"
	"github.com/viam-labs/trailerplan/kdtree"
	"github.com/viam-labs/trailerplan/logging"
	"github.com/viam-labs/trailerplan/vehicle"
)

var defaultLogger = logging.NewLogger("trailerplan")

// Plan searches for a dense, kinematically-feasible path for the
// tractor-trailer vehicle described by opts from start to goal, treating
// obstacles as point obstacles inflated by the vehicle's own footprint
// during collision checks. If opts is nil, NewDefaultPlannerOptions() is
// used. Every invocation is stamped with a UUID plan-run ID threaded
// through its log lines, so concurrent independent calls stay
// distinguishable in shared log output (SPEC_FULL.md §11).
func Plan(ctx context.Context, start, goal geom2d.Pose, obstacles []r2.Point, opts *PlannerOptions) (*Path, error) {
	if opts == nil {
		opts = NewDefaultPlannerOptions()
	}
	planID := uuid.New().String()
	log := defaultLogger.With("planID", planID)

	obstacleTree := kdtree.New(obstacles)
	checker := vehicle.NewChecker(obstacleTree, opts.vehicle)

	if err := validateEndpoints(checker, start, goal); err != nil {
		log.Warnw("plan failed", "reason", "invalid start or goal", "error", err.Error())
		return nil, err
	}

	minX, maxX, minY, maxY := boundingBox(start, goal, obstacles)
	grid := heuristic.Build(goal.Point, obstacleTree, minX, maxX, minY, maxY,
		heuristic.Params{
			Resolution:    opts.heuristicResolution,
			VehicleRadius: opts.heuristicVehicleRadius,
			Margin:        opts.heuristicMargin,
		})
	if math.IsInf(grid.CostAt(goal.Point.X, goal.Point.Y), 1) {
		log.Warnw("plan failed", "reason", "goal unreachable in heuristic grid")
		return nil, ErrHeuristicUnreachable
	}

	searcher := hybridastar.NewSearcher(checker, grid, opts.toSearchConfig(), log)
	res, err := searcher.Search(ctx, start, goal)
	if err != nil {
		log.Warnw("plan failed", "reason", "search did not reach goal", "error", err.Error())
		return nil, err
	}

	poses, err := hybridastar.Reconstruct(res)
	if err != nil {
		log.Errorw("plan failed", "reason", "path reconstruction invariant violation", "error", err.Error())
		return nil, errors.Wrap(err, "reconstructing planned path")
	}

	log.Infow("plan succeeded", "samples", len(poses))
	return pathFromPoses(poses), nil
}

func validateEndpoints(checker *vehicle.Checker, start, goal geom2d.Pose) error {
	var startErr, goalErr error
	if !checker.Check(start) {
		startErr = ErrInvalidStart
	}
	if !checker.Check(goal) {
		goalErr = ErrInvalidGoal
	}
	if startErr != nil || goalErr != nil {
		return validationErr(startErr, goalErr)
	}
	return nil
}

// boundingBox returns a box covering start, goal, and every obstacle point,
// used as the holonomic heuristic grid's base extent before its own margin
// is applied.
func boundingBox(start, goal geom2d.Pose, obstacles []r2.Point) (minX, maxX, minY, maxY float64) {
	minX, maxX = math.Min(start.Point.X, goal.Point.X), math.Max(start.Point.X, goal.Point.X)
	minY, maxY = math.Min(start.Point.Y, goal.Point.Y), math.Max(start.Point.Y, goal.Point.Y)
	for _, p := range obstacles {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, maxX, minY, maxY
}
