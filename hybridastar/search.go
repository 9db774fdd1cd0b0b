package hybridastar

import (
	"context"
	"math"

	"github.com/viam-labs/trailerplan/geom2d"
	"github.com/viam-labs/trailerplan/heuristic"
	"github.com/viam-labs/trailerplan/logging"
	"github.com/viam-labs/trailerplan/reedsshepp"
	"github.com/viam-labs/trailerplan/vehicle"
)

// Searcher owns everything the hybrid A* search loop needs for a single
// Plan invocation: the collision checker, the precomputed holonomic
// heuristic grid, the tunable Config, and a logger. None of its fields are
// mutated after construction; the open/closed sets and priority queue for
// a given Search call live entirely on that call's stack, so independent
// Searchers (or repeated Search calls against the same Searcher) never
// share mutable state, per SPEC_FULL.md §5.
type Searcher struct {
	checker *vehicle.Checker
	grid    *heuristic.Grid
	cfg     Config
	rMin    float64
	logger  logging.Logger
}

// NewSearcher constructs a Searcher. grid may be nil, in which case the
// holonomic heuristic term is treated as always 0 (admissible, just less
// informed) — present so callers can choose to search without a
// precomputed grid if the heuristic table build already determined the
// goal is unreachable and short-circuited earlier.
func NewSearcher(checker *vehicle.Checker, grid *heuristic.Grid, cfg Config, logger logging.Logger) *Searcher {
	return &Searcher{
		checker: checker,
		grid:    grid,
		cfg:     cfg,
		rMin:    cfg.Kinematic.MinTurningRadius(),
		logger:  logger,
	}
}

// Result is the outcome of a successful Search: the terminal node chain and
// the analytic segment that closed it, handed to Reconstruct (C8).
type Result struct {
	goal     geom2d.Pose
	terminal *node
	closing  *analyticSegment
	closed   map[Key]*node
}

// heuristicOf returns h(S) = max(h_holo(S), h_rs(S)) * HeuristicWeight, per
// SPEC_FULL.md §4.7. Both terms are individually admissible lower bounds on
// remaining cost-to-goal; their max remains admissible.
func (s *Searcher) heuristicOf(pose geom2d.Pose, goal geom2d.Pose) float64 {
	hHolo := 0.0
	if s.grid != nil {
		hHolo = s.grid.CostAt(pose.Point.X, pose.Point.Y)
	}
	hRS := shortestReedsSheppLength(pose.Tractor(), goal.Tractor(), s.rMin)
	h := math.Max(hHolo, hRS)
	return s.cfg.HeuristicWeight * h
}

func shortestReedsSheppLength(src, dst geom2d.TractorPose, rMin float64) float64 {
	paths := reedsshepp.AllPaths(src, dst, rMin)
	if len(paths) == 0 {
		return 0
	}
	return paths[0].TotalLen
}

// Search runs the hybrid A* loop from start to goal. It returns
// ErrBudgetExceeded if ctx is cancelled or the node budget is spent before
// a path is found, and ErrSearchExhausted if the open set empties first.
func (s *Searcher) Search(ctx context.Context, start, goal geom2d.Pose) (*Result, error) {
	open := newOpenSet()
	closed := map[Key]*node{}

	root := newRootNode(start, s.cfg.XYResolution, s.cfg.YawResolution)
	rootH := s.heuristicOf(start, goal)
	open.insert(root, root.g+rootH, rootH)

	budget := s.cfg.NodeBudget
	expansions := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ErrBudgetExceeded
		default:
		}
		if budget > 0 && expansions >= budget {
			s.logger.Warnw("node budget exceeded", "expansions", expansions, "budget", budget)
			return nil, ErrBudgetExceeded
		}

		cur, ok := open.popBest(closed)
		if !ok {
			s.logger.Warnw("search exhausted", "expansions", expansions, "closedCount", len(closed))
			return nil, ErrSearchExhausted
		}
		expansions++

		hRS := shortestReedsSheppLength(cur.Pose().Tractor(), goal.Tractor(), s.rMin)
		if s.shouldAttemptAnalytic(hRS) {
			if seg, ok := s.tryAnalyticExpansion(cur, goal); ok {
				closed[cur.key] = cur
				s.logger.Infow("analytic expansion closed the search", "expansions", expansions)
				return &Result{goal: goal, terminal: cur, closing: seg, closed: closed}, nil
			}
		}

		closed[cur.key] = cur
		for _, succ := range s.expand(cur) {
			if _, isClosed := closed[succ.key]; isClosed {
				continue
			}
			if existing, inOpen := open.get(succ.key); inOpen && existing.g <= succ.g {
				continue
			}
			succH := s.heuristicOf(succ.Pose(), goal)
			open.insert(succ, succ.g+succH, succH)
		}
	}
}
