package trailerplan

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/viam-labs/trailerplan/hybridastar"
)

// Sentinel errors reported directly by Plan, before or after the search
// core runs. ErrSearchExhausted and ErrBudgetExceeded are declared in
// hybridastar and re-exported here so callers never need to import that
// package directly (SPEC_FULL.md §7).
var (
	// ErrInvalidStart is returned when the start pose fails its own
	// collision or jackknife check.
	ErrInvalidStart = errors.New("start pose is infeasible: collision or jackknife violation")

	// ErrInvalidGoal is returned when the goal pose fails its own
	// collision or jackknife check.
	ErrInvalidGoal = errors.New("goal pose is infeasible: collision or jackknife violation")

	// ErrHeuristicUnreachable is returned when the goal cell is
	// unreachable in the holonomic heuristic grid, which makes the goal
	// unreachable by the search core too.
	ErrHeuristicUnreachable = errors.New("goal is unreachable in the holonomic heuristic grid")

	// ErrSearchExhausted is returned when the open set empties without
	// ever finding a path to the goal.
	ErrSearchExhausted = hybridastar.ErrSearchExhausted

	// ErrBudgetExceeded is returned when the node-expansion budget or the
	// caller's context deadline is reached before a path is found.
	ErrBudgetExceeded = hybridastar.ErrBudgetExceeded
)

// validationErr combines one or more of the pose-validation sentinels above
// via multierr, so a caller whose start and goal are both infeasible sees
// both reasons in a single returned error instead of only the first.
func validationErr(errs ...error) error {
	var combined error
	for _, e := range errs {
		if e != nil {
			combined = multierr.Append(combined, e)
		}
	}
	return combined
}
