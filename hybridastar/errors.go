package hybridastar

import "github.com/pkg/errors"

// Sentinel errors the search core itself can return. ErrInvalidStart,
// ErrInvalidGoal, and ErrHeuristicUnreachable are reported earlier, by the
// orchestration layer, before the search loop ever runs — see the
// trailerplan package's errors.go.
var (
	// ErrSearchExhausted is returned when the open set empties without
	// ever finding a path to the goal.
	ErrSearchExhausted = errors.New("hybrid A* search exhausted: no path to goal")

	// ErrBudgetExceeded is returned when the node-expansion budget (or the
	// caller's context deadline) is reached before a path is found.
	ErrBudgetExceeded = errors.New("hybrid A* search exceeded its node or time budget")
)

// newInternalInvariantErr wraps a detected contract violation (a malformed
// Reeds-Shepp sample, an empty node sample array, etc). This is always a
// bug in this module, not a caller error, and is never recovered from
// within a single plan call.
func newInternalInvariantErr(reason string) error {
	return errors.Errorf("internal invariant violated: %s", reason)
}
