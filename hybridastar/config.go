package hybridastar

import (
	"math"

	"github.com/viam-labs/trailerplan/kinematic"
	"github.com/viam-labs/trailerplan/vehicle"
)

// Config collects every tunable constant the search core needs. It is
// constructed by the top-level trailerplan.PlannerOptions and passed down
// here as plain values, the same way this codebase's plannerOptions is
// built once by a caller and threaded, read-only, through a planner's
// constructors.
type Config struct {
	XYResolution     float64
	YawResolution    float64
	MotionResolution float64
	NSteer           int // number of steering samples per side of zero
	MaxSteer         float64

	SteerCost              float64
	SteerChangeCost        float64
	BackCost               float64
	SwitchBackCost         float64
	HCost                  float64
	HeuristicWeight        float64
	GoalYawTolerance       float64
	AnalyticExpansionRatio float64 // attempt C6 when h_rs < ratio * XYResolution
	NodeBudget             int

	Kinematic kinematic.Params
	Vehicle   vehicle.Dims
}

// NSteps returns the number of kinematic micro-steps per edge, chosen so
// that one edge traverses roughly one grid diagonal: NStep * MOTION_RESOLUTION
// ~= XY_GRID_RESOLUTION * sqrt(2).
func (c Config) NSteps() int {
	n := int(math.Round(c.XYResolution * math.Sqrt2 / c.MotionResolution))
	if n < 1 {
		n = 1
	}
	return n
}

// SteerSamples returns the fixed, ordered slice of steering angles used by
// the motion-primitive expander, from -MaxSteer to +MaxSteer in 2*NSteer+1
// steps (including zero), exposed so callers and tests can assert on the
// deterministic successor-generation order (SPEC_FULL.md §12).
func (c Config) SteerSamples() []float64 {
	if c.NSteer <= 0 {
		return []float64{0}
	}
	out := make([]float64, 0, 2*c.NSteer+1)
	step := c.MaxSteer / float64(c.NSteer)
	for i := -c.NSteer; i <= c.NSteer; i++ {
		out = append(out, float64(i)*step)
	}
	return out
}
