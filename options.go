package trailerplan

import (
	"math"

	"github.com/viam-labs/trailerplan/hybridastar"
	"github.com/viam-labs/trailerplan/kinematic"
	"github.com/viam-labs/trailerplan/vehicle"
)

// PlannerOptions collects every tunable constant a Plan call needs, built via
// NewDefaultPlannerOptions and a chain of With... functional-option methods,
// mirroring this codebase's sibling motion-planning package's
// plannerOptions/NewDefaultPlannerOptions/opt.SetX(...) convention (SPEC_FULL.md §10).
type PlannerOptions struct {
	// Vehicle geometry.
	vehicle   vehicle.Dims
	kinematic kinematic.Params

	// Search grid and motion-primitive tuning.
	xyResolution     float64
	yawResolution    float64
	motionResolution float64
	nSteer           int
	maxSteer         float64

	// Cost weights.
	steerCost              float64
	steerChangeCost        float64
	backCost               float64
	switchBackCost         float64
	hCost                  float64
	heuristicWeight        float64
	goalYawTolerance       float64
	analyticExpansionRatio float64
	nodeBudget             int

	// Heuristic grid construction.
	heuristicResolution    float64
	heuristicVehicleRadius float64
	heuristicMargin        float64
}

// NewDefaultPlannerOptions returns a PlannerOptions populated with
// reference vehicle and search tuning values, suitable as a starting point
// for a chain of With... overrides.
func NewDefaultPlannerOptions() *PlannerOptions {
	return &PlannerOptions{
		vehicle: vehicle.Dims{
			TractorLength: 4.5,
			TractorWidth:  2.0,
			TrailerLength: 9.0,
			TrailerWidth:  2.3,
			RearToHitch:   1.0,
			MaxJackknife:  math.Pi / 3,
		},
		kinematic: kinematic.Params{
			WheelBase:        3.0,
			TrailerLength:    9.0,
			RearToHitch:      1.0,
			MotionResolution: 0.4,
			MaxSteer:         0.6,
			MaxJackknife:     math.Pi / 3,
		},
		xyResolution:           2.0,
		yawResolution:          math.Pi / 12,
		motionResolution:       0.4,
		nSteer:                 3,
		maxSteer:               0.6,
		steerCost:              0.1,
		steerChangeCost:        0.2,
		backCost:               2.0,
		switchBackCost:         5.0,
		hCost:                  0.5,
		heuristicWeight:        1.2,
		goalYawTolerance:       math.Pi / 60,
		analyticExpansionRatio: 10.0,
		nodeBudget:             200000,
		heuristicResolution:    2.0,
		heuristicVehicleRadius: 5.0,
		heuristicMargin:        10.0,
	}
}

// WithVehicleDims overrides the tractor/trailer body dimensions.
func (o *PlannerOptions) WithVehicleDims(d vehicle.Dims) *PlannerOptions {
	o.vehicle = d
	return o
}

// WithKinematicParams overrides the bicycle-with-trailer kinematic constants.
func (o *PlannerOptions) WithKinematicParams(p kinematic.Params) *PlannerOptions {
	o.kinematic = p
	return o
}

// WithXYResolution overrides the search grid's position discretization.
func (o *PlannerOptions) WithXYResolution(res float64) *PlannerOptions {
	o.xyResolution = res
	return o
}

// WithYawResolution overrides the search grid's heading discretization.
func (o *PlannerOptions) WithYawResolution(res float64) *PlannerOptions {
	o.yawResolution = res
	return o
}

// WithMotionResolution overrides the kinematic micro-step arc length.
func (o *PlannerOptions) WithMotionResolution(res float64) *PlannerOptions {
	o.motionResolution = res
	o.kinematic.MotionResolution = res
	return o
}

// WithSteerSampling overrides the number of steering samples per side of
// zero (nSteer) and the maximum steering angle (radians).
func (o *PlannerOptions) WithSteerSampling(nSteer int, maxSteer float64) *PlannerOptions {
	o.nSteer = nSteer
	o.maxSteer = maxSteer
	return o
}

// WithCostWeights overrides the edge-cost weighting terms of SPEC_FULL.md §4.2.
func (o *PlannerOptions) WithCostWeights(steerCost, steerChangeCost, backCost, switchBackCost, hCost float64) *PlannerOptions {
	o.steerCost = steerCost
	o.steerChangeCost = steerChangeCost
	o.backCost = backCost
	o.switchBackCost = switchBackCost
	o.hCost = hCost
	return o
}

// WithHeuristicWeight overrides the admissible-heuristic scaling factor.
func (o *PlannerOptions) WithHeuristicWeight(w float64) *PlannerOptions {
	o.heuristicWeight = w
	return o
}

// WithGoalYawTolerance overrides the trailer-yaw tolerance an analytic
// expansion (C6) must close within to be accepted.
func (o *PlannerOptions) WithGoalYawTolerance(tol float64) *PlannerOptions {
	o.goalYawTolerance = tol
	return o
}

// WithAnalyticExpansionRatio overrides the throttle that decides when to
// attempt a Reeds-Shepp goal shot: attempted when h_rs < ratio * xyResolution.
func (o *PlannerOptions) WithAnalyticExpansionRatio(ratio float64) *PlannerOptions {
	o.analyticExpansionRatio = ratio
	return o
}

// WithNodeBudget overrides the maximum number of node expansions a single
// Plan call may perform before returning ErrBudgetExceeded.
func (o *PlannerOptions) WithNodeBudget(budget int) *PlannerOptions {
	o.nodeBudget = budget
	return o
}

// WithHeuristicGrid overrides the holonomic cost-to-go grid's resolution,
// obstacle-inflation radius, and bounding-box margin.
func (o *PlannerOptions) WithHeuristicGrid(resolution, vehicleRadius, margin float64) *PlannerOptions {
	o.heuristicResolution = resolution
	o.heuristicVehicleRadius = vehicleRadius
	o.heuristicMargin = margin
	return o
}

// SteerSamples returns the fixed, ordered slice of steering angles the
// motion-primitive expander will use, exposed so callers and tests can
// assert on successor-generation order without reaching into the search
// core's unexported state (SPEC_FULL.md §12).
func (o *PlannerOptions) SteerSamples() []float64 {
	return o.toSearchConfig().SteerSamples()
}

func (o *PlannerOptions) toSearchConfig() hybridastar.Config {
	return hybridastar.Config{
		XYResolution:           o.xyResolution,
		YawResolution:          o.yawResolution,
		MotionResolution:       o.motionResolution,
		NSteer:                 o.nSteer,
		MaxSteer:               o.maxSteer,
		SteerCost:              o.steerCost,
		SteerChangeCost:        o.steerChangeCost,
		BackCost:               o.backCost,
		SwitchBackCost:         o.switchBackCost,
		HCost:                  o.hCost,
		HeuristicWeight:        o.heuristicWeight,
		GoalYawTolerance:       o.goalYawTolerance,
		AnalyticExpansionRatio: o.analyticExpansionRatio,
		NodeBudget:             o.nodeBudget,
		Kinematic:              o.kinematic,
		Vehicle:                o.vehicle,
	}
}
