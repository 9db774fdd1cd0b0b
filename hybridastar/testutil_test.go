package hybridastar

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/viam-labs/trailerplan/heuristic"
	"github.com/viam-labs/trailerplan/kdtree"
	"github.com/viam-labs/trailerplan/kinematic"
	"github.com/viam-labs/trailerplan/logging"
	"github.com/viam-labs/trailerplan/vehicle"
)

func testConfig() Config {
	return Config{
		XYResolution:           2.0,
		YawResolution:          math.Pi / 12,
		MotionResolution:       0.4,
		NSteer:                 3,
		MaxSteer:               math.Pi / 4,
		SteerCost:              0.1,
		SteerChangeCost:        0.2,
		BackCost:               2.0,
		SwitchBackCost:         5.0,
		HCost:                  0.5,
		HeuristicWeight:        1.2,
		GoalYawTolerance:       math.Pi / 60,
		AnalyticExpansionRatio: 10.0,
		NodeBudget:             20000,
		Kinematic: kinematic.Params{
			WheelBase:        2.5,
			TrailerLength:    3.0,
			RearToHitch:      1.0,
			MotionResolution: 0.4,
			MaxSteer:         math.Pi / 4,
			MaxJackknife:     math.Pi / 3,
		},
		Vehicle: vehicle.Dims{
			TractorLength: 4.0,
			TractorWidth:  2.0,
			TrailerLength: 5.0,
			TrailerWidth:  2.0,
			RearToHitch:   1.0,
			MaxJackknife:  math.Pi / 3,
		},
	}
}

func testLogger() logging.Logger {
	return logging.NewBlankLogger()
}

func emptyChecker() *vehicle.Checker {
	return vehicle.NewChecker(kdtree.New(nil), testConfig().Vehicle)
}

func emptyGrid(gx, gy float64) *heuristic.Grid {
	return heuristic.Build(
		r2.Point{X: gx, Y: gy}, kdtree.New(nil),
		math.Min(0, gx)-20, math.Max(0, gx)+20,
		math.Min(0, gy)-20, math.Max(0, gy)+20,
		heuristic.Params{Resolution: 2.0, VehicleRadius: 2.0, Margin: 5.0},
	)
}
