package trailerplan

import (
	"math"

	"github.com/viam-labs/trailerplan/kinematic"
	"github.com/viam-labs/trailerplan/vehicle"
)

func testVehicleDims() vehicle.Dims {
	return vehicle.Dims{
		TractorLength: 4.0,
		TractorWidth:  2.0,
		TrailerLength: 5.0,
		TrailerWidth:  2.0,
		RearToHitch:   1.0,
		MaxJackknife:  math.Pi / 3,
	}
}

func testKinematicParams() kinematic.Params {
	return kinematic.Params{
		WheelBase:        2.5,
		TrailerLength:    3.0,
		RearToHitch:      1.0,
		MotionResolution: 0.4,
		MaxSteer:         math.Pi / 4,
		MaxJackknife:     math.Pi / 3,
	}
}
