package trailerplan

import "github.com/viam-labs/trailerplan/geom2d"

// Path is the externally-facing result of a successful Plan call: parallel
// slices of equal length describing the dense tractor-trailer trajectory,
// one entry per kinematic micro-step. This is distinct from hybridastar's
// internal []geom2d.Pose representation so that callers depend only on this
// package's stable public shape, not on the search core's pose type.
type Path struct {
	X          []float64
	Y          []float64
	YawTractor []float64
	YawTrailer []float64
	// Direction reports, per sample, whether that step of travel was in
	// reverse (true) or forward (false).
	Direction []bool
}

// Len returns the number of samples in the path.
func (p *Path) Len() int {
	return len(p.X)
}

func pathFromPoses(poses []geom2d.Pose) *Path {
	p := &Path{
		X:          make([]float64, len(poses)),
		Y:          make([]float64, len(poses)),
		YawTractor: make([]float64, len(poses)),
		YawTrailer: make([]float64, len(poses)),
		Direction:  make([]bool, len(poses)),
	}
	for i, pose := range poses {
		p.X[i] = pose.Point.X
		p.Y[i] = pose.Point.Y
		p.YawTractor[i] = pose.YawT
		p.YawTrailer[i] = pose.YawR
		p.Direction[i] = pose.Backward
	}
	return p
}
