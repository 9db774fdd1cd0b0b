package reedsshepp

import "github.com/viam-labs/trailerplan/geom2d"

// Sample walks the path from src (the real-world source pose, not the
// normalized frame used by AllPaths) at the given turning radius, emitting
// a pose every step meters of arc length (the final sample of each segment
// always lands exactly on the segment boundary, so segment junctions are
// never skipped over). It returns the dense tractor poses and a parallel
// per-sample forward/backward flag; poses[0] is always src itself.
func (p Path) Sample(src geom2d.TractorPose, r, step float64) ([]geom2d.TractorPose, []bool) {
	poses := []geom2d.TractorPose{src}
	dirs := []bool{true}
	cur := src
	for _, seg := range p.Segments {
		forward := seg.Forward()
		remaining := absF(seg.Length)
		travelled := 0.0
		for travelled < remaining {
			ds := step
			if remaining-travelled < step {
				ds = remaining - travelled
			}
			if ds <= 0 {
				break
			}
			signedDS := ds
			if !forward {
				signedDS = -ds
			}
			cur = apply(cur, Segment{Curve: seg.Curve, Length: signedDS}, r)
			poses = append(poses, cur)
			dirs = append(dirs, forward)
			travelled += ds
		}
	}
	return poses, dirs
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
