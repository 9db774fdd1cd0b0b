package reedsshepp

import (
	"math"
	"sort"

	"github.com/viam-labs/trailerplan/geom2d"
)

// closeTolerance bounds how far a candidate path's forward-simulated
// endpoint, in normalized (unit-radius) coordinates, may drift from the
// requested destination before the candidate is discarded. The word-type
// formulas below are closed-form and should close exactly modulo floating
// error; this is a defensive backstop, not a primary correctness mechanism.
const closeTolerance = 1e-6

func polar(x, y float64) (r, theta float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}

func mod2pi(x float64) float64 {
	return geom2d.NormalizeAngle(x)
}

// word is one of the three base Reeds-Shepp families computed in the
// normalized frame (unit turning radius, destination expressed in the
// source tractor pose's frame). ok reports feasibility; t, u, v are the
// three non-negative segment magnitudes (radians for curve segments, unit
// length for the straight segment).
type word func(x, y, phi float64) (ok bool, t, u, v float64)

// leftStraightLeft solves the L-S-L family: turn left by t, drive straight
// for u, turn left by v.
func leftStraightLeft(x, y, phi float64) (bool, float64, float64, float64) {
	u, t := polar(x-math.Sin(phi), y-1+math.Cos(phi))
	t = mod2pi(t)
	if t < -1e-9 {
		return false, 0, 0, 0
	}
	v := mod2pi(phi - t)
	if v < -1e-9 {
		return false, 0, 0, 0
	}
	return true, t, u, v
}

// leftStraightRight solves the L-S-R family.
func leftStraightRight(x, y, phi float64) (bool, float64, float64, float64) {
	u1, t1 := polar(x+math.Sin(phi), y-1-math.Cos(phi))
	u1sq := u1 * u1
	if u1sq < 4 {
		return false, 0, 0, 0
	}
	u := math.Sqrt(u1sq - 4)
	theta := math.Atan2(2, u)
	t := mod2pi(t1 + theta)
	if t < -1e-9 {
		return false, 0, 0, 0
	}
	v := mod2pi(t - phi)
	if v < -1e-9 {
		return false, 0, 0, 0
	}
	return true, t, u, v
}

// leftRightLeft solves the L-R-L family.
func leftRightLeft(x, y, phi float64) (bool, float64, float64, float64) {
	xi := x - math.Sin(phi)
	eta := y - 1 + math.Cos(phi)
	u1, theta := polar(xi, eta)
	if u1 > 4 {
		return false, 0, 0, 0
	}
	a := math.Acos(0.25 * u1)
	t := mod2pi(theta + math.Pi/2 + a)
	u := mod2pi(math.Pi - 2*a)
	v := mod2pi(phi - t - u)
	if t < -1e-9 || u < -1e-9 {
		return false, 0, 0, 0
	}
	return true, t, u, v
}

type family struct {
	solve          word
	letters        [3]Letter
	reflectLetters [3]Letter
	signs          [3]float64 // travel direction of each segment (+1 forward, -1 reverse)
}

var families = []family{
	{solve: leftStraightLeft, letters: [3]Letter{Left, Straight, Left}, reflectLetters: [3]Letter{Right, Straight, Right}, signs: [3]float64{1, 1, 1}},
	{solve: leftStraightRight, letters: [3]Letter{Left, Straight, Right}, reflectLetters: [3]Letter{Right, Straight, Left}, signs: [3]float64{1, 1, 1}},
	// L-R-L is the C|C|C word: its middle arc is driven in reverse.
	{solve: leftRightLeft, letters: [3]Letter{Left, Right, Left}, reflectLetters: [3]Letter{Right, Left, Right}, signs: [3]float64{1, -1, 1}},
}

// AllPaths enumerates every Reeds-Shepp word-type candidate from src to dst
// at the given minimum turning radius, returning them sorted by ascending
// total length. Candidates that fail to close within closeTolerance (scaled
// by rMin) after forward simulation are dropped rather than returned, since
// a non-closing candidate would otherwise silently corrupt both the
// heuristic (as an inadmissible underestimate) and the analytic-expansion
// acceptance check (C6).
func AllPaths(src, dst geom2d.TractorPose, rMin float64) []Path {
	if rMin <= 0 {
		return nil
	}
	// Express dst in src's frame, normalized by rMin.
	dx := dst.Point.X - src.Point.X
	dy := dst.Point.Y - src.Point.Y
	c, s := math.Cos(-src.Yaw), math.Sin(-src.Yaw)
	lx := (dx*c - dy*s) / rMin
	ly := (dx*s + dy*c) / rMin
	phi := geom2d.AngleDiff(dst.Yaw, src.Yaw)

	var out []Path
	localSrc := geom2d.TractorPose{}

	addIfValid := func(letters [3]Letter, t, u, v float64, signs [3]float64) {
		segs := [3]Segment{
			{Curve: letters[0], Length: signs[0] * t * rMin},
			{Curve: letters[1], Length: signs[1] * u * rMin},
			{Curve: letters[2], Length: signs[2] * v * rMin},
		}
		p := Path{Segments: segs[:], TotalLen: math.Abs(segs[0].Length) + math.Abs(segs[1].Length) + math.Abs(segs[2].Length)}
		end := p.Endpoint(localSrc, rMin)
		if math.Hypot(end.Point.X-lx*rMin, end.Point.Y-ly*rMin) > closeTolerance*rMin+1e-6 {
			return
		}
		if math.Abs(geom2d.AngleDiff(end.Yaw, phi)) > 1e-4 {
			return
		}
		out = append(out, p)
	}

	for _, fam := range families {
		forward := fam.signs
		flipped := [3]float64{-forward[0], -forward[1], -forward[2]}
		if ok, t, u, v := fam.solve(lx, ly, phi); ok {
			addIfValid(fam.letters, t, u, v, forward)
		}
		if ok, t, u, v := fam.solve(-lx, ly, -phi); ok {
			addIfValid(fam.letters, t, u, v, flipped)
		}
		if ok, t, u, v := fam.solve(lx, -ly, -phi); ok {
			addIfValid(fam.reflectLetters, t, u, v, forward)
		}
		if ok, t, u, v := fam.solve(-lx, -ly, phi); ok {
			addIfValid(fam.reflectLetters, t, u, v, flipped)
		}
	}

	// Direct-line case: dst lies exactly ahead (or behind) of src along its
	// current heading. The families above return this as a three-segment
	// word with zero-length curves; it is also added here as a single
	// straight segment.
	if math.Abs(ly) < 1e-9 && math.Abs(phi) < 1e-9 {
		out = append(out, Path{
			Segments: []Segment{{Curve: Straight, Length: lx * rMin}},
			TotalLen: math.Abs(lx * rMin),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].TotalLen < out[j].TotalLen })
	return out
}
