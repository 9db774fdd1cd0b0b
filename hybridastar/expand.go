package hybridastar

import (
	"math"

	"github.com/viam-labs/trailerplan/geom2d"
	"github.com/viam-labs/trailerplan/kinematic"
)

// edgeCost computes the cost of one motion-primitive edge per
// SPEC_FULL.md §4.2: arc length plus steering-jitter, steering-magnitude,
// reverse-travel, direction-switch, and near-jackknife penalties.
func edgeCost(cfg Config, parentSteer float64, parentBackward, edgeBackward bool, steer float64, samples []geom2d.Pose) float64 {
	arcLen := kinematic.ArcLength(len(samples)-1, cfg.Kinematic)
	cost := arcLen
	cost += cfg.SteerChangeCost * math.Abs(steer-parentSteer)
	cost += cfg.SteerCost * math.Abs(steer)
	if edgeBackward {
		cost += cfg.BackCost * arcLen
	}
	if edgeBackward != parentBackward {
		cost += cfg.SwitchBackCost
	}
	for _, s := range samples {
		cost += cfg.HCost * math.Abs(s.Jackknife())
	}
	return cost
}

// expand produces every accepted successor of parent: one per (steer, dir)
// pair, in the fixed deterministic order given by Config.SteerSamples()
// crossed with {forward, backward}, skipping any whose forward simulation
// collides or whose discrete key collapses back onto the parent's own key.
func (s *Searcher) expand(parent *node) []*node {
	pose := parent.Pose()
	parentBackward := pose.Backward

	var out []*node
	for _, steer := range s.cfg.SteerSamples() {
		for _, forward := range [2]bool{true, false} {
			samples := kinematic.Integrate(pose, steer, forward, s.cfg.NSteps(), s.cfg.Kinematic)
			if !s.checker.CheckPath(samples) {
				continue
			}
			key := KeyOf(samples[len(samples)-1], s.cfg.XYResolution, s.cfg.YawResolution)
			if key == parent.key {
				continue
			}
			cost := edgeCost(s.cfg, parent.steer, parentBackward, !forward, steer, samples)
			out = append(out, &node{
				key:       key,
				samples:   samples,
				steer:     steer,
				g:         parent.g + cost,
				parent:    parent.key,
				hasParent: true,
			})
		}
	}
	return out
}
