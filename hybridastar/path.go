package hybridastar

import "github.com/viam-labs/trailerplan/geom2d"

// Reconstruct back-traces Result's terminal node through its parent chain
// in closed, stitching each node's arriving-edge samples together with the
// final analytic-connection segment, dropping the duplicated seam pose at
// each join (C8). The returned slice is monotone in time and owns its own
// copies of every sample.
func Reconstruct(res *Result) ([]geom2d.Pose, error) {
	var chain []*node
	cur := res.terminal
	for {
		chain = append(chain, cur)
		if !cur.hasParent {
			break
		}
		parent, ok := res.closed[cur.parent]
		if !ok {
			return nil, newInternalInvariantErr("parent key missing from closed set during reconstruction")
		}
		cur = parent
	}
	// chain is terminal-to-root; reverse it to root-to-terminal.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	var out []geom2d.Pose
	for i, n := range chain {
		samples := n.samples
		if i > 0 {
			// Drop the duplicated seam pose: samples[0] of this edge equals
			// the previous node's own pose, already the last element of out.
			samples = samples[1:]
		}
		out = append(out, samples...)
	}

	if res.closing != nil {
		closing := res.closing.samples
		if len(closing) == 0 {
			return nil, newInternalInvariantErr("analytic closing segment has no samples")
		}
		out = append(out, closing[1:]...)
	}

	if len(out) == 0 {
		return nil, newInternalInvariantErr("reconstructed path has zero samples")
	}
	return out, nil
}
