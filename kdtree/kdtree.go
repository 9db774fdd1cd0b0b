// Package kdtree implements a static 2D k-d tree over point obstacles,
// mirroring the NearestNeighbor/KNearestNeighbors/RadiusNearestNeighbors
// contract this codebase's pointcloud package exposes for 3D point clouds,
// specialized to the planar r2.Point the rest of this module works in.
package kdtree

import (
	"container/heap"
	"math"
	"sort"

	"github.com/golang/geo/r2"
)

// Tree is an immutable k-d tree over a fixed set of 2D points. It is built
// once per plan and never mutated afterward.
type Tree struct {
	root  *node
	count int
}

type node struct {
	point       r2.Point
	axis        int // 0 = split on X, 1 = split on Y
	left, right *node
}

// New builds a balanced k-d tree over points. An empty points slice is
// legal and yields a Tree that reports no neighbors for any query.
func New(points []r2.Point) *Tree {
	pts := make([]r2.Point, len(points))
	copy(pts, points)
	return &Tree{root: build(pts, 0), count: len(pts)}
}

// Len returns the number of points in the tree.
func (t *Tree) Len() int { return t.count }

func build(pts []r2.Point, depth int) *node {
	if len(pts) == 0 {
		return nil
	}
	axis := depth % 2
	sort.Slice(pts, func(i, j int) bool {
		if axis == 0 {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	mid := len(pts) / 2
	n := &node{point: pts[mid], axis: axis}
	n.left = build(pts[:mid], depth+1)
	if mid+1 < len(pts) {
		n.right = build(pts[mid+1:], depth+1)
	}
	return n
}

func sqDist(a, b r2.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func axisValue(p r2.Point, axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// NearestNeighbor returns the closest point to query, its distance, and
// whether the tree is non-empty.
func (t *Tree) NearestNeighbor(query r2.Point) (r2.Point, float64, bool) {
	if t.root == nil {
		return r2.Point{}, 0, false
	}
	best := t.root
	bestSq := sqDist(query, t.root.point)
	searchNearest(t.root, query, &best, &bestSq)
	return best.point, math.Sqrt(bestSq), true
}

func searchNearest(n *node, query r2.Point, best **node, bestSq *float64) {
	if n == nil {
		return
	}
	d := sqDist(query, n.point)
	if d < *bestSq {
		*bestSq = d
		*best = n
	}

	diff := axisValue(query, n.axis) - axisValue(n.point, n.axis)
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	searchNearest(near, query, best, bestSq)
	if diff*diff < *bestSq {
		searchNearest(far, query, best, bestSq)
	}
}

// Neighbor pairs a point with its distance from a query, the shape returned
// by both KNearestNeighbors and RadiusNearestNeighbors.
type Neighbor struct {
	P    r2.Point
	Dist float64
}

// kNNItem is one candidate held in the bounded max-heap a KNearestNeighbors
// search maintains: the heap's root is always the current k-th best (i.e.
// worst-of-the-best) candidate, so a new point need only be compared against
// it to decide whether it displaces anything.
type kNNItem struct {
	point  r2.Point
	sqDist float64
}

type kNNHeap []kNNItem

func (h kNNHeap) Len() int            { return len(h) }
func (h kNNHeap) Less(i, j int) bool  { return h[i].sqDist > h[j].sqDist } // max-heap
func (h kNNHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *kNNHeap) Push(x interface{}) { *h = append(*h, x.(kNNItem)) }
func (h *kNNHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// KNearestNeighbors returns up to k points nearest to query, sorted by
// ascending distance. If includeSelf is false, any point exactly equal to
// query is excluded (used when querying a tree built from the same cloud
// the query point came from). The search prunes subtrees whose splitting
// plane already lies farther than the current k-th best candidate, the same
// near/far discipline NearestNeighbor uses, generalized to k candidates via
// a bounded max-heap instead of a single best-so-far.
func (t *Tree) KNearestNeighbors(query r2.Point, k int, includeSelf bool) []Neighbor {
	if k <= 0 {
		return nil
	}
	h := &kNNHeap{}
	searchKNN(t.root, query, k, includeSelf, h)

	out := make([]Neighbor, len(*h))
	for i, item := range *h {
		out[i] = Neighbor{P: item.point, Dist: math.Sqrt(item.sqDist)}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Dist < out[j].Dist })
	return out
}

func searchKNN(n *node, query r2.Point, k int, includeSelf bool, h *kNNHeap) {
	if n == nil {
		return
	}
	if includeSelf || n.point != query {
		d := sqDist(query, n.point)
		if h.Len() < k {
			heap.Push(h, kNNItem{point: n.point, sqDist: d})
		} else if d < (*h)[0].sqDist {
			heap.Pop(h)
			heap.Push(h, kNNItem{point: n.point, sqDist: d})
		}
	}

	diff := axisValue(query, n.axis) - axisValue(n.point, n.axis)
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	searchKNN(near, query, k, includeSelf, h)
	if h.Len() < k || diff*diff < (*h)[0].sqDist {
		searchKNN(far, query, k, includeSelf, h)
	}
}

// RadiusNearestNeighbors returns every point within radius (inclusive) of
// query, sorted by ascending distance. This is the query C1 uses to find
// candidate obstacles around a vehicle body, and the query C4 uses to test
// occupancy-grid cells against the obstacle set — both hot paths, so the
// search prunes any subtree whose splitting plane already lies farther than
// radius from query on that axis, rather than visiting every node.
func (t *Tree) RadiusNearestNeighbors(query r2.Point, radius float64, includeSelf bool) []Neighbor {
	var out []Neighbor
	searchRadius(t.root, query, radius, includeSelf, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Dist < out[j].Dist })
	return out
}

func searchRadius(n *node, query r2.Point, radius float64, includeSelf bool, out *[]Neighbor) {
	if n == nil {
		return
	}
	if includeSelf || n.point != query {
		d := sqDist(query, n.point)
		if d <= radius*radius {
			*out = append(*out, Neighbor{P: n.point, Dist: math.Sqrt(d)})
		}
	}

	// Left subtree holds axis values <= n.point's; right subtree holds
	// axis values >= n.point's (see build's sort-and-split). A subtree is
	// only worth visiting if some point on its side of the splitting plane
	// could still fall within radius of query.
	diff := axisValue(query, n.axis) - axisValue(n.point, n.axis)
	if diff <= radius {
		searchRadius(n.left, query, radius, includeSelf, out)
	}
	if diff >= -radius {
		searchRadius(n.right, query, radius, includeSelf, out)
	}
}
