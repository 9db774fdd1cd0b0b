// Package heuristic precomputes a 2D holonomic cost-to-go grid from the goal
// cell over an obstacle-inflated occupancy grid, via Dijkstra with a
// container/heap min-priority queue and lazy invalidation — the same
// lazy-decrease-key discipline this codebase's other shortest-path solvers
// use instead of a full decrease-key heap.
package heuristic

import (
	"container/heap"
	"math"

	"github.com/golang/geo/r2"

	"github.com/viam-labs/trailerplan/kdtree"
)

// Grid is a precomputed cost-to-go field over a bounding box of the
// workspace, indexed by (ix, iy) grid cell. Unreachable cells store +Inf.
type Grid struct {
	resolution   float64
	minX, minY   int // grid index of the box's lower-left corner
	width, height int
	cost         []float64 // row-major, width*height
}

// Params controls the occupancy-grid construction: resolution (XYR),
// vehicle radius (VR) used to inflate obstacles, and a margin (meters)
// added around the obstacle bounding box so the goal/start area is always
// covered even with sparse obstacles.
type Params struct {
	Resolution    float64
	VehicleRadius float64
	Margin        float64
}

func floorDiv(v, res float64) int {
	return int(math.Floor(v / res))
}

// Build constructs the holonomic cost-to-go grid for the given goal point,
// static obstacle index, and a bounding box covering at least [minX,maxX] x
// [minY,maxY] (typically the start/goal/obstacle bounding box) expanded by
// Params.Margin.
func Build(goal r2.Point, obstacles *kdtree.Tree, minX, maxX, minY, maxY float64, params Params) *Grid {
	minX -= params.Margin
	maxX += params.Margin
	minY -= params.Margin
	maxY += params.Margin

	ixMin := floorDiv(minX, params.Resolution)
	ixMax := floorDiv(maxX, params.Resolution)
	iyMin := floorDiv(minY, params.Resolution)
	iyMax := floorDiv(maxY, params.Resolution)

	g := &Grid{
		resolution: params.Resolution,
		minX:       ixMin,
		minY:       iyMin,
		width:      ixMax - ixMin + 1,
		height:     iyMax - iyMin + 1,
	}
	g.cost = make([]float64, g.width*g.height)
	occupied := make([]bool, g.width*g.height)
	for i := range g.cost {
		g.cost[i] = math.Inf(1)
	}

	if obstacles != nil {
		for idx := 0; idx < g.width*g.height; idx++ {
			ix, iy := idx%g.width, idx/g.width
			cx := float64(ix+g.minX)*params.Resolution + params.Resolution/2
			cy := float64(iy+g.minY)*params.Resolution + params.Resolution/2
			if len(obstacles.RadiusNearestNeighbors(r2.Point{X: cx, Y: cy}, params.VehicleRadius, true)) > 0 {
				occupied[idx] = true
			}
		}
	}

	dijkstra(g, occupied, goal)
	return g
}

// index returns the flattened index of (ix,iy) and whether it lies within
// the grid's bounds.
func (g *Grid) index(ix, iy int) (int, bool) {
	lx := ix - g.minX
	ly := iy - g.minY
	if lx < 0 || lx >= g.width || ly < 0 || ly >= g.height {
		return 0, false
	}
	return ly*g.width + lx, true
}

// Cost returns the precomputed holonomic cost-to-go for grid cell (ix,iy).
// Cells outside the grid's bounding box, or unreachable from the goal under
// the inflated occupancy map, report +Inf.
func (g *Grid) Cost(ix, iy int) float64 {
	idx, ok := g.index(ix, iy)
	if !ok {
		return math.Inf(1)
	}
	return g.cost[idx]
}

// CostAt converts a continuous (x,y) to a grid cell via the same floor
// division the rest of this module uses for node keys, and returns its cost.
func (g *Grid) CostAt(x, y float64) float64 {
	return g.Cost(floorDiv(x, g.resolution), floorDiv(y, g.resolution))
}

type pqItem struct {
	idx  int
	dist float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

var neighborOffsets = [8][3]float64{
	{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
	{1, 1, math.Sqrt2}, {1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2},
}

// dijkstra runs 8-connected Dijkstra from the goal cell over g, skipping
// occupied cells, using a binary heap with lazy invalidation: a cell popped
// with a stale (larger) distance than its current best is simply skipped.
func dijkstra(g *Grid, occupied []bool, goal r2.Point) {
	goalIdx, ok := g.index(floorDiv(goal.X, g.resolution), floorDiv(goal.Y, g.resolution))
	if !ok || occupied[goalIdx] {
		return
	}
	g.cost[goalIdx] = 0
	pq := &priorityQueue{{idx: goalIdx, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		if cur.dist > g.cost[cur.idx] {
			continue // stale entry
		}
		ix := cur.idx%g.width + g.minX
		iy := cur.idx/g.width + g.minY
		for _, off := range neighborOffsets {
			nix, niy := ix+int(off[0]), iy+int(off[1])
			nidx, ok := g.index(nix, niy)
			if !ok || occupied[nidx] {
				continue
			}
			nd := cur.dist + off[2]
			if nd < g.cost[nidx] {
				g.cost[nidx] = nd
				heap.Push(pq, pqItem{idx: nidx, dist: nd})
			}
		}
	}
}
