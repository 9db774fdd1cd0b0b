package hybridastar

import "container/heap"

// queueEntry is one priority-queue slot: a node key and the f/h/g it was
// pushed with. The open map (openSet) holds the authoritative current g for
// a key; an entry popped from the queue whose g no longer matches the open
// map's current g for that key is stale and is skipped (lazy deletion),
// exactly as this module's heuristic grid's own Dijkstra implementation
// discards stale heap entries rather than maintaining a decrease-key heap.
type queueEntry struct {
	key Key
	f   float64
	h   float64
	g   float64
}

type priorityQueue []queueEntry

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	// Tie-break on equal f: prefer the smaller h (goal-preferring), per
	// SPEC_FULL.md §4.7.
	return pq[i].h < pq[j].h
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(queueEntry))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// openSet tracks the best known node per key, so a pop can recognize a
// stale entry: one whose g no longer matches the g of the node recorded
// here because a cheaper path to the same key was found after the entry was
// pushed.
type openSet struct {
	nodes map[Key]*node
	pq    priorityQueue
}

func newOpenSet() *openSet {
	os := &openSet{nodes: map[Key]*node{}}
	heap.Init(&os.pq)
	return os
}

func (os *openSet) insert(n *node, f, h float64) {
	os.nodes[n.key] = n
	heap.Push(&os.pq, queueEntry{key: n.key, f: f, h: h, g: n.g})
}

func (os *openSet) get(k Key) (*node, bool) {
	n, ok := os.nodes[k]
	return n, ok
}

// popBest pops entries until it finds one whose key is still present in the
// open map (entries for keys already closed, or superseded by a cheaper
// reinsertion, are silently discarded). Returns false once the queue is
// exhausted.
func (os *openSet) popBest(closed map[Key]*node) (*node, bool) {
	for os.pq.Len() > 0 {
		entry := heap.Pop(&os.pq).(queueEntry)
		n, ok := os.nodes[entry.key]
		if !ok {
			continue // superseded/removed
		}
		if n.g != entry.g {
			continue // stale: pushed for a node since replaced by a cheaper one
		}
		if _, isClosed := closed[entry.key]; isClosed {
			continue
		}
		delete(os.nodes, entry.key)
		return n, true
	}
	return nil, false
}
