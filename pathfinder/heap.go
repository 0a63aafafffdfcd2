package pathfinder

import "github.com/acorn-eda/acorn/geom"

// whichList mirrors spec.md section 4.1's untouched/open/closed tri-state
// per cell.
type whichList uint8

const (
	untouched whichList = iota
	openList
	closedList
)

// node is the per-cell A* bookkeeping record: G-cost, parent link, list
// membership, and sortNumber — the heap index back-reference that lets
// openHeap perform true O(log n) decrease-key instead of the teacher's
// lazy duplicate-push strategy (spec.md section 4.1).
type node struct {
	coord      geom.Coordinate
	g          float64
	f          float64
	parent     geom.Coordinate
	hasParent  bool
	list       whichList
	sortNumber int // index into the openHeap slice; -1 when not in the heap
}

// openHeap is a binary min-heap of *node ordered by F = G + H, exposing
// container/heap's five methods exactly as the teacher's nodePQ does;
// decrease-key is a heap.Fix call at the node's stored sortNumber.
type openHeap []*node

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool { return h[i].f < h[j].f }

func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].sortNumber = i
	h[j].sortNumber = j
}

func (h *openHeap) Push(x interface{}) {
	n := x.(*node)
	n.sortNumber = len(*h)
	*h = append(*h, n)
}

func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.sortNumber = -1
	*h = old[:n-1]

	return item
}
