package astar

import "container/heap"

// OpenList is the min-priority queue the engine pops from: ordered by
// (cost + lower_bound) ascending, ties broken by SecondaryScore descending,
// per spec §4.3.
type OpenList[ID comparable, C any, E any] interface {
	Push(n Node[ID, C, E])
	// Pop removes and returns the minimum-priority node, or ok=false if empty.
	Pop() (Node[ID, C, E], bool)
	Len() int
	Reset()
}

// BinaryHeap is a standard container/heap-backed open list, the same
// lazy-decrease-key idiom used by package dijkstra's nodePQ: duplicates may
// be pushed for the same identifier, and stale entries are simply skipped
// when popped (the closed-list check in Search.Run handles that).
type BinaryHeap[ID comparable, C Cost[C], E any] struct {
	items binaryHeapItems[ID, C, E]
}

// NewBinaryHeap constructs an empty BinaryHeap open list.
func NewBinaryHeap[ID comparable, C Cost[C], E any]() *BinaryHeap[ID, C, E] {
	h := &BinaryHeap[ID, C, E]{}
	heap.Init(&h.items)

	return h
}

func (h *BinaryHeap[ID, C, E]) Push(n Node[ID, C, E]) {
	heap.Push(&h.items, n)
}

func (h *BinaryHeap[ID, C, E]) Pop() (Node[ID, C, E], bool) {
	if h.items.Len() == 0 {
		return nil, false
	}

	return heap.Pop(&h.items).(Node[ID, C, E]), true
}

func (h *BinaryHeap[ID, C, E]) Len() int { return h.items.Len() }

func (h *BinaryHeap[ID, C, E]) Reset() {
	h.items = h.items[:0]
}

// binaryHeapItems implements container/heap.Interface, ordered by
// priority = cost + lower_bound ascending, then SecondaryScore descending.
type binaryHeapItems[ID comparable, C Cost[C], E any] []Node[ID, C, E]

func (h binaryHeapItems[ID, C, E]) Len() int { return len(h) }

func (h binaryHeapItems[ID, C, E]) Less(i, j int) bool {
	pi := priority[ID, C, E](h[i])
	pj := priority[ID, C, E](h[j])
	if pi.Less(pj) {
		return true
	}
	if pj.Less(pi) {
		return false
	}

	return h[i].SecondaryScore() > h[j].SecondaryScore()
}

func (h binaryHeapItems[ID, C, E]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *binaryHeapItems[ID, C, E]) Push(x interface{}) {
	*h = append(*h, x.(Node[ID, C, E]))
}

func (h *binaryHeapItems[ID, C, E]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
