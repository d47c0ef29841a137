package astar

// UintCost is the additional capability BucketQueue needs beyond Cost: a
// way to read a cost's priority as a small non-negative integer, so it can
// be used as a bucket index. cost.Value[T] implements this via ToUint.
type UintCost[C any] interface {
	Cost[C]
	ToUint() uint64
}

// BucketQueue is the "linear heap" open list described in spec §4.3 and
// §9: a deque of buckets, one per integer priority, plus a running offset.
// Pushing and popping the minimum are amortised O(1) when priorities are
// small non-negative integers, which holds for every admissible A* priority
// in this module (cost tables never exceed a few hundred per base). The
// ring buffer extends on either side as needed: pushing below the current
// minimum prepends a bucket, pushing above the current maximum appends one.
type BucketQueue[ID comparable, C UintCost[C], E any] struct {
	buckets []bucket[ID, C, E]
	offset  uint64 // priority represented by buckets[0]
	size    int
}

type bucket[ID comparable, C any, E any] struct {
	items []Node[ID, C, E]
}

// NewBucketQueue constructs an empty BucketQueue open list.
func NewBucketQueue[ID comparable, C UintCost[C], E any]() *BucketQueue[ID, C, E] {
	return &BucketQueue[ID, C, E]{}
}

func (q *BucketQueue[ID, C, E]) Push(n Node[ID, C, E]) {
	p := priority[ID, C, E](n).ToUint()

	if len(q.buckets) == 0 {
		q.buckets = []bucket[ID, C, E]{{}}
		q.offset = p
	} else if p < q.offset {
		// Extend the front: prepend empty buckets down to p.
		grow := int(q.offset - p)
		front := make([]bucket[ID, C, E], grow)
		q.buckets = append(front, q.buckets...)
		q.offset = p
	} else if idx := p - q.offset; idx >= uint64(len(q.buckets)) {
		// Extend the back up to p.
		grow := int(idx) - len(q.buckets) + 1
		q.buckets = append(q.buckets, make([]bucket[ID, C, E], grow)...)
	}

	idx := p - q.offset
	q.buckets[idx].items = append(q.buckets[idx].items, n)
	q.size++
}

func (q *BucketQueue[ID, C, E]) Pop() (Node[ID, C, E], bool) {
	for len(q.buckets) > 0 {
		front := &q.buckets[0]
		if len(front.items) == 0 {
			q.buckets = q.buckets[1:]
			q.offset++
			continue
		}

		// Among entries in the same priority bucket, prefer the one with
		// the highest secondary score, matching BinaryHeap's tie-break.
		bestIdx := 0
		for i := 1; i < len(front.items); i++ {
			if front.items[i].SecondaryScore() > front.items[bestIdx].SecondaryScore() {
				bestIdx = i
			}
		}
		item := front.items[bestIdx]
		front.items[bestIdx] = front.items[len(front.items)-1]
		front.items = front.items[:len(front.items)-1]
		q.size--

		return item, true
	}

	return nil, false
}

func (q *BucketQueue[ID, C, E]) Len() int { return q.size }

func (q *BucketQueue[ID, C, E]) Reset() {
	q.buckets = q.buckets[:0]
	q.size = 0
	q.offset = 0
}
