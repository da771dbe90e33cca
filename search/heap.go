package search

// heapArity is the branching factor of the open list. An entire sibling
// group (up to 8 ranks) fits within one or two cache lines, making sibling
// scans close to free while keeping the tree shallow — see spec §4.2.
const heapArity = 8

func heapParent(i int) int     { return (i - 1) / heapArity }
func heapFirstChild(i int) int { return heapArity*i + 1 }

// heapEntry is one slot of the open list: a rank plus the arena id of the
// node it belongs to.
type heapEntry[R any] struct {
	rank R
	id   nodeID
}

// intrusiveHeap is an 8-ary min-heap of ranking records. It is "intrusive"
// in the sense described by spec §4.2/§9: every time an entry moves, the
// heap calls back into setPos so the owning search node can be found at its
// current heap index in O(1), which is what makes decrease-key cheap.
type intrusiveHeap[R any] struct {
	items  []heapEntry[R]
	less   func(a, b R) bool
	setPos func(id nodeID, pos int)
}

func newIntrusiveHeap[R any](capHint int, less func(a, b R) bool, setPos func(nodeID, int)) *intrusiveHeap[R] {
	return &intrusiveHeap[R]{
		items:  make([]heapEntry[R], 0, capHint),
		less:   less,
		setPos: setPos,
	}
}

func (h *intrusiveHeap[R]) Len() int { return len(h.items) }

func (h *intrusiveHeap[R]) rankAt(pos int) R { return h.items[pos].rank }

func (h *intrusiveHeap[R]) idAt(pos int) nodeID { return h.items[pos].id }

// setRank overwrites the rank at pos without touching the heap shape. The
// caller (decreaseKey or increaseKey) must restore the heap property
// immediately after.
func (h *intrusiveHeap[R]) setRank(pos int, r R) {
	h.items[pos].rank = r
}

// push appends a new entry and sifts it up. Returns its resting heap index.
func (h *intrusiveHeap[R]) push(rank R, id nodeID) int {
	idx := len(h.items)
	h.items = append(h.items, heapEntry[R]{rank: rank, id: id})
	h.setPos(id, idx)

	return h.siftUp(idx)
}

// decreaseKey restores the heap property after the rank at pos has been
// improved (made smaller) in place via setRank.
func (h *intrusiveHeap[R]) decreaseKey(pos int) int {
	return h.siftUp(pos)
}

// increaseKey restores the heap property after the rank at pos has been
// worsened (made larger) in place via setRank.
func (h *intrusiveHeap[R]) increaseKey(pos int) int {
	return h.siftDown(pos)
}

func (h *intrusiveHeap[R]) siftUp(index int) int {
	pos := index
	for pos > 0 {
		parent := heapParent(pos)
		if !h.less(h.items[pos].rank, h.items[parent].rank) {
			break
		}
		h.swap(parent, pos)
		pos = parent
	}

	return pos
}

func (h *intrusiveHeap[R]) siftDown(index int) int {
	pos := index
	for {
		child, ok := h.bestChild(pos)
		if !ok || !h.less(h.items[child].rank, h.items[pos].rank) {
			break
		}
		h.swap(pos, child)
		pos = child
	}

	return pos
}

// bestChild returns the index of the smallest-ranked child of i, using the
// fixed tournament reduction in derank.go over the (up to heapArity) live
// siblings.
func (h *intrusiveHeap[R]) bestChild(i int) (int, bool) {
	first := heapFirstChild(i)
	if first >= len(h.items) {
		return 0, false
	}
	last := first + heapArity - 1
	if last >= len(h.items) {
		last = len(h.items) - 1
	}
	n := last - first + 1
	offset := derank(func(a, b int) bool {
		return h.less(h.items[first+a].rank, h.items[first+b].rank)
	}, n)

	return first + offset, true
}

// swap is a full swap: both endpoints' positions are kept in sync.
func (h *intrusiveHeap[R]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.setPos(h.items[i].id, i)
	h.setPos(h.items[j].id, j)
}

// halfSwapDown swaps l and r (l closer to the root) but only updates l's
// position. r is about to be overwritten again as the hole continues to
// bubble down (or discarded entirely at the end of pop), so tracking its
// stale index would be wasted work.
func (h *intrusiveHeap[R]) halfSwapDown(l, r int) {
	h.items[l], h.items[r] = h.items[r], h.items[l]
	h.setPos(h.items[l].id, l)
}

// pop removes and returns the minimum entry. For heaps of size ≥2 it uses
// the hole-bubble variant from spec §4.2: a conceptual hole at the root is
// repeatedly swapped down with its best child (a half-swap, touching only
// the rising child's index) until it reaches a leaf, then swapped with the
// last physical entry and sifted back up — one index update per level on
// the hot path instead of two.
func (h *intrusiveHeap[R]) pop() (R, nodeID, bool) {
	n := len(h.items)
	if n == 0 {
		var zero R
		return zero, 0, false
	}
	if n == 1 {
		e := h.items[0]
		h.items = h.items[:0]

		return e.rank, e.id, true
	}

	last := n - 1
	hole := 0
	for {
		child, ok := h.bestChild(hole)
		if !ok {
			break
		}
		h.halfSwapDown(hole, child)
		hole = child
	}
	if hole != last {
		h.halfSwapDown(hole, last)
		h.siftUp(hole)
	}

	e := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]

	return e.rank, e.id, true
}

// removeAt drops the entry at pos via swap-remove and restores the heap
// property around the slot that inherited the last entry's value (if any).
// Used by goal-set maintenance to drop nodes whose heuristic proves them
// unreachable.
func (h *intrusiveHeap[R]) removeAt(pos int) {
	last := len(h.items) - 1
	if pos != last {
		h.items[pos] = h.items[last]
		h.setPos(h.items[pos].id, pos)
	}
	h.items = h.items[:last]
	if pos < len(h.items) {
		if moved := h.siftUp(pos); moved == pos {
			h.siftDown(pos)
		}
	}
}

// verify checks heap invariant I2 (every parent ranks no worse than its
// children). It is O(n) and is only ever called when an Engine is built
// WithVerify, matching the debug-build assertions in spec §4.2/§7.
func (h *intrusiveHeap[R]) verify() bool {
	for i := 1; i < len(h.items); i++ {
		p := heapParent(i)
		if h.less(h.items[i].rank, h.items[p].rank) {
			return false
		}
	}

	return true
}
