package search

// derank returns the index of the smallest-ranked element in a slice of up to
// heapArity siblings, via a fixed tournament reduction hand-specialised for
// each arity from 1 to 8. Ties pick the lowest offset (stable), matching the
// reference implementation this engine's heap is ported from.
//
// The tournament shape doesn't matter for correctness — a linear scan would
// return the same index — but it keeps sibling comparisons branch-predictable
// and is cheap to read off in pairs, which is the point of an 8-ary heap in
// the first place.
func derank(less func(i, j int) bool, n int) int {
	fight := func(l, r int) int {
		if !less(r, l) {
			return l
		}

		return r
	}

	switch n {
	case 1:
		return 0
	case 2:
		return fight(0, 1)
	case 3:
		return fight(fight(0, 1), 2)
	case 4:
		return fight(fight(0, 1), fight(2, 3))
	case 5:
		return fight(fight(fight(0, 1), fight(2, 3)), 4)
	case 6:
		return fight(fight(fight(0, 1), fight(2, 3)), fight(4, 5))
	case 7:
		return fight(fight(fight(0, 1), fight(2, 3)), fight(fight(4, 5), 6))
	case 8:
		return fight(fight(fight(0, 1), fight(2, 3)), fight(fight(4, 5), fight(6, 7)))
	default:
		// Only ever called with 1..=heapArity siblings from the heap.
		best := 0
		for i := 1; i < n; i++ {
			if less(i, best) {
				best = i
			}
		}

		return best
	}
}
