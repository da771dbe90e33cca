package search

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// posTracker mimics the arena's heapPos bookkeeping for a heap of plain ints
// keyed by their own value, without needing a full arena/searchNode.
type posTracker struct {
	pos map[nodeID]int
}

func newPosTracker() *posTracker { return &posTracker{pos: make(map[nodeID]int)} }

func (t *posTracker) set(id nodeID, pos int) { t.pos[id] = pos }

func TestIntrusiveHeap_PushPopSortedOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := newPosTracker()
	h := newIntrusiveHeap[uniformRank](0, lessUniform, tr.set)

	const n = 500
	values := make([]Cost, n)
	for i := 0; i < n; i++ {
		values[i] = Cost(rng.Intn(1000))
		h.push(newUniformRank(values[i]), nodeID(i))
	}
	require.True(t, h.verify())

	sorted := append([]Cost(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	got := make([]Cost, 0, n)
	for h.Len() > 0 {
		rank, _, ok := h.pop()
		require.True(t, ok)
		got = append(got, rank.g)
	}
	assert.Equal(t, sorted, got)
}

func TestIntrusiveHeap_DecreaseKey(t *testing.T) {
	tr := newPosTracker()
	h := newIntrusiveHeap[uniformRank](0, lessUniform, tr.set)

	ids := []nodeID{0, 1, 2, 3, 4}
	for i, id := range ids {
		h.push(newUniformRank(Cost(100+i)), id)
	}
	// Lower node 4's rank below everything else and confirm it pops first.
	pos := tr.pos[4]
	h.setRank(pos, newUniformRank(0))
	h.decreaseKey(pos)
	require.True(t, h.verify())

	_, id, ok := h.pop()
	require.True(t, ok)
	assert.Equal(t, nodeID(4), id)
}

func TestIntrusiveHeap_IncreaseKey(t *testing.T) {
	tr := newPosTracker()
	h := newIntrusiveHeap[uniformRank](0, lessUniform, tr.set)

	for i := 0; i < 10; i++ {
		h.push(newUniformRank(Cost(i)), nodeID(i))
	}
	pos := tr.pos[0]
	h.setRank(pos, newUniformRank(1000))
	h.increaseKey(pos)
	require.True(t, h.verify())

	_, id, ok := h.pop()
	require.True(t, ok)
	assert.Equal(t, nodeID(1), id)
}

func TestIntrusiveHeap_RemoveAt(t *testing.T) {
	tr := newPosTracker()
	h := newIntrusiveHeap[uniformRank](0, lessUniform, tr.set)

	for i := 0; i < 20; i++ {
		h.push(newUniformRank(Cost(i)), nodeID(i))
	}
	h.removeAt(tr.pos[5])
	require.True(t, h.verify())
	assert.Equal(t, 19, h.Len())

	seen := make(map[nodeID]bool)
	for h.Len() > 0 {
		_, id, _ := h.pop()
		seen[id] = true
	}
	assert.False(t, seen[5])
	assert.Equal(t, 19, len(seen))
}

func TestIntrusiveHeap_EmptyPop(t *testing.T) {
	tr := newPosTracker()
	h := newIntrusiveHeap[uniformRank](0, lessUniform, tr.set)
	_, _, ok := h.pop()
	assert.False(t, ok)
}
