package search

// AStarEngine is the heuristic (A*-style) variant of the engine: open nodes
// are ranked by f = g + h, tie-broken per Options.TieBreak (spec §4.1/§4.5,
// low-h by default). Consuming a
// goal shrinks the remaining goal set and forces every still-open node's h
// to be recomputed against it, since an admissible heuristic to a smaller
// goal set can only grow, never shrink.
type AStarEngine[S State, A Action] struct {
	space     Space[S, A]
	heuristic Heuristic[S]
	arena     *arena[S, A]
	dir       *directory[S]
	open      *intrusiveHeap[heuristicRank]
	goals     *goalSet[S]
	opts      Options

	expanded int
}

// NewAStarEngine constructs a heuristic search over sp from starts to goals
// using h. h must be admissible and consistent with respect to sp (spec
// §4.1); the engine does not and cannot verify this.
func NewAStarEngine[S State, A Action](sp Space[S, A], h Heuristic[S], starts, goals []S, opts ...Option) (*AStarEngine[S, A], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if len(starts) == 0 {
		return nil, ErrNoStarts
	}

	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	e := &AStarEngine[S, A]{
		space:     sp,
		heuristic: h,
		arena:     newArena[S, A](cfg.CapacityHint),
		dir:       newDirectory[S](cfg.CapacityHint),
		opts:      cfg,
		goals:     newGoalSet[S](goals),
	}
	e.open = newIntrusiveHeap[heuristicRank](cfg.CapacityHint, lessHeuristic(cfg.TieBreak), e.setHeapPos)

	for _, s := range starts {
		if _, exists := e.dir.lookup(s); exists {
			continue
		}
		hv := e.goals.minH(e.heuristic, s)
		id := e.arena.alloc(searchNode[S, A]{state: s, g: ZeroCost, h: hv, parent: noParent})
		e.dir.insert(s, id)
		e.open.push(newHeuristicRank(ZeroCost, hv), id)
	}

	e.verifyInvariant()

	return e, nil
}

func (e *AStarEngine[S, A]) setHeapPos(id nodeID, pos int) {
	e.arena.get(id).heapPos = pos
}

// FindNextGoal pops and expands nodes in increasing f order until a goal is
// popped or the frontier is exhausted.
func (e *AStarEngine[S, A]) FindNextGoal() (Path[S, A], bool) {
	for {
		if e.goals.len() == 0 {
			return Path[S, A]{}, false
		}

		_, id, ok := e.open.pop()
		if !ok {
			return Path[S, A]{}, false
		}

		n := e.arena.get(id)
		n.closed = true
		state, g := n.state, n.g
		e.expanded++

		for _, t := range e.space.Neighbours(state) {
			e.relax(id, state, g, t)
		}

		if e.goals.contains(state) {
			e.maintainGoalSet(state)
			p := buildPath(e.space, e.arena, id, e.opts.Verify)
			e.verifyInvariant()

			return p, true
		}
	}
}

func (e *AStarEngine[S, A]) relax(parentID nodeID, parentState S, parentG Cost, t Transition[S, A]) {
	c := e.space.Cost(parentState, t.Action)
	newG := SaturatingAdd(parentG, c)

	if id, exists := e.dir.lookup(t.State); exists {
		m := e.arena.get(id)
		if m.closed || m.dropped {
			return
		}
		if newG < m.g {
			m.g = newG
			m.parent = parentID
			m.via = t.Action
			pos := m.heapPos
			newRank := e.open.rankAt(pos).improveG(newG)
			e.open.setRank(pos, newRank)
			e.open.decreaseKey(pos)
		}

		return
	}

	h := e.goals.minH(e.heuristic, t.State)
	newID := e.arena.alloc(searchNode[S, A]{state: t.State, g: newG, h: h, parent: parentID, via: t.Action})
	e.dir.insert(t.State, newID)
	e.open.push(newHeuristicRank(newG, h), newID)
}

// maintainGoalSet removes consumed from the remaining goal set and then
// walks every still-open node, recomputing its heuristic against the
// shrunken set. A node whose heuristic becomes MaxCost (unreachable to any
// remaining goal) is dropped from the open list per Options.DropPolicy: by
// default (DropPolicyLeafOnly) only if it is currently a heap leaf, mirroring
// the reference implementation's eviction exactly — pruning an interior node
// would require an O(subtree) fixup, while a leaf costs one swap-remove, so
// an interior node is instead left in place with its now-worst possible
// rank, to be dropped once later maintenance passes or ordinary pops turn it
// into a leaf. DropPolicyCompact instead evicts it immediately regardless of
// position.
func (e *AStarEngine[S, A]) maintainGoalSet(consumed S) {
	e.goals.remove(consumed)

	for i := 0; i < e.arena.len(); i++ {
		n := e.arena.get(nodeID(i))
		if n.closed || n.dropped {
			continue
		}

		newH := e.goals.minH(e.heuristic, n.state)
		oldRank := newHeuristicRank(n.g, n.h)
		if newRank, changed := oldRank.worsenH(newH); changed {
			n.h = newH
			e.open.setRank(n.heapPos, newRank)
			e.open.increaseKey(n.heapPos)
		}

		if newH < MaxCost {
			continue
		}
		isLeaf := heapFirstChild(n.heapPos) >= e.open.Len()
		if e.opts.DropPolicy == DropPolicyCompact || isLeaf {
			n.dropped = true
			e.open.removeAt(n.heapPos)
		}
	}
}

// Stats reports the current node/open-list/directory footprint and the
// number of nodes expanded so far.
func (e *AStarEngine[S, A]) Stats() EngineStats {
	return EngineStats{
		NodeCount:     e.arena.len(),
		OpenLen:       e.open.Len(),
		DirectorySize: e.dir.len(),
		ExpandedCount: e.expanded,
	}
}

func (e *AStarEngine[S, A]) verifyInvariant() {
	if !e.opts.Verify {
		return
	}
	if !e.open.verify() {
		panic("search: heap invariant violated")
	}
	if e.dir.len() != e.arena.len() {
		panic("search: directory size diverged from arena size")
	}
	closed, dropped := 0, 0
	for i := 0; i < e.arena.len(); i++ {
		n := e.arena.get(nodeID(i))
		if n.closed {
			closed++
		}
		if n.dropped {
			dropped++
		}
	}
	if e.open.Len() != e.arena.len()-closed-dropped {
		panic("search: open-list size diverged from node count minus closed and dropped")
	}
}
