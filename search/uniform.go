package search

// UniformEngine is the uniform-cost (Dijkstra-style) variant of the engine:
// open nodes are ranked purely by path cost g. See spec §4.4.
type UniformEngine[S State, A Action] struct {
	space Space[S, A]
	arena *arena[S, A]
	dir   *directory[S]
	open  *intrusiveHeap[uniformRank]
	goals map[S]struct{}
	opts  Options

	expanded int
}

// NewUniformEngine constructs a search over sp from starts to goals. Starts
// are seeded into the arena and heap with g=0 and no parent; duplicate
// starts collapse onto a single node. An empty starts slice is an error; an
// empty goals slice is allowed (the first FindNextGoal call simply returns
// false without touching the heap, per spec §8's boundary behaviour).
func NewUniformEngine[S State, A Action](sp Space[S, A], starts, goals []S, opts ...Option) (*UniformEngine[S, A], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	if len(starts) == 0 {
		return nil, ErrNoStarts
	}

	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	e := &UniformEngine[S, A]{
		space: sp,
		arena: newArena[S, A](cfg.CapacityHint),
		dir:   newDirectory[S](cfg.CapacityHint),
		opts:  cfg,
		goals: make(map[S]struct{}, len(goals)),
	}
	e.open = newIntrusiveHeap[uniformRank](cfg.CapacityHint, lessUniform, e.setHeapPos)

	for _, g := range goals {
		e.goals[g] = struct{}{}
	}

	for _, s := range starts {
		if _, exists := e.dir.lookup(s); exists {
			continue
		}
		id := e.arena.alloc(searchNode[S, A]{state: s, g: ZeroCost, parent: noParent})
		e.dir.insert(s, id)
		e.open.push(newUniformRank(ZeroCost), id)
	}

	e.verifyInvariant()

	return e, nil
}

func (e *UniformEngine[S, A]) setHeapPos(id nodeID, pos int) {
	e.arena.get(id).heapPos = pos
}

// FindNextGoal pops and expands nodes in increasing g order until a goal is
// popped or the frontier is exhausted. It returns (Path, true) for each
// successive goal, in order of discovery, and (Path{}, false) once the goal
// set is empty or no remaining goal is reachable.
func (e *UniformEngine[S, A]) FindNextGoal() (Path[S, A], bool) {
	for {
		if len(e.goals) == 0 {
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

		if _, isGoal := e.goals[state]; isGoal {
			delete(e.goals, state)
			p := buildPath(e.space, e.arena, id, e.opts.Verify)
			e.verifyInvariant()

			return p, true
		}
	}
}

func (e *UniformEngine[S, A]) relax(parentID nodeID, parentState S, parentG Cost, t Transition[S, A]) {
	c := e.space.Cost(parentState, t.Action)
	newG := SaturatingAdd(parentG, c)

	if id, exists := e.dir.lookup(t.State); exists {
		m := e.arena.get(id)
		if m.closed {
			return
		}
		if newG < m.g {
			m.g = newG
			m.parent = parentID
			m.via = t.Action
			pos := m.heapPos
			e.open.setRank(pos, newUniformRank(newG))
			e.open.decreaseKey(pos)
		}

		return
	}

	newID := e.arena.alloc(searchNode[S, A]{state: t.State, g: newG, parent: parentID, via: t.Action})
	e.dir.insert(t.State, newID)
	e.open.push(newUniformRank(newG), newID)
}

// Stats reports the current node/open-list/directory footprint and the
// number of nodes expanded so far.
func (e *UniformEngine[S, A]) Stats() EngineStats {
	return EngineStats{
		NodeCount:     e.arena.len(),
		OpenLen:       e.open.Len(),
		DirectorySize: e.dir.len(),
		ExpandedCount: e.expanded,
	}
}

func (e *UniformEngine[S, A]) verifyInvariant() {
	if !e.opts.Verify {
		return
	}
	if !e.open.verify() {
		panic("search: heap invariant violated")
	}
	if e.dir.len() != e.arena.len() {
		panic("search: directory size diverged from arena size")
	}
	closed := 0
	for i := 0; i < e.arena.len(); i++ {
		if e.arena.get(nodeID(i)).closed {
			closed++
		}
	}
	if e.open.Len() != e.arena.len()-closed {
		panic("search: open-list size diverged from node count minus closed count")
	}
}
