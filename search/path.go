package search

// Path is an immutable materialised route from Start to End: a sequence of
// actions plus its total cost. It is built terminally by walking parent
// back-edges from a goal node and reversing, per spec §4.6.
type Path[S State, A Action] struct {
	Start   S
	End     S
	Cost    Cost
	Actions []A
}

// IsZero reports whether this is a zero-length path (Start == End, no
// actions taken — the case where a start state is itself a goal).
func (p Path[S, A]) IsZero() bool {
	return len(p.Actions) == 0
}

// buildPath walks parent back-edges from goalID to a start, asking space for
// the edge cost at each step. It mirrors SearchTree::path in the reference
// implementation: append going backward, then reverse once at the end.
//
// When verify is true (engine constructed WithVerify), it asserts the two
// debug-build invariants spec §4.6/§7 call for: every traversed edge has a
// non-zero cost, and the reconstructed total equals the popped goal node's g.
// A violation panics — it means the engine itself has a bug, not that the
// caller supplied bad input.
func buildPath[S State, A Action](sp Space[S, A], a *arena[S, A], goalID nodeID, verify bool) Path[S, A] {
	goal := a.get(goalID)
	p := Path[S, A]{Start: goal.state, End: goal.state, Cost: ZeroCost}

	actions := make([]A, 0)
	states := make([]S, 0)

	cur := goalID
	for {
		n := a.get(cur)
		if n.parent == noParent {
			break
		}
		parent := a.get(n.parent)
		c := sp.Cost(parent.state, n.via)
		if verify && c == ZeroCost {
			panic("search: zero-cost edge during path reconstruction")
		}
		p.Cost = SaturatingAdd(p.Cost, c)
		actions = append(actions, n.via)
		states = append(states, parent.state)
		cur = n.parent
	}

	if verify && p.Cost != goal.g {
		panic("search: reconstructed path cost diverges from popped node's g")
	}

	// actions/states were accumulated goal→start; reverse to start→goal.
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}

	p.Actions = actions
	if len(states) > 0 {
		p.Start = states[0]
	}

	return p
}
