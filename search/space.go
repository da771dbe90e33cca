package search

// Space is the abstract state space an Engine searches over. Implementations
// must be read-only for the duration of a search: neighbour and cost
// functions are called repeatedly and must be pure with respect to any
// externally mutable state, since the engine takes no locks (spec §5).
type Space[S State, A Action] interface {
	// Neighbours returns the finite set of (state, action) pairs reachable
	// from s in one step. Order is preserved but not semantically required.
	// Every returned state must satisfy Valid.
	Neighbours(s S) []Transition[S, A]

	// Cost returns the edge cost of taking action a from s. Must be
	// non-negative, and non-zero for any edge that represents real progress
	// — a zero-cost edge trips the debug assertion in path reconstruction
	// (spec §4.6/§7).
	Cost(s S, a A) Cost

	// Apply returns the state reached by taking action a from s, or false if
	// the action is not defined from s. The engines never call it; it lets a
	// caller validate a Path by replaying its actions from Start.
	Apply(s S, a A) (S, bool)

	// Valid reports whether s is a legal state in this space.
	Valid(s S) bool
}

// Transition is one outgoing edge reported by Space.Neighbours.
type Transition[S State, A Action] struct {
	State  S
	Action A
}

// Rand is the minimal randomness source RandomStater needs — satisfied by
// *math/rand.Rand without importing it here.
type Rand interface {
	Intn(n int) int
}

// RandomStater is an optional capability a Space may implement to support
// test harnesses and random-problem synthesis (spec §6). Engines never call
// it; it exists purely for callers such as tests and benchmarks that need a
// random valid state (grid.Maze implements it).
type RandomStater[S State] interface {
	RandomState(rng Rand) (S, bool)
}

// Problem exposes a start set and a goal set. No engine constructor takes a
// Problem directly: pass Starts() and Goals() to NewUniformEngine or
// NewAStarEngine, which copy both at construction, so the Problem value may
// be reused or discarded independently afterward.
type Problem[S State] interface {
	Starts() []S
	Goals() []S
}

// Heuristic supplies an admissible, consistent estimate of the remaining
// cost from s to goal, for use by AStarEngine. h must never overestimate the
// true remaining cost (admissibility) and must satisfy
// h(s) ≤ cost(s, s') + h(s') for every edge (consistency) to guarantee the
// engine never needs to reopen a closed node.
type Heuristic[S State] interface {
	H(s, goal S) Cost
}

// HeuristicFunc adapts a plain function to the Heuristic interface.
type HeuristicFunc[S State] func(s, goal S) Cost

// H implements Heuristic.
func (f HeuristicFunc[S]) H(s, goal S) Cost { return f(s, goal) }

// EngineStats reports the memory/activity footprint of a search, the same
// node-count / open-list-size / directory-size / expanded-count table the
// reference CLI in cmd/beamsearch prints (spec §6).
type EngineStats struct {
	NodeCount     int
	OpenLen       int
	DirectorySize int
	ExpandedCount int
}
