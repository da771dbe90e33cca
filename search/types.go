package search

import "math"

// State identifies a position in the abstract state space the Space
// implementation explores. States are value-typed, hashable, and
// equality-comparable; identity is by value, so two equal states are the
// same node to the engine regardless of where they were produced.
type State interface {
	comparable
}

// Action labels a directed edge between two states.
type Action interface {
	comparable
}

// Cost is the path-cost type. The engine pins it to int64 rather than a
// generic numeric type parameter: Go has no trait-level "numeric with an
// associated MAX" the way Rust's num_traits does, and deriving a sentinel
// maximum for an arbitrary instantiated integer type without reflection
// would cost more than it buys here. int64 comfortably covers every grid,
// graph, or simulation cost domain this engine targets. See DESIGN.md for
// the tradeoff.
type Cost = int64

// MaxCost is the sentinel "infinite" cost. SaturatingAdd never returns a
// value beyond it; a node pinned to MaxCost is dominated by any finite path
// and will simply never be expanded.
const MaxCost Cost = math.MaxInt64

// ZeroCost is the additive identity.
const ZeroCost Cost = 0

// SaturatingAdd returns a+b, pinned to MaxCost instead of wrapping on
// overflow. Both a and b must be non-negative; the engine never calls this
// with a negative operand.
func SaturatingAdd(a, b Cost) Cost {
	if a >= MaxCost || b >= MaxCost {
		return MaxCost
	}
	sum := a + b
	if sum < a || sum > MaxCost { // overflow or saturation
		return MaxCost
	}

	return sum
}
