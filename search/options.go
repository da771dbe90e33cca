package search

// Options configures the shared knobs of UniformEngine and AStarEngine, in
// the same functional-options shape as lvlath's dijkstra.Option.
type Options struct {
	// CapacityHint pre-sizes the arena, heap, and directory. The resource
	// model (spec §5) calls for reserving a few thousand entries up front to
	// amortise early growth; the default below matches that guidance.
	CapacityHint int

	// Verify enables the O(heap-size) invariant checks described in spec §4.2
	// and §7 at construction and each time FindNextGoal returns a path, plus
	// the path-reconstruction checks in buildPath. It is off by default: in a release
	// build these are a pure cost with no behavioural difference, matching
	// the reference implementation's `--verify` / `cfg(feature = "verify")`
	// split.
	Verify bool

	// TieBreak selects how AStarEngine breaks ties between open nodes whose
	// f = g+h agree (spec §4.1). Ignored by UniformEngine, whose rank is a
	// bare g with no compound tie dimension.
	TieBreak TieBreak

	// DropPolicy selects how AStarEngine's goal-consumption pass (spec §9,
	// "Dynamic heuristic worsening") prunes open nodes whose heuristic has
	// saturated to MaxCost. Ignored by UniformEngine.
	DropPolicy DropPolicy
}

// Option mutates an Options during engine construction.
type Option func(*Options)

// TieBreak is AStarEngine's policy for ordering two open nodes that share
// the same f.
type TieBreak int

const (
	// TieBreakLowH prefers the node with the smaller h: the one the
	// heuristic considers closer to a goal. This is spec §4.1's
	// lexicographic (f, h) order and the engine's default.
	TieBreakLowH TieBreak = iota
	// TieBreakHighG prefers the node with the larger g: the one deeper into
	// the search from a start, expanding the frontier's near edge later.
	TieBreakHighG
)

// DropPolicy is AStarEngine's policy for pruning open nodes whose heuristic
// has saturated to MaxCost after a goal is consumed and the remaining-goal
// minimum heuristic grows.
type DropPolicy int

const (
	// DropPolicyLeafOnly only removes a saturated node once it has no live
	// children in the heap, matching the reference implementation exactly
	// (spec §9's "preserve leaf-only drop" option). An interior node left
	// with a worst-possible rank is dropped on a later pass once it becomes
	// a leaf.
	DropPolicyLeafOnly DropPolicy = iota
	// DropPolicyCompact removes every saturated node immediately regardless
	// of heap position (spec §9's "drop all sentinel-h entries via a
	// compaction pass" alternative). Cleaner, at the cost of an extra
	// removeAt per interior saturation.
	DropPolicyCompact
)

// DefaultOptions returns the engine defaults: a few-thousand-entry capacity
// hint, verification disabled, low-h tie-breaking, and leaf-only dropping.
func DefaultOptions() Options {
	return Options{
		CapacityHint: 4096,
		Verify:       false,
		TieBreak:     TieBreakLowH,
		DropPolicy:   DropPolicyLeafOnly,
	}
}

// WithCapacityHint overrides the initial arena/heap/directory capacity.
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("search: capacity hint must be non-negative")
		}
		o.CapacityHint = n
	}
}

// WithVerify turns on the debug-build invariant assertions (spec §4.2/§7).
// It panics instead of returning an error on violation, since a violation
// means the engine itself has a bug, not that the caller supplied bad input.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// WithTieBreak overrides AStarEngine's tie-break policy between open nodes
// of equal f. No-op for UniformEngine.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = tb
	}
}

// WithDropPolicy overrides AStarEngine's pruning policy for saturated open
// nodes during goal-set maintenance. No-op for UniformEngine.
func WithDropPolicy(p DropPolicy) Option {
	return func(o *Options) {
		o.DropPolicy = p
	}
}
