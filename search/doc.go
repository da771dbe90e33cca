// Package search implements a generic best-first graph-search engine over
// abstract state spaces.
//
// It solves multi-source / multi-goal shortest-path problems: given a set of
// start states, a set of goal states, and a Space that exposes neighbours and
// per-edge costs, the engine produces optimal paths one goal at a time, in
// order of discovery.
//
// Two variants are provided:
//
//   - UniformEngine ranks open nodes by path cost g (Dijkstra-style).
//   - AStarEngine ranks open nodes by f = g + h, where h is a caller-supplied
//     admissible heuristic.
//
// The hard part lives in the open-list + closed-set + search-forest complex:
// an intrusive 8-ary min-heap tightly coupled with an append-only node arena
// and a state→node directory, kept mutually consistent across every push,
// pop, and relaxation.
//
// # Concurrency
//
// Unlike core.Graph in lvlath proper, which guards its state behind
// sync.RWMutex, an Engine is not safe for concurrent use: its arena, heap,
// and directory are exclusively owned by the goroutine driving it. Run
// independent searches on independent goroutines; don't share one Engine.
//
// # No reopening
//
// Once a state is closed, it is never reopened, even if a later relaxation
// would improve its g. This is optimal with a consistent heuristic (including
// the zero heuristic used by UniformEngine). With a merely admissible
// heuristic, paths to goals discovered after the search already closed an
// affected state may be suboptimal. See the Heuristic interface's doc comment.
package search
