package search

import "errors"

// Sentinel errors returned by engine constructors. The search loop itself
// never returns an error — FindNextGoal returns (Path, false) once the
// frontier is exhausted, per the engine's "almost total" error design.
var (
	// ErrNoStarts indicates a search was constructed with an empty start set.
	ErrNoStarts = errors.New("search: at least one start state is required")

	// ErrNilSpace indicates a nil Space was passed to an engine constructor.
	ErrNilSpace = errors.New("search: space is nil")

	// ErrNilHeuristic indicates a nil Heuristic was passed to NewAStarEngine.
	ErrNilHeuristic = errors.New("search: heuristic is nil")
)
