// Package grid is a conformance example for search: a 2-D maze implements
// search.Space[Coord, Dir] over a rectangular array of Empty/Wall cells,
// with 4- or 8-directional connectivity.
//
// What:
//
//   - Maze wraps a rectangular [][]Cell grid with tunable Connectivity.
//   - NewMazeFromPNG loads a black/white PNG, treating black pixels as walls.
//   - NewRandomMaze synthesises a maze from a seedable source for benchmarks.
//   - DiagonalHeuristic supplies an admissible octile-distance estimate for
//     search.AStarEngine when Connectivity is Conn8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate falls outside the grid.
package grid
