package grid

import "image/color"

// Coord is a grid cell position. It satisfies search.State.
type Coord struct {
	X, Y int
}

// Dir labels a directed step between adjacent cells. It satisfies
// search.Action.
type Dir int

const (
	North Dir = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// delta is the (dx,dy) offset a Dir applies to a Coord.
func (d Dir) delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	case NorthEast:
		return 1, -1
	case NorthWest:
		return -1, -1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return -1, 1
	default:
		return 0, 0
	}
}

// diagonal reports whether d moves along both axes at once.
func (d Dir) diagonal() bool {
	switch d {
	case NorthEast, NorthWest, SouthEast, SouthWest:
		return true
	default:
		return false
	}
}

// Connectivity selects which directions a Maze reports as neighbours:
// orthogonal only (Conn4) or orthogonal plus diagonal (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, adding the four diagonals.
	Conn8
)

func (c Connectivity) dirs() []Dir {
	if c == Conn8 {
		return []Dir{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
	}

	return []Dir{North, South, East, West}
}

// Cell is the terrain at one grid position.
type Cell int

const (
	Empty Cell = iota
	Wall
)

// Options configures a Maze's connectivity, per-step costs, and PNG wall
// detection.
type Options struct {
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity
	// OrthogonalCost is the cost of a horizontal or vertical step.
	OrthogonalCost int64
	// DiagonalCost is the cost of a diagonal step. Ignored under Conn4.
	DiagonalCost int64
	// IsWall classifies a decoded PNG pixel as a wall. Ignored by NewMaze
	// and NewRandomMaze, which take Cell values directly.
	IsWall func(color.Color) bool
}

// DefaultOptions returns Conn4 with orthogonal steps costing 100, the
// standard diagonal/orthogonal ratio (141/100, ~√2) for when Conn8 is
// selected instead, and a grayscale-luminance-below-half-intensity wall
// test for PNG loading.
func DefaultOptions() Options {
	return Options{
		Conn:           Conn4,
		OrthogonalCost: 100,
		DiagonalCost:   141,
		IsWall: func(c color.Color) bool {
			return color.GrayModel.Convert(c).(color.Gray).Y < 128
		},
	}
}

// Option mutates an Options during Maze construction.
type Option func(*Options)

// WithConnectivity overrides the default 4-directional movement.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithWallColor overrides the default grayscale-threshold wall test used by
// NewMazeFromPNG.
func WithWallColor(isWall func(color.Color) bool) Option {
	return func(o *Options) {
		o.IsWall = isWall
	}
}
