package grid

import (
	"bufio"
	"fmt"
	"image/png"
	"os"

	"github.com/katalvlaran/pathfinder/search"
)

// Maze is a rectangular grid of Empty/Wall cells implementing
// search.Space[Coord, Dir]. It is immutable once built.
type Maze struct {
	cells  [][]Cell // cells[y][x]
	width  int
	height int
	opts   Options
}

// NewMaze constructs a Maze from a non-empty, rectangular cell grid. It
// deep-copies the input so the caller's slice may be mutated afterward
// without affecting the Maze.
func NewMaze(cells [][]Cell, opts ...Option) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	rows := make([][]Cell, h)
	for y, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		rows[y] = make([]Cell, w)
		copy(rows[y], row)
	}

	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	return &Maze{cells: rows, width: w, height: h, opts: cfg}, nil
}

// NewMazeFromPNG loads a maze from a PNG image, classifying each pixel as a
// Wall or Empty via opts's IsWall predicate (grayscale luminance below half
// intensity by default — the black/white maze convention used by the
// conformance fixtures).
func NewMazeFromPNG(path string, opts ...Option) (*Maze, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: opening %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("grid: decoding %q: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]Cell, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]Cell, w)
		for x := 0; x < w; x++ {
			if cfg.IsWall(img.At(bounds.Min.X+x, bounds.Min.Y+y)) {
				cells[y][x] = Wall
			} else {
				cells[y][x] = Empty
			}
		}
	}

	return &Maze{cells: cells, width: w, height: h, opts: cfg}, nil
}

// NewRandomMaze synthesises a width×height maze with each cell independently
// a Wall with probability wallProb (clamped to [0,1]), using rng as the
// source of randomness. Used by benchmarks and random-problem synthesis
// rather than by the engine itself.
func NewRandomMaze(width, height int, wallProb float64, rng search.Rand, opts ...Option) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if wallProb < 0 {
		wallProb = 0
	}
	if wallProb > 1 {
		wallProb = 1
	}
	threshold := int(wallProb * 10000)

	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			if rng.Intn(10000) < threshold {
				cells[y][x] = Wall
			} else {
				cells[y][x] = Empty
			}
		}
	}

	return &Maze{cells: cells, width: width, height: height, opts: cfg}, nil
}

// Dimensions returns the maze's (width, height).
func (m *Maze) Dimensions() (int, int) { return m.width, m.height }

// At returns the cell at (x,y), or ErrOutOfBounds if the coordinate falls
// outside the grid.
func (m *Maze) At(x, y int) (Cell, error) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, ErrOutOfBounds
	}

	return m.cells[y][x], nil
}

// Valid implements search.Space.
func (m *Maze) Valid(c Coord) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

func (m *Maze) passable(c Coord) bool {
	return m.Valid(c) && m.cells[c.Y][c.X] == Empty
}

// Neighbours implements search.Space: the (up to 8) adjacent cells that are
// in bounds and not walls.
func (m *Maze) Neighbours(c Coord) []search.Transition[Coord, Dir] {
	dirs := m.opts.Conn.dirs()
	out := make([]search.Transition[Coord, Dir], 0, len(dirs))
	for _, d := range dirs {
		dx, dy := d.delta()
		n := Coord{X: c.X + dx, Y: c.Y + dy}
		if m.passable(n) {
			out = append(out, search.Transition[Coord, Dir]{State: n, Action: d})
		}
	}

	return out
}

// Cost implements search.Space: orthogonal and diagonal steps cost
// OrthogonalCost and DiagonalCost respectively, regardless of origin.
func (m *Maze) Cost(_ Coord, a Dir) search.Cost {
	if a.diagonal() {
		return m.opts.DiagonalCost
	}

	return m.opts.OrthogonalCost
}

// Apply implements search.Space.
func (m *Maze) Apply(c Coord, a Dir) (Coord, bool) {
	dx, dy := a.delta()
	n := Coord{X: c.X + dx, Y: c.Y + dy}
	if !m.passable(n) {
		return Coord{}, false
	}

	return n, true
}

// RandomState implements search.RandomStater, uniformly sampling passable
// cells (up to 1000 tries before giving up, matching the bounded-retry
// convention used elsewhere for random state synthesis).
func (m *Maze) RandomState(rng search.Rand) (Coord, bool) {
	for tries := 0; tries < 1000; tries++ {
		c := Coord{X: rng.Intn(m.width), Y: rng.Intn(m.height)}
		if m.passable(c) {
			return c, true
		}
	}

	return Coord{}, false
}
