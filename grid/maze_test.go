package grid_test

import (
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/search"
)

func mustMaze(t *testing.T, rows []string, opts ...grid.Option) *grid.Maze {
	t.Helper()

	cells := make([][]grid.Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]grid.Cell, len(row))
		for x, ch := range row {
			if ch == '#' {
				cells[y][x] = grid.Wall
			} else {
				cells[y][x] = grid.Empty
			}
		}
	}
	m, err := grid.NewMaze(cells, opts...)
	require.NoError(t, err)

	return m
}

func TestNewMaze_RejectsEmptyAndNonRectangular(t *testing.T) {
	_, err := grid.NewMaze(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.NewMaze([][]grid.Cell{{grid.Empty, grid.Empty}, {grid.Empty}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

// Conformance scenario 1: a straight corridor with a single route.
func TestMaze_Corridor(t *testing.T) {
	m := mustMaze(t, []string{
		".....",
	})

	e, err := search.NewUniformEngine[grid.Coord, grid.Dir](m, []grid.Coord{{X: 0, Y: 0}}, []grid.Coord{{X: 4, Y: 0}})
	require.NoError(t, err)

	p, ok := e.FindNextGoal()
	require.True(t, ok)
	assert.Equal(t, search.Cost(400), p.Cost)
	assert.Len(t, p.Actions, 4)
}

// Conformance scenario 2: two routes of different cost, cheaper one must win.
func TestMaze_TwoPathsCheaperWins(t *testing.T) {
	m := mustMaze(t, []string{
		"..#..",
		".....",
	})

	e, err := search.NewUniformEngine[grid.Coord, grid.Dir](m, []grid.Coord{{X: 0, Y: 0}}, []grid.Coord{{X: 4, Y: 0}})
	require.NoError(t, err)

	p, ok := e.FindNextGoal()
	require.True(t, ok)
	// Shortest route detours one row down and back around the single wall
	// cell: 6 orthogonal steps instead of the unobstructed 4.
	assert.Equal(t, search.Cost(600), p.Cost)
	assert.Len(t, p.Actions, 6)
}

// Conformance scenario 3: multiple starts, the nearer one should win.
func TestMaze_MultiStart(t *testing.T) {
	m := mustMaze(t, []string{
		".........",
	})

	e, err := search.NewUniformEngine[grid.Coord, grid.Dir](
		m,
		[]grid.Coord{{X: 0, Y: 0}, {X: 7, Y: 0}},
		[]grid.Coord{{X: 8, Y: 0}},
	)
	require.NoError(t, err)

	p, ok := e.FindNextGoal()
	require.True(t, ok)
	assert.Equal(t, search.Cost(100), p.Cost)
	assert.Equal(t, grid.Coord{X: 7, Y: 0}, p.Start)
}

// Conformance scenario 4: multiple goals, nearer one consumed first.
func TestMaze_MultiGoal(t *testing.T) {
	m := mustMaze(t, []string{
		".........",
	})

	e, err := search.NewUniformEngine[grid.Coord, grid.Dir](
		m,
		[]grid.Coord{{X: 0, Y: 0}},
		[]grid.Coord{{X: 8, Y: 0}, {X: 2, Y: 0}},
	)
	require.NoError(t, err)

	first, ok := e.FindNextGoal()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 2, Y: 0}, first.End)

	second, ok := e.FindNextGoal()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 8, Y: 0}, second.End)
}

// Conformance scenario 5: a disconnected region yields no path.
func TestMaze_DisconnectedRegion(t *testing.T) {
	m := mustMaze(t, []string{
		"..#..",
		"..#..",
		"..#..",
	})

	e, err := search.NewUniformEngine[grid.Coord, grid.Dir](m, []grid.Coord{{X: 0, Y: 0}}, []grid.Coord{{X: 4, Y: 0}})
	require.NoError(t, err)

	_, ok := e.FindNextGoal()
	assert.False(t, ok)
}

// Conformance scenario 6: heuristic stress — Conn8 + DiagonalHeuristic must
// still find the optimal diagonal-shortcut route an octile estimate expects.
func TestMaze_HeuristicDiagonalShortcut(t *testing.T) {
	m := mustMaze(t, []string{
		"....",
		"....",
		"....",
		"....",
	}, grid.WithConnectivity(grid.Conn8))
	h := grid.NewDiagonalHeuristic(m)

	e, err := search.NewAStarEngine[grid.Coord, grid.Dir](m, h, []grid.Coord{{X: 0, Y: 0}}, []grid.Coord{{X: 3, Y: 3}})
	require.NoError(t, err)

	p, ok := e.FindNextGoal()
	require.True(t, ok)
	assert.Equal(t, search.Cost(3*141), p.Cost)
	assert.Len(t, p.Actions, 3)
}

func TestNewRandomMaze_RespectsDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m, err := grid.NewRandomMaze(20, 10, 0.2, rng)
	require.NoError(t, err)
	w, h := m.Dimensions()
	assert.Equal(t, 20, w)
	assert.Equal(t, 10, h)
}

func TestNewRandomMaze_RejectsNonPositiveDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	_, err := grid.NewRandomMaze(0, 10, 0.2, rng)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestMaze_At_OutOfBounds(t *testing.T) {
	m := mustMaze(t, []string{
		"...",
		"...",
	})

	_, err := m.At(-1, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = m.At(3, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = m.At(0, 2)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestNewMazeFromPNG_WithWallColorOverridesDefault(t *testing.T) {
	// Predicates ignoring the actual pixel color entirely prove WithWallColor
	// replaces the default grayscale test rather than being ignored.
	alwaysWall := func(color.Color) bool { return true }
	neverWall := func(color.Color) bool { return false }

	dir := t.TempDir()
	path := filepath.Join(dir, "maze.png")
	writeTestPNG(t, path, 2, 2, color.White)

	m, err := grid.NewMazeFromPNG(path, grid.WithWallColor(alwaysWall))
	require.NoError(t, err)
	cell, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Wall, cell)

	m, err = grid.NewMazeFromPNG(path, grid.WithWallColor(neverWall))
	require.NoError(t, err)
	cell, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Empty, cell)
}

func writeTestPNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
}

func TestMaze_RandomState_OnlyPassableCells(t *testing.T) {
	m := mustMaze(t, []string{
		"#.#",
		"###",
		"#.#",
	})

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		c, ok := m.RandomState(rng)
		require.True(t, ok)
		cell, err := m.At(c.X, c.Y)
		require.NoError(t, err)
		assert.Equal(t, grid.Empty, cell)
	}
}
