// Command beamsearch is a reference CLI driver for the search engine: it
// loads a maze from a text or PNG file and reports the route(s) found by
// either the uniform-cost or the heuristic engine.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/search"
)

var CLI struct {
	Solve SolveCommand `cmd:"" help:"Run uniform-cost search over a maze" default:"withargs"`
	Astar AstarCommand `cmd:"" help:"Run heuristic (A*) search over a maze"`
}

// mazeFlags are the fields shared by both subcommands.
type mazeFlags struct {
	Maze     string `arg:"" name:"maze" help:"Path to a maze file (.txt rows of '.'/'#', or a black/white .png)" type:"path"`
	Start    string `help:"Start coordinate as x,y" default:"0,0"`
	Goal     string `help:"Goal coordinate as x,y" required:""`
	Diagonal bool   `help:"Allow diagonal movement (Conn8 instead of Conn4)"`
	Verify   bool   `help:"Enable the engine's O(n) invariant checks at construction and after each path found"`
}

func (f mazeFlags) load() (*grid.Maze, grid.Coord, grid.Coord, error) {
	var opts []grid.Option
	if f.Diagonal {
		opts = append(opts, grid.WithConnectivity(grid.Conn8))
	}

	var m *grid.Maze
	var err error
	if strings.HasSuffix(strings.ToLower(f.Maze), ".png") {
		m, err = grid.NewMazeFromPNG(f.Maze, opts...)
	} else {
		m, err = loadMazeText(f.Maze, opts...)
	}
	if err != nil {
		return nil, grid.Coord{}, grid.Coord{}, err
	}

	start, err := parseCoord(f.Start)
	if err != nil {
		return nil, grid.Coord{}, grid.Coord{}, fmt.Errorf("parsing start: %w", err)
	}
	goal, err := parseCoord(f.Goal)
	if err != nil {
		return nil, grid.Coord{}, grid.Coord{}, fmt.Errorf("parsing goal: %w", err)
	}

	return m, start, goal, nil
}

func parseCoord(s string) (grid.Coord, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return grid.Coord{}, fmt.Errorf("expected \"x,y\", got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}

	return grid.Coord{X: x, Y: y}, nil
}

// loadMazeText reads a maze from plain-text rows: '#' is a wall, anything
// else is passable terrain.
func loadMazeText(path string, opts ...grid.Option) (*grid.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var rows [][]grid.Cell
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		row := make([]grid.Cell, len(line))
		for x, ch := range line {
			if ch == '#' {
				row[x] = grid.Wall
			} else {
				row[x] = grid.Empty
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return grid.NewMaze(rows, opts...)
}

func printResult(runID string, p search.Path[grid.Coord, grid.Dir], ok bool, stats search.EngineStats) {
	if !ok {
		log.Warn("no path found", "run", runID)
		return
	}
	log.Info("path found", "run", runID, "cost", p.Cost, "steps", len(p.Actions))
	fmt.Printf("start=%v end=%v cost=%d steps=%d\n", p.Start, p.End, p.Cost, len(p.Actions))
	fmt.Printf("nodes=%d open=%d directory=%d expanded=%d\n",
		stats.NodeCount, stats.OpenLen, stats.DirectorySize, stats.ExpandedCount)
}

// SolveCommand runs the uniform-cost (Dijkstra-style) engine.
type SolveCommand struct {
	mazeFlags
}

func (c *SolveCommand) Run() error {
	runID := uuid.NewString()
	log.Info("starting uniform-cost search", "run", runID, "maze", c.Maze)

	m, start, goal, err := c.load()
	if err != nil {
		return err
	}

	var opts []search.Option
	if c.Verify {
		opts = append(opts, search.WithVerify())
	}
	e, err := search.NewUniformEngine[grid.Coord, grid.Dir](m, []grid.Coord{start}, []grid.Coord{goal}, opts...)
	if err != nil {
		return fmt.Errorf("constructing engine: %w", err)
	}

	p, ok := e.FindNextGoal()
	printResult(runID, p, ok, e.Stats())

	return nil
}

// AstarCommand runs the heuristic engine with an octile-distance estimate.
type AstarCommand struct {
	mazeFlags
}

func (c *AstarCommand) Run() error {
	runID := uuid.NewString()
	log.Info("starting heuristic search", "run", runID, "maze", c.Maze)

	m, start, goal, err := c.load()
	if err != nil {
		return err
	}

	var opts []search.Option
	if c.Verify {
		opts = append(opts, search.WithVerify())
	}
	h := grid.NewDiagonalHeuristic(m)
	e, err := search.NewAStarEngine[grid.Coord, grid.Dir](m, h, []grid.Coord{start}, []grid.Coord{goal}, opts...)
	if err != nil {
		return fmt.Errorf("constructing engine: %w", err)
	}

	p, ok := e.FindNextGoal()
	printResult(runID, p, ok, e.Stats())

	return nil
}

func main() {
	log.SetLevel(log.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("beamsearch"),
		kong.Description("Run best-first graph search over a 2-D maze."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
