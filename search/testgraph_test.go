package search_test

import "github.com/katalvlaran/pathfinder/search"

// toyEdge is one directed, weighted edge of a toyGraph.
type toyEdge struct {
	to     string
	action string
	cost   int64
}

// toyGraph is a minimal in-memory directed weighted graph implementing
// search.Space[string, string], used across the package's engine tests.
type toyGraph struct {
	edges map[string][]toyEdge
	nodes map[string]struct{}
}

func newToyGraph() *toyGraph {
	return &toyGraph{edges: make(map[string][]toyEdge), nodes: make(map[string]struct{})}
}

func (g *toyGraph) link(from, to, action string, cost int64) {
	g.edges[from] = append(g.edges[from], toyEdge{to: to, action: action, cost: cost})
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}
}

func (g *toyGraph) Neighbours(s string) []search.Transition[string, string] {
	edges := g.edges[s]
	out := make([]search.Transition[string, string], 0, len(edges))
	for _, e := range edges {
		out = append(out, search.Transition[string, string]{State: e.to, Action: e.action})
	}

	return out
}

func (g *toyGraph) Cost(s string, a string) search.Cost {
	for _, e := range g.edges[s] {
		if e.action == a {
			return e.cost
		}
	}

	return search.MaxCost
}

func (g *toyGraph) Apply(s string, a string) (string, bool) {
	for _, e := range g.edges[s] {
		if e.action == a {
			return e.to, true
		}
	}

	return "", false
}

func (g *toyGraph) Valid(s string) bool {
	_, ok := g.nodes[s]

	return ok
}
