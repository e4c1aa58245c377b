package ancestry

import (
	"sort"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

// edge is one directed link in the adjacency list. seq is the global insertion
// order, used to keep parallel edges in first-inserted order after sealing.
type edge struct {
	to   int
	kind string
	seq  int
}

// Graph is the in-memory ancestry multigraph: a node arena indexed by a stable
// int index, an id lookup map and per-node adjacency. Edges point from
// ancestor toward descendant. The graph is append-only until Seal and strictly
// read-only afterwards, so queries need no synchronization.
type Graph struct {
	persons []domain.Person
	index   map[domain.PersonID]int
	adj     [][]edge

	edgeCount int
	sealed    bool
}

func newGraph() *Graph {
	return &Graph{
		index: make(map[domain.PersonID]int),
	}
}

// ensureNode returns the arena index for id, creating the node on first sight.
func (g *Graph) ensureNode(id domain.PersonID) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := len(g.persons)
	g.persons = append(g.persons, domain.Person{ID: id})
	g.adj = append(g.adj, nil)
	g.index[id] = idx
	return idx
}

func (g *Graph) addEdge(from, to int, kind string) {
	g.adj[from] = append(g.adj[from], edge{to: to, kind: kind, seq: g.edgeCount})
	g.edgeCount++
}

// seal freezes the graph and fixes the adjacency iteration order: ascending
// neighbor person id, parallel edges kept in insertion order. This order is
// what makes path selection deterministic.
func (g *Graph) seal() {
	for i := range g.adj {
		edges := g.adj[i]
		sort.Slice(edges, func(a, b int) bool {
			idA := g.persons[edges[a].to].ID
			idB := g.persons[edges[b].to].ID
			if idA != idB {
				return idA < idB
			}
			return edges[a].seq < edges[b].seq
		})
	}
	g.sealed = true
}

// Resolve returns the person for id if it exists in the graph.
func (g *Graph) Resolve(id domain.PersonID) (domain.Person, bool) {
	idx, ok := g.index[id]
	if !ok {
		return domain.Person{}, false
	}
	return g.persons[idx], true
}

// NodeCount returns the number of distinct person identifiers in the graph.
func (g *Graph) NodeCount() int {
	return len(g.persons)
}

// EdgeCount returns the number of relationship edges, duplicates included.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Persons returns a copy of all persons ordered by ascending identifier.
func (g *Graph) Persons() []domain.Person {
	out := make([]domain.Person, len(g.persons))
	copy(out, g.persons)
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

// Relationships returns a copy of all edges in insertion order.
func (g *Graph) Relationships() []domain.Relationship {
	out := make([]domain.Relationship, g.edgeCount)
	for from, edges := range g.adj {
		for _, e := range edges {
			out[e.seq] = domain.Relationship{
				SourceID: g.persons[from].ID,
				TargetID: g.persons[e.to].ID,
				Kind:     e.kind,
			}
		}
	}
	return out
}
