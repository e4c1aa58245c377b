package ancestry

import (
	"fmt"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

// ShortestPath finds the minimum-hop directed path from the ancestor endpoint
// toward the descendant endpoint.
//
// The search is a plain BFS over the sealed adjacency. Tie-break rule: nodes
// are expanded in FIFO order, neighbors in ascending person-id order, and each
// node keeps the first predecessor that reaches it. Among equal-length paths
// this always selects the same one, and the label of a parallel edge pair is
// always the first-inserted one, so two runs on the same graph yield identical
// results.
func (g *Graph) ShortestPath(fromID, toID domain.PersonID) (domain.AncestryPath, error) {
	from, ok := g.index[fromID]
	if !ok {
		return domain.AncestryPath{}, &domain.UnknownIdentifierError{ID: fromID}
	}
	to, ok := g.index[toID]
	if !ok {
		return domain.AncestryPath{}, &domain.UnknownIdentifierError{ID: toID}
	}

	if from == to {
		return domain.AncestryPath{
			Steps: []domain.PathStep{{Person: g.persons[from]}},
		}, nil
	}

	prevNode := make([]int, len(g.persons))
	prevKind := make([]string, len(g.persons))
	for i := range prevNode {
		prevNode[i] = -1
	}
	prevNode[from] = from

	queue := []int{from}
	for len(queue) > 0 && prevNode[to] == -1 {
		current := queue[0]
		queue = queue[1:]

		for _, e := range g.adj[current] {
			if prevNode[e.to] != -1 {
				continue
			}
			prevNode[e.to] = current
			prevKind[e.to] = e.kind
			if e.to == to {
				break
			}
			queue = append(queue, e.to)
		}
	}

	if prevNode[to] == -1 {
		return domain.AncestryPath{}, fmt.Errorf("from %s to %s: %w", fromID, toID, domain.ErrNoPath)
	}

	var chain []int
	for idx := to; ; idx = prevNode[idx] {
		chain = append(chain, idx)
		if idx == from {
			break
		}
	}

	steps := make([]domain.PathStep, len(chain))
	for i := range steps {
		steps[i] = domain.PathStep{Person: g.persons[chain[len(chain)-1-i]]}
	}
	for i := 0; i < len(steps)-1; i++ {
		next := g.index[steps[i+1].Person.ID]
		steps[i].Kind = prevKind[next]
	}

	return domain.AncestryPath{Steps: steps}, nil
}
