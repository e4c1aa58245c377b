package ancestry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

func mustBuild(t *testing.T, records []domain.Record) *Graph {
	t.Helper()
	graph, err := Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return graph
}

func pathIDs(path domain.AncestryPath) []domain.PersonID {
	ids := make([]domain.PersonID, len(path.Steps))
	for i, step := range path.Steps {
		ids[i] = step.Person.ID
	}
	return ids
}

func TestShortestPath_Chain(t *testing.T) {
	graph := mustBuild(t, []domain.Record{
		rec(20, "Name A", "Father", 6, 2),
		rec(6, "Name B", "Father", 1, 3),
	})

	path, err := graph.ShortestPath(20, 1)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if path.Hops() != 2 {
		t.Fatalf("expected 2 hops, got %d", path.Hops())
	}
	if got := pathIDs(path); !reflect.DeepEqual(got, []domain.PersonID{20, 6, 1}) {
		t.Fatalf("unexpected path: %v", got)
	}
	if path.Steps[0].Kind != "Father" || path.Steps[1].Kind != "Father" {
		t.Fatalf("unexpected hop kinds: %+v", path.Steps)
	}
	if path.Steps[2].Kind != "" {
		t.Fatalf("terminal step must carry no kind, got %q", path.Steps[2].Kind)
	}
}

func TestShortestPath_PicksMinimumHops(t *testing.T) {
	// 1 -> 2 -> 3 -> 5 and 1 -> 4 -> 5; the two-hop route must win.
	graph := mustBuild(t, []domain.Record{
		rec(1, "Root", "Father", 2, 2),
		rec(2, "Mid A", "Father", 3, 3),
		rec(3, "Mid B", "Father", 5, 4),
		rec(1, "Root", "Father", 4, 5),
		rec(4, "Mid C", "Father", 5, 6),
	})

	path, err := graph.ShortestPath(1, 5)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if got := pathIDs(path); !reflect.DeepEqual(got, []domain.PersonID{1, 4, 5}) {
		t.Fatalf("expected the two-hop path, got %v", got)
	}
}

func TestShortestPath_TieBreakIsAscendingByID(t *testing.T) {
	// Two shortest paths: 1 -> 7 -> 9 and 1 -> 3 -> 9. Insertion order favors
	// 7, adjacency order must favor 3.
	records := []domain.Record{
		rec(1, "Root", "Father", 7, 2),
		rec(7, "High", "Father", 9, 3),
		rec(1, "Root", "Mother", 3, 4),
		rec(3, "Low", "Mother", 9, 5),
	}
	graph := mustBuild(t, records)

	first, err := graph.ShortestPath(1, 9)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if got := pathIDs(first); !reflect.DeepEqual(got, []domain.PersonID{1, 3, 9}) {
		t.Fatalf("expected tie-break toward smaller ids, got %v", got)
	}

	// Determinism: identical result on a rebuilt graph and a repeated query.
	second, err := mustBuild(t, records).ShortestPath(1, 9)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ across runs: %+v vs %+v", first, second)
	}
}

func TestShortestPath_ParallelEdgeKeepsFirstInsertedLabel(t *testing.T) {
	graph := mustBuild(t, []domain.Record{
		rec(1, "Root", "Father", 2, 2),
		rec(1, "Root", "Guardian", 2, 3),
	})

	path, err := graph.ShortestPath(1, 2)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if path.Steps[0].Kind != "Father" {
		t.Fatalf("expected first-inserted label, got %q", path.Steps[0].Kind)
	}
}

func TestShortestPath_Degenerate(t *testing.T) {
	graph := mustBuild(t, []domain.Record{
		rec(20, "Name A", "Father", 6, 2),
	})

	path, err := graph.ShortestPath(20, 20)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if path.Hops() != 0 || len(path.Steps) != 1 {
		t.Fatalf("expected zero-hop single-person path, got %+v", path)
	}
	if path.Steps[0].Person.ID != 20 {
		t.Fatalf("unexpected person: %+v", path.Steps[0])
	}
}

func TestShortestPath_Disconnected(t *testing.T) {
	graph := mustBuild(t, []domain.Record{
		rec(1, "Root", "Father", 2, 2),
		rec(3, "Other", "Father", 4, 3),
	})

	_, err := graph.ShortestPath(1, 4)
	if !errors.Is(err, domain.ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}

	// Direction matters: edges point ancestor -> descendant only.
	_, err = graph.ShortestPath(2, 1)
	if !errors.Is(err, domain.ErrNoPath) {
		t.Fatalf("expected ErrNoPath against edge direction, got %v", err)
	}
}

func TestShortestPath_UnknownIdentifier(t *testing.T) {
	graph := mustBuild(t, []domain.Record{
		rec(1, "Root", "Father", 2, 2),
	})

	_, err := graph.ShortestPath(99, 2)
	var unknown *domain.UnknownIdentifierError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownIdentifierError, got %v", err)
	}
	if unknown.ID != 99 {
		t.Fatalf("error must name the unresolved id, got %s", unknown.ID)
	}

	_, err = graph.ShortestPath(1, 99)
	if !errors.As(err, &unknown) || unknown.ID != 99 {
		t.Fatalf("expected UnknownIdentifierError for target, got %v", err)
	}

	if graph.NodeCount() != 2 {
		t.Fatalf("query must not mutate the graph, got %d nodes", graph.NodeCount())
	}
}
