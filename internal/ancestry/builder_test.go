package ancestry

import (
	"errors"
	"testing"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

func rec(source domain.PersonID, name string, kind string, target domain.PersonID, line int) domain.Record {
	return domain.Record{
		SourceID:   source,
		SourceName: name,
		Kind:       kind,
		TargetID:   target,
		Line:       line,
	}
}

func recAge(source domain.PersonID, name string, age int, kind string, target domain.PersonID, line int) domain.Record {
	r := rec(source, name, kind, target, line)
	r.SourceAge = &age
	return r
}

func TestBuild_Counts(t *testing.T) {
	graph, err := Build([]domain.Record{
		rec(20, "Name A", "Father", 6, 2),
		rec(6, "Name B", "Father", 1, 3),
		rec(6, "Name B", "Father", 1, 4), // restated relationship, kept distinct
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := graph.NodeCount(); got != 3 {
		t.Fatalf("expected 3 distinct persons, got %d", got)
	}
	if got := graph.EdgeCount(); got != 3 {
		t.Fatalf("expected 3 edges including the duplicate, got %d", got)
	}
}

func TestBuild_FirstOccurrenceWinsAndFillsIn(t *testing.T) {
	graph, err := Build([]domain.Record{
		rec(6, "", "Father", 1, 2),
		recAge(6, "Name B", 44, "Mother", 2, 3),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	person, ok := graph.Resolve(6)
	if !ok {
		t.Fatal("person 6 missing")
	}
	if person.Name != "Name B" {
		t.Fatalf("expected filled-in name, got %q", person.Name)
	}
	if person.Age == nil || *person.Age != 44 {
		t.Fatalf("expected filled-in age 44, got %v", person.Age)
	}
}

func TestBuild_ConflictingName(t *testing.T) {
	_, err := Build([]domain.Record{
		rec(6, "Name B", "Father", 1, 2),
		rec(6, "Other Name", "Mother", 2, 3),
	})
	if err == nil {
		t.Fatal("expected conflict error")
	}
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %T: %v", err, err)
	}
	if conflict.PersonID != 6 || conflict.Field != "name" || conflict.Line != 3 {
		t.Fatalf("unexpected conflict details: %+v", conflict)
	}
}

func TestBuild_ConflictingAge(t *testing.T) {
	_, err := Build([]domain.Record{
		recAge(6, "Name B", 44, "Father", 1, 2),
		recAge(6, "Name B", 45, "Mother", 2, 3),
	})
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %T: %v", err, err)
	}
	if conflict.Field != "age" {
		t.Fatalf("expected age conflict, got %s", conflict.Field)
	}
}

func TestBuild_RejectsSelfLoop(t *testing.T) {
	_, err := Build([]domain.Record{
		rec(6, "Name B", "Father", 6, 2),
	})
	if !errors.Is(err, domain.ErrSelfLoop) {
		t.Fatalf("expected ErrSelfLoop, got %v", err)
	}
}

func TestGraph_PersonsAndRelationships(t *testing.T) {
	graph, err := Build([]domain.Record{
		rec(20, "Name A", "Father", 6, 2),
		rec(6, "Name B", "Father", 1, 3),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	persons := graph.Persons()
	if len(persons) != 3 {
		t.Fatalf("expected 3 persons, got %d", len(persons))
	}
	for i := 1; i < len(persons); i++ {
		if persons[i-1].ID >= persons[i].ID {
			t.Fatalf("persons not sorted by id: %v", persons)
		}
	}

	rels := graph.Relationships()
	if len(rels) != 2 {
		t.Fatalf("expected 2 relationships, got %d", len(rels))
	}
	if rels[0].SourceID != 20 || rels[0].TargetID != 6 || rels[0].Kind != "Father" {
		t.Fatalf("relationships not in insertion order: %+v", rels)
	}
}
