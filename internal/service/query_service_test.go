package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

type stubStore struct {
	path    domain.AncestryPath
	persons []domain.Person
	pathErr error
	listErr error

	tracedFrom domain.PersonID
	tracedTo   domain.PersonID
}

func (s *stubStore) ShortestPathBetweenPersons(_ context.Context, fromID, toID domain.PersonID) (domain.AncestryPath, error) {
	s.tracedFrom = fromID
	s.tracedTo = toID
	if s.pathErr != nil {
		return domain.AncestryPath{}, s.pathErr
	}
	return s.path, nil
}

func (s *stubStore) ExportPersons(context.Context) ([]domain.Person, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.persons, nil
}

func TestQueryService_Trace(t *testing.T) {
	store := &stubStore{path: domain.AncestryPath{Steps: []domain.PathStep{
		{Person: domain.Person{ID: 20, Name: "Name A"}, Kind: "Father"},
		{Person: domain.Person{ID: 6, Name: "Name B"}},
	}}}
	svc := NewQueryService(store)

	path, err := svc.Trace(context.Background(), 20, 6)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if store.tracedFrom != 20 || store.tracedTo != 6 {
		t.Fatalf("store queried with %s -> %s", store.tracedFrom, store.tracedTo)
	}
	if path.Hops() != 1 || path.Steps[0].Kind != "Father" {
		t.Fatalf("unexpected path: %+v", path)
	}
}

func TestQueryService_Trace_PreservesTypedErrors(t *testing.T) {
	svc := NewQueryService(&stubStore{pathErr: domain.ErrNoPath})
	if _, err := svc.Trace(context.Background(), 1, 4); !errors.Is(err, domain.ErrNoPath) {
		t.Fatalf("expected ErrNoPath through the wrap, got %v", err)
	}

	svc = NewQueryService(&stubStore{pathErr: &domain.UnknownIdentifierError{ID: 99}})
	_, err := svc.Trace(context.Background(), 99, 1)
	var unknown *domain.UnknownIdentifierError
	if !errors.As(err, &unknown) || unknown.ID != 99 {
		t.Fatalf("expected UnknownIdentifierError for 99, got %v", err)
	}
}

func TestQueryService_Persons(t *testing.T) {
	age := 44
	store := &stubStore{persons: []domain.Person{
		{ID: 1, Name: "Name C"},
		{ID: 6, Name: "Name B", Age: &age},
	}}

	persons, err := NewQueryService(store).Persons(context.Background())
	if err != nil {
		t.Fatalf("Persons: %v", err)
	}
	if len(persons) != 2 || persons[1].Age == nil || *persons[1].Age != 44 {
		t.Fatalf("unexpected persons: %+v", persons)
	}
}

func TestQueryService_Persons_PropagatesErrors(t *testing.T) {
	svc := NewQueryService(&stubStore{listErr: errors.New("connection reset")})
	if _, err := svc.Persons(context.Background()); err == nil {
		t.Fatal("expected export error")
	}
}
