package service

import (
	"context"
	"fmt"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

// AncestryStore is the query contract required against the graph store.
type AncestryStore interface {
	ShortestPathBetweenPersons(ctx context.Context, fromID, toID domain.PersonID) (domain.AncestryPath, error)
	ExportPersons(ctx context.Context) ([]domain.Person, error)
}

// QueryService answers ancestry questions against an already ingested graph
// store, so a dataset loaded once with ingest can be queried repeatedly
// without reparsing the CSV.
type QueryService struct {
	store AncestryStore
}

// NewQueryService creates a query service backed by the supplied store.
func NewQueryService(store AncestryStore) *QueryService {
	return &QueryService{store: store}
}

// Trace finds the shortest ancestry path from ancestorID to descendantID in
// the store. Typed failures (ErrNoPath, UnknownIdentifierError) pass through
// for the CLI boundary to classify.
func (s *QueryService) Trace(ctx context.Context, ancestorID, descendantID domain.PersonID) (domain.AncestryPath, error) {
	path, err := s.store.ShortestPathBetweenPersons(ctx, ancestorID, descendantID)
	if err != nil {
		return domain.AncestryPath{}, fmt.Errorf("trace %s to %s: %w", ancestorID, descendantID, err)
	}
	return path, nil
}

// Persons returns every person in the store, ordered by identifier.
func (s *QueryService) Persons(ctx context.Context) ([]domain.Person, error) {
	persons, err := s.store.ExportPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("export persons: %w", err)
	}
	return persons, nil
}
