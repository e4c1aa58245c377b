package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

// GraphRepository is the storage contract required by the ingest service.
type GraphRepository interface {
	UpsertPerson(ctx context.Context, person domain.Person, runID string) error
	UpsertRelationship(ctx context.Context, rel domain.Relationship, runID string) error
}

// IngestService pushes a loaded ancestry dataset into the graph store. Every
// service instance stamps its writes with a fresh run identifier so separate
// ingest runs can be told apart in the store.
type IngestService struct {
	repo  GraphRepository
	runID string
}

// NewIngestService creates an ingest service with a generated run id.
func NewIngestService(repo GraphRepository) *IngestService {
	return &IngestService{
		repo:  repo,
		runID: uuid.NewString(),
	}
}

// RunID returns the identifier stamped on this service's writes.
func (s *IngestService) RunID() string {
	return s.runID
}

// UpsertPerson persists one person node.
func (s *IngestService) UpsertPerson(ctx context.Context, person domain.Person) error {
	if err := s.repo.UpsertPerson(ctx, person, s.runID); err != nil {
		return fmt.Errorf("ingest person %s: %w", person.ID, err)
	}
	return nil
}

// UpsertRelationship persists one directed relationship edge. Both endpoints
// must already exist, so relationships ingest after persons.
func (s *IngestService) UpsertRelationship(ctx context.Context, rel domain.Relationship) error {
	if rel.SourceID == rel.TargetID {
		return fmt.Errorf("person %s: %w", rel.SourceID, domain.ErrSelfLoop)
	}
	if err := s.repo.UpsertRelationship(ctx, rel, s.runID); err != nil {
		return fmt.Errorf("ingest relationship %s-[%s]->%s: %w", rel.SourceID, rel.Kind, rel.TargetID, err)
	}
	return nil
}
