package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

// IngestError accumulates the individual failures of one bulk ingest pass.
type IngestError struct {
	Errors []error
}

func (e *IngestError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	}
	parts := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		parts[i] = err.Error()
	}
	return "multiple errors: " + strings.Join(parts, "; ")
}

// BulkIngestor fans dataset entities out over a bounded pool of workers.
// Items that fail are collected rather than aborting the run, except for
// context cancellation which stops everything.
type BulkIngestor struct {
	service *IngestService
	workers int
}

// NewBulkIngestor creates a BulkIngestor with the provided concurrency.
func NewBulkIngestor(service *IngestService, workers int) *BulkIngestor {
	if workers <= 0 {
		workers = 4
	}
	return &BulkIngestor{
		service: service,
		workers: workers,
	}
}

// IngestPersons upserts all person nodes concurrently.
func (bi *BulkIngestor) IngestPersons(ctx context.Context, persons []domain.Person) error {
	return bi.run(ctx, len(persons), func(idx int) error {
		return bi.service.UpsertPerson(ctx, persons[idx])
	})
}

// IngestRelationships upserts all relationship edges concurrently. Call after
// IngestPersons so every edge finds its endpoints.
func (bi *BulkIngestor) IngestRelationships(ctx context.Context, rels []domain.Relationship) error {
	return bi.run(ctx, len(rels), func(idx int) error {
		return bi.service.UpsertRelationship(ctx, rels[idx])
	})
}

func (bi *BulkIngestor) run(ctx context.Context, total int, workFn func(idx int) error) error {
	if total == 0 {
		return nil
	}

	var (
		mu       sync.Mutex
		failures []error
		canceled error
	)
	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			canceled = err
			return
		}
		failures = append(failures, err)
	}

	indexCh := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < bi.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexCh {
				if err := workFn(idx); err != nil {
					record(err)
				}
			}
		}()
	}

feed:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexCh)
	wg.Wait()

	if canceled != nil {
		return canceled
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(failures) > 0 {
		return &IngestError{Errors: failures}
	}
	return nil
}
