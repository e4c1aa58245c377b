package ancestry

import (
	"fmt"
	"strconv"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

// Build folds parsed records in file order into a sealed Graph.
//
// The first occurrence of a person id wins for attribute population; later
// records may fill attributes that are still missing, but a differing
// non-empty value is a ConflictError. Duplicate edges are kept distinct,
// self relationships are rejected.
func Build(records []domain.Record) (*Graph, error) {
	g := newGraph()

	for _, record := range records {
		if record.SourceID == record.TargetID {
			return nil, fmt.Errorf("line %d: person %s: %w",
				record.Line, record.SourceID, domain.ErrSelfLoop)
		}

		srcIdx := g.ensureNode(record.SourceID)
		if err := mergeAttributes(&g.persons[srcIdx], record); err != nil {
			return nil, err
		}

		dstIdx := g.ensureNode(record.TargetID)
		g.addEdge(srcIdx, dstIdx, record.Kind)
	}

	g.seal()
	return g, nil
}

func mergeAttributes(person *domain.Person, record domain.Record) error {
	if record.SourceName != "" {
		if person.Name == "" {
			person.Name = record.SourceName
		} else if person.Name != record.SourceName {
			return &domain.ConflictError{
				PersonID: record.SourceID,
				Field:    "name",
				Existing: person.Name,
				Incoming: record.SourceName,
				Line:     record.Line,
			}
		}
	}

	if record.SourceAge != nil {
		if person.Age == nil {
			age := *record.SourceAge
			person.Age = &age
		} else if *person.Age != *record.SourceAge {
			return &domain.ConflictError{
				PersonID: record.SourceID,
				Field:    "age",
				Existing: strconv.Itoa(*person.Age),
				Incoming: strconv.Itoa(*record.SourceAge),
				Line:     record.Line,
			}
		}
	}

	return nil
}
