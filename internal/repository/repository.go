package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
	"github.com/Voultapher/heritage-pathfind/internal/graph"
)

// Repository encapsulates graph-store persistence for the ancestry dataset.
type Repository struct {
	client graph.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client) *Repository {
	return &Repository{client: client}
}

// UpsertPerson ensures a person node exists with the latest known attributes.
// Empty name / nil age never overwrite values already stored.
func (r *Repository) UpsertPerson(ctx context.Context, person domain.Person, runID string) error {
	if person.ID == 0 {
		return errors.New("person id is required")
	}

	age := -1
	if person.Age != nil {
		age = *person.Age
	}

	params := map[string]any{
		"personId": int64(person.ID),
		"name":     person.Name,
		"age":      age,
		"runId":    runID,
	}

	if _, err := r.client.ExecuteWrite(ctx, upsertPersonCypher, params); err != nil {
		return fmt.Errorf("upsert person %s: %w", person.ID, err)
	}
	return nil
}

// UpsertRelationship ensures a directed RELATED_TO edge between two existing
// person nodes. Parallel edges of the same kind collapse into one in the
// store; the in-memory pipeline is what preserves duplicates.
func (r *Repository) UpsertRelationship(ctx context.Context, rel domain.Relationship, runID string) error {
	if rel.SourceID == 0 || rel.TargetID == 0 {
		return errors.New("both source and target person ids are required")
	}
	if rel.Kind == "" {
		return errors.New("relationship kind is required")
	}

	params := map[string]any{
		"sourceId": int64(rel.SourceID),
		"targetId": int64(rel.TargetID),
		"kind":     rel.Kind,
		"runId":    runID,
	}

	res, err := r.client.ExecuteWrite(ctx, upsertRelationshipCypher, params)
	if err != nil {
		return fmt.Errorf("upsert relationship %s-[%s]->%s: %w", rel.SourceID, rel.Kind, rel.TargetID, err)
	}
	if len(res.Records) == 0 {
		return fmt.Errorf("relationship %s-[%s]->%s: %w", rel.SourceID, rel.Kind, rel.TargetID, errEndpointMissing)
	}
	return nil
}

// ShortestPathBetweenPersons runs the path query server-side and maps the
// result into the same shape the in-memory finder produces.
func (r *Repository) ShortestPathBetweenPersons(ctx context.Context, fromID, toID domain.PersonID) (domain.AncestryPath, error) {
	if fromID == toID {
		person, err := r.fetchPerson(ctx, fromID)
		if err != nil {
			return domain.AncestryPath{}, err
		}
		return domain.AncestryPath{Steps: []domain.PathStep{{Person: person}}}, nil
	}

	for _, id := range []domain.PersonID{fromID, toID} {
		if _, err := r.fetchPerson(ctx, id); err != nil {
			return domain.AncestryPath{}, err
		}
	}

	params := map[string]any{
		"sourceId": int64(fromID),
		"targetId": int64(toID),
	}

	res, err := r.client.ExecuteRead(ctx, shortestPathCypher, params)
	if err != nil {
		return domain.AncestryPath{}, fmt.Errorf("shortest path query: %w", err)
	}
	if len(res.Records) == 0 {
		return domain.AncestryPath{}, fmt.Errorf("from %s to %s: %w", fromID, toID, domain.ErrNoPath)
	}

	record := res.Records[0]

	var path domain.AncestryPath
	if nodesRaw, ok := record["nodes"].([]any); ok {
		for _, n := range nodesRaw {
			nodeMap, ok := n.(map[string]any)
			if !ok {
				continue
			}
			path.Steps = append(path.Steps, domain.PathStep{Person: decodePerson(nodeMap)})
		}
	}
	if kindsRaw, ok := record["kinds"].([]any); ok {
		for i, k := range kindsRaw {
			if i >= len(path.Steps)-1 {
				break
			}
			path.Steps[i].Kind = toString(k)
		}
	}

	return path, nil
}

// ExportPersons returns all persons ordered by identifier.
func (r *Repository) ExportPersons(ctx context.Context) ([]domain.Person, error) {
	res, err := r.client.ExecuteRead(ctx, exportPersonsCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("export persons query: %w", err)
	}
	persons := make([]domain.Person, 0, len(res.Records))
	for _, record := range res.Records {
		persons = append(persons, decodePerson(record))
	}
	return persons, nil
}

func (r *Repository) fetchPerson(ctx context.Context, id domain.PersonID) (domain.Person, error) {
	res, err := r.client.ExecuteRead(ctx, fetchPersonCypher, map[string]any{"personId": int64(id)})
	if err != nil {
		return domain.Person{}, fmt.Errorf("fetch person %s: %w", id, err)
	}
	if len(res.Records) == 0 {
		return domain.Person{}, &domain.UnknownIdentifierError{ID: id}
	}
	return decodePerson(res.Records[0]), nil
}

var errEndpointMissing = errors.New("one or both endpoints do not exist")

func decodePerson(record map[string]any) domain.Person {
	person := domain.Person{
		ID:   domain.PersonID(toInt64(record["personId"])),
		Name: toString(record["name"]),
	}
	if age := toInt64(record["age"]); age >= 0 {
		a := int(age)
		person.Age = &a
	}
	return person
}

func toString(val any) string {
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

func toInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return -1
	}
}

const upsertPersonCypher = `
MERGE (p:Person {personId: $personId})
SET p.name = CASE WHEN $name = "" THEN coalesce(p.name, "") ELSE $name END,
    p.age = CASE WHEN $age < 0 THEN p.age ELSE $age END,
    p.ingestRunId = $runId
RETURN p.personId AS personId
`

const upsertRelationshipCypher = `
MATCH (src:Person {personId: $sourceId})
MATCH (dst:Person {personId: $targetId})
MERGE (src)-[r:RELATED_TO {kind: $kind}]->(dst)
SET r.ingestRunId = $runId
RETURN $sourceId AS sourceId
`

const fetchPersonCypher = `
MATCH (p:Person {personId: $personId})
RETURN p.personId AS personId,
       coalesce(p.name, "") AS name,
       coalesce(p.age, -1) AS age
`

const shortestPathCypher = `
MATCH (source:Person {personId: $sourceId}), (target:Person {personId: $targetId})
MATCH path = shortestPath((source)-[:RELATED_TO*..50]->(target))
RETURN [n IN nodes(path) | {
  personId: n.personId,
  name: coalesce(n.name, ""),
  age: coalesce(n.age, -1)
}] AS nodes,
[rel IN relationships(path) | rel.kind] AS kinds,
length(path) AS hops
`

const exportPersonsCypher = `
MATCH (p:Person)
RETURN p.personId AS personId,
       coalesce(p.name, "") AS name,
       coalesce(p.age, -1) AS age
ORDER BY p.personId
`
