package service

import (
	"fmt"
	"io"

	"github.com/Voultapher/heritage-pathfind/internal/ancestry"
	"github.com/Voultapher/heritage-pathfind/internal/dataset"
	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

// AncestryService wires the query pipeline together: parse the dataset, fold
// it into a graph, answer path queries. The graph it returns is immutable and
// may be shared read-only across any number of Trace calls.
type AncestryService struct {
	parser *dataset.Parser
}

// NewAncestryService builds a service for datasets shaped by the given schema.
func NewAncestryService(schema dataset.Schema) (*AncestryService, error) {
	parser, err := dataset.NewParser(schema)
	if err != nil {
		return nil, err
	}
	return &AncestryService{parser: parser}, nil
}

// LoadGraph parses all records from r and builds the ancestry graph. The
// first bad line or attribute conflict aborts the load; no partial graph is
// returned.
func (s *AncestryService) LoadGraph(r io.Reader) (*ancestry.Graph, error) {
	records, err := s.parser.ParseAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	graph, err := ancestry.Build(records)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	return graph, nil
}

// Trace answers one path query from the ancestor endpoint to the descendant
// endpoint.
func (s *AncestryService) Trace(graph *ancestry.Graph, ancestorID, descendantID domain.PersonID) (domain.AncestryPath, error) {
	return graph.ShortestPath(ancestorID, descendantID)
}
