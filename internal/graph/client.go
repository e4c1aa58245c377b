package graph

import (
	"context"
	"errors"
)

// Record is one row of a query response, keyed by the aliases in the Cypher
// RETURN clause.
type Record map[string]any

// Result collects the records a single query produced. An empty Records slice
// means the query matched nothing, which the repository layer maps to its
// typed not-found errors.
type Result struct {
	Records []Record
}

// Client is the access contract for the ancestry graph store. The Neo4j
// implementation backs the real store; MemoryClient stands in for tests.
type Client interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Options carries the connection settings for a store-backed client, filled
// from the GRAPH_* configuration.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI reports that no store URI was configured.
var ErrMissingURI = errors.New("graph URI is required")
