package graph

import (
	"context"
	"sync"
)

// MemoryClient is a scripted stand-in for the ancestry graph store. Tests
// queue results per access mode and inspect the cypher that was issued.
// Queued results are consumed in FIFO order; an exhausted queue yields an
// empty Result, the store's shape for "nothing matched".
type MemoryClient struct {
	mu           sync.Mutex
	reads        script
	writes       script
	err          error
	connectivity error
}

// ExecutedQuery captures one cypher statement with the parameters it ran with.
type ExecutedQuery struct {
	Query  string
	Params map[string]any
}

// script pairs the queries seen on one access mode with the results still
// queued for it.
type script struct {
	calls   []ExecutedQuery
	results []Result
}

func (s *script) run(cypher string, params map[string]any) Result {
	s.calls = append(s.calls, ExecutedQuery{
		Query:  cypher,
		Params: cloneParams(params),
	})
	if len(s.results) == 0 {
		return Result{}
	}
	next := s.results[0]
	s.results = s.results[1:]
	return next
}

// NewMemoryClient instantiates an empty scripted client.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{}
}

// WithError makes every subsequent read and write fail with err.
func (m *MemoryClient) WithError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithConnectivityError forces VerifyConnectivity to return the supplied error.
func (m *MemoryClient) WithConnectivityError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectivity = err
	return m
}

// PushReadResult queues a result for an upcoming ExecuteRead call.
func (m *MemoryClient) PushReadResult(res Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads.results = append(m.reads.results, res)
}

// PushWriteResult queues a result for an upcoming ExecuteWrite call.
func (m *MemoryClient) PushWriteResult(res Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes.results = append(m.writes.results, res)
}

func (m *MemoryClient) ExecuteWrite(_ context.Context, cypher string, params map[string]any) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Result{}, m.err
	}
	return m.writes.run(cypher, params), nil
}

func (m *MemoryClient) ExecuteRead(_ context.Context, cypher string, params map[string]any) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Result{}, m.err
	}
	return m.reads.run(cypher, params), nil
}

func (m *MemoryClient) VerifyConnectivity(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectivity
}

func (m *MemoryClient) Close(context.Context) error {
	return nil
}

// WriteCalls returns a snapshot of the write queries executed so far.
func (m *MemoryClient) WriteCalls() []ExecutedQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ExecutedQuery(nil), m.writes.calls...)
}

// ReadCalls returns a snapshot of the read queries executed so far.
func (m *MemoryClient) ReadCalls() []ExecutedQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ExecutedQuery(nil), m.reads.calls...)
}

// cloneParams snapshots the parameter map at call time, so later mutation by
// the caller cannot retroactively change what a test observed.
func cloneParams(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
