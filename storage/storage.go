package storage

import (
	"context"
	"sync"

	"github.com/Comcast/littleflow/flow"
)

// A GraphStore persists compiled graphs by flow id.
//
// Compilation is cheap, but an engine restarting at 3am shouldn't
// have to find the flow definition files to start serving again.
type GraphStore interface {
	WriteGraph(ctx context.Context, id string, g *flow.DecisionGraph) error

	// ReadGraph returns nil (and no error) for an id that was
	// never written.
	ReadGraph(ctx context.Context, id string) (*flow.DecisionGraph, error)

	RemGraph(ctx context.Context, id string) error

	ListGraphs(ctx context.Context) ([]string, error)
}

// Mem is an in-memory GraphStore for tests and ephemeral use.
type Mem struct {
	sync.RWMutex
	graphs map[string]*flow.DecisionGraph
}

func NewMem() *Mem {
	return &Mem{
		graphs: make(map[string]*flow.DecisionGraph),
	}
}

func (s *Mem) WriteGraph(ctx context.Context, id string, g *flow.DecisionGraph) error {
	s.Lock()
	s.graphs[id] = g
	s.Unlock()
	return nil
}

func (s *Mem) ReadGraph(ctx context.Context, id string) (*flow.DecisionGraph, error) {
	s.RLock()
	g := s.graphs[id]
	s.RUnlock()
	return g, nil
}

func (s *Mem) RemGraph(ctx context.Context, id string) error {
	s.Lock()
	delete(s.graphs, id)
	s.Unlock()
	return nil
}

func (s *Mem) ListGraphs(ctx context.Context) ([]string, error) {
	s.RLock()
	ids := make([]string, 0, len(s.graphs))
	for id := range s.graphs {
		ids = append(ids, id)
	}
	s.RUnlock()
	return ids, nil
}
