package main

import (
	"context"
	"log"
	"sync"

	"github.com/Comcast/littleflow/expr"
	"github.com/Comcast/littleflow/flow"
	"github.com/Comcast/littleflow/reader"
	"github.com/Comcast/littleflow/storage/bolt"
)

// Service holds one compiled flow and evaluates expressions against
// it.
//
// Compile swaps the decisions and graph atomically, so requests in
// flight keep the graph they started with.
type Service struct {
	sync.RWMutex

	filename string
	builder  *flow.GraphBuilder
	eval     *expr.Evaluator

	decisions []*flow.Decision
	graph     *flow.DecisionGraph

	store   *bolt.Storage
	graphId string
}

func NewService(filename string, check bool) (*Service, error) {
	b := flow.NewGraphBuilder()
	if check {
		b.Builders.Register("function", &flow.FunctionNodeBuilder{Check: true})
	}
	return &Service{
		filename: filename,
		builder:  b,
		eval:     expr.NewEvaluator(),
	}, nil
}

func (s *Service) OpenStore(filename, graphId string) error {
	store, err := bolt.NewStorage(filename)
	if err != nil {
		return err
	}
	if err = store.Open(); err != nil {
		return err
	}
	s.store = store
	s.graphId = graphId
	return nil
}

func (s *Service) CloseStore() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// Compile (re)reads the flow definition, compiles it, and swaps the
// served graph.  On any error the previous graph stays in place.
func (s *Service) Compile(ctx context.Context) error {
	var (
		decisions []*flow.Decision
		err       error
	)
	if s.filename == "" {
		decisions = flow.DemoDecisions()
	} else {
		if decisions, err = reader.ReadFlow(s.filename); err != nil {
			return err
		}
	}

	g, err := s.builder.Build(ctx, decisions)
	if err != nil {
		return err
	}

	s.Lock()
	s.decisions = decisions
	s.graph = g
	s.Unlock()

	log.Printf("compiled %d decisions", len(decisions))

	if s.store != nil {
		if err = s.store.WriteGraph(ctx, s.graphId, g); err != nil {
			return err
		}
	}

	return nil
}

// Graph returns the currently served graph.
func (s *Service) Graph() *flow.DecisionGraph {
	s.RLock()
	g := s.graph
	s.RUnlock()
	return g
}

// Decisions returns the currently served decisions.
func (s *Service) Decisions() []*flow.Decision {
	s.RLock()
	ds := s.decisions
	s.RUnlock()
	return ds
}

// EvalRequest is one expression-evaluation request, however it
// arrived.
type EvalRequest struct {
	// Id is echoed in the response, for couplings that multiplex.
	Id string `json:"id,omitempty"`

	Expr string       `json:"expr"`
	Data expr.Context `json:"data,omitempty"`

	// Legacy asks for the collapsed result: a number on success
	// and the error message (a string) on failure.
	Legacy bool `json:"legacy,omitempty"`
}

// EvalResponse is the answer to an EvalRequest.
type EvalResponse struct {
	Id string `json:"id,omitempty"`

	// Result is a float64 on success.  In Legacy mode it's the
	// error string on failure, and Error stays empty.
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Eval answers one EvalRequest.
func (s *Service) Eval(req *EvalRequest) *EvalResponse {
	resp := &EvalResponse{
		Id: req.Id,
	}
	if req.Legacy {
		resp.Result = expr.Eval(req.Expr, req.Data)
		return resp
	}
	n, err := s.eval.Evaluate(req.Expr, req.Data)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.Result = n
	return resp
}
