package storage

import (
	"context"
	"testing"

	"github.com/Comcast/littleflow/flow"
)

func TestMem(t *testing.T) {
	var _ GraphStore = &Mem{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewMem()

	g, err := flow.Build(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.WriteGraph(ctx, "empty", g); err != nil {
		t.Fatal(err)
	}

	got, err := s.ReadGraph(ctx, "empty")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got.Nodes) != 2 {
		t.Fatalf("got %#v", got)
	}

	ids, err := s.ListGraphs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 {
		t.Fatalf("ids == %v", ids)
	}

	if err := s.RemGraph(ctx, "empty"); err != nil {
		t.Fatal(err)
	}
	if got, err = s.ReadGraph(ctx, "empty"); err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("graph not removed")
	}
}
