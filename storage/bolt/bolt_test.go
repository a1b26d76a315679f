package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Comcast/littleflow/flow"
	"github.com/Comcast/littleflow/storage"
)

func TestImpl(t *testing.T) {
	// Just confirm that this code compiles.
	var _ storage.GraphStore = &Storage{}
}

func TestBasics(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "graphs.db")

	s, err := NewStorage(filename)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.Open(); err != nil {
		t.Fatal(err)
	}

	defer func() {
		if err := s.Close(); err != nil {
			t.Fatal(err)
		}
	}()

	g, err := flow.Build(ctx, []*flow.Decision{
		{Id: "a", Kind: "function", Function: "var x = 1;"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.WriteGraph(ctx, "pricing", g); err != nil {
		t.Fatal(err)
	}

	got, err := s.ReadGraph(ctx, "pricing")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("graph not found")
	}
	if len(got.Nodes) != len(g.Nodes) {
		t.Fatalf("node count == %d", len(got.Nodes))
	}
	if got.Nodes[1].Id != "a" {
		t.Fatalf("bad node %#v", got.Nodes[1])
	}

	ids, err := s.ListGraphs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != "pricing" {
		t.Fatalf("ids == %v", ids)
	}

	missing, err := s.ReadGraph(ctx, "nope")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatalf("found %#v", missing)
	}

	if err := s.RemGraph(ctx, "pricing"); err != nil {
		t.Fatal(err)
	}

	if got, err = s.ReadGraph(ctx, "pricing"); err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("graph not removed")
	}
}
