package flow

import (
	"context"
	"testing"
)

func TestValidateClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, err := Build(ctx, []*Decision{
		{Id: "a", Kind: "function", Sources: []string{"request"}, Targets: []string{"response"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	a := Validate(g)
	if len(a.Errors) != 0 {
		t.Fatalf("errors: %v", a.Errors)
	}
	if len(a.Dangling) != 0 {
		t.Fatalf("dangling: %v", a.Dangling)
	}
	if len(a.Orphans) != 0 {
		t.Fatalf("orphans: %v", a.Orphans)
	}
}

func TestValidateDangling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, err := Build(ctx, []*Decision{
		{Id: "a", Kind: "function", Targets: []string{"ghost"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	a := Validate(g)
	if len(a.Dangling) != 1 || a.Dangling[0] != "ghost" {
		t.Fatalf("dangling: %v", a.Dangling)
	}
}

func TestValidateOrphans(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, err := Build(ctx, []*Decision{
		{Id: "loner", Kind: "function"},
	})
	if err != nil {
		t.Fatal(err)
	}

	a := Validate(g)
	if len(a.Orphans) != 1 || a.Orphans[0] != "loner" {
		t.Fatalf("orphans: %v", a.Orphans)
	}
}
