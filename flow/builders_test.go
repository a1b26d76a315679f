package flow

import (
	"context"
	"testing"
)

func TestTableBuilder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := &Decision{
		Id:      "shipping",
		Kind:    "table",
		Rules:   []Rule{{"weight": "< 10", "cost": "5"}, {"weight": "", "cost": "20"}},
		Inputs:  []string{"weight"},
		Outputs: []string{"cost"},
	}

	n, err := (&TableNodeBuilder{}).Build(ctx, d)
	if err != nil {
		t.Fatal(err)
	}
	if n.Id != "shipping" || n.Name != "shipping" || n.Type != TableNode {
		t.Fatalf("bad node %#v", n)
	}
	content, is := n.Content.(*TableContent)
	if !is {
		t.Fatalf("bad content %#v", n.Content)
	}
	if content.HitPolicy != FirstHitPolicy {
		t.Fatalf("hit policy %q", content.HitPolicy)
	}
	if len(content.Rules) != 2 {
		t.Fatalf("rule count == %d", len(content.Rules))
	}
	if f := content.Inputs[0]; f.Id != "weight" || f.Name != "weight" || f.Field != "weight" {
		t.Fatalf("bad field %#v", f)
	}
}

func TestExpressionBuilder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := &Decision{
		Id:         "total",
		Kind:       "expression",
		Expression: "$price * $quantity",
		Inputs:     []string{"total"},
	}

	n, err := (&ExpressionNodeBuilder{}).Build(ctx, d)
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != ExpressionNode {
		t.Fatalf("bad node %#v", n)
	}
	content := n.Content.(*ExpressionContent)
	if len(content.Expressions) != 1 {
		t.Fatalf("expression count == %d", len(content.Expressions))
	}
	e := content.Expressions[0]
	if e.Id != "total" || e.Key != "total" || e.Value != "$price * $quantity" {
		t.Fatalf("bad expression %#v", e)
	}
}

func TestExpressionBuilderNoInputs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := (&ExpressionNodeBuilder{}).Build(ctx, &Decision{
		Id:         "broken",
		Kind:       "expression",
		Expression: "1 + 1",
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, is := err.(NoInputs); !is {
		t.Fatalf("expected NoInputs; got %T (%v)", err, err)
	}
}

func TestFunctionBuilder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := "const handler = (input) => input;"
	n, err := (&FunctionNodeBuilder{}).Build(ctx, &Decision{
		Id:       "passthrough",
		Kind:     "function",
		Function: src,
	})
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != FunctionNode {
		t.Fatalf("bad node %#v", n)
	}
	if n.Content != src {
		t.Fatalf("bad content %#v", n.Content)
	}
}

func TestFunctionBuilderCheck(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := &FunctionNodeBuilder{Check: true}

	if _, err := b.Build(ctx, &Decision{
		Id:       "ok",
		Kind:     "function",
		Function: "var x = 1 + 1;",
	}); err != nil {
		t.Fatal(err)
	}

	_, err := b.Build(ctx, &Decision{
		Id:       "broken",
		Kind:     "function",
		Function: "var x = ;",
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, is := err.(BadFunction); !is {
		t.Fatalf("expected BadFunction; got %T (%v)", err, err)
	}
}
