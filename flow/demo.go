package flow

import "context"

// DemoDecisions makes a little pricing flow that exercises all three
// decision kinds.  Handy for tests, demos, and renderer development.
func DemoDecisions() []*Decision {
	return []*Decision{
		{
			Id:   "discount",
			Kind: "table",
			Doc:  "Discount rate by customer tier.",
			Rules: []Rule{
				{"tier": "gold", "discount": "0.2"},
				{"tier": "silver", "discount": "0.1"},
				{"tier": "", "discount": "0"},
			},
			Inputs:  []string{"tier"},
			Outputs: []string{"discount"},
			Sources: []string{InputNodeId},
			Targets: []string{"total"},
		},
		{
			Id:         "total",
			Kind:       "expression",
			Doc:        "Order total before shipping.",
			Expression: "$price * $quantity",
			Inputs:     []string{"total"},
			Sources:    []string{"discount"},
			Targets:    []string{"round"},
		},
		{
			Id:       "round",
			Kind:     "function",
			Function: "const handler = (input) => Math.round(input.total * 100) / 100;",
			Sources:  []string{"total"},
			Targets:  []string{OutputNodeId},
		},
	}
}

// DemoGraph compiles DemoDecisions.
func DemoGraph(ctx context.Context) (*DecisionGraph, error) {
	return Build(ctx, DemoDecisions())
}
