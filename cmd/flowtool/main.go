/* Copyright 2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package main is a command-line utility for working with flow
// definitions: compile them to graphs, evaluate expressions, and
// render pictures.
//
//	flowtool compile -f pricing.yaml -p
//	flowtool eval -e '$x + 5' -d '{"x":3}'
//	flowtool dot -f pricing.yaml | dot -Tpng > pricing.png
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/Comcast/littleflow/expr"
	"github.com/Comcast/littleflow/flow"
	"github.com/Comcast/littleflow/reader"
	"github.com/Comcast/littleflow/storage/bolt"
	"github.com/Comcast/littleflow/tools"

	"github.com/jsccast/yaml"
)

func main() {

	if len(os.Args) < 2 {
		Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	switch os.Args[1] {

	case "compile":
		var (
			fs = flag.NewFlagSet("compile", flag.ExitOnError)

			filename  = fs.String("f", "", "Flow definition filename (default: the demo flow)")
			pretty    = fs.Bool("p", false, "Pretty-print the graph JSON")
			check     = fs.Bool("check", false, "Syntax-check function sources")
			validate  = fs.Bool("validate", false, "Report dangling edges and orphan nodes")
			storeFile = fs.String("store", "", "Optional Bolt file to write the graph to")
			graphId   = fs.String("id", "flow", "Graph id for -store")
		)
		fs.Parse(os.Args[2:])

		decisions := readFlow(*filename)

		b := flow.NewGraphBuilder()
		if *check {
			b.Builders.Register("function", &flow.FunctionNodeBuilder{Check: true})
		}

		g, err := b.Build(ctx, decisions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if *validate {
			a := flow.Validate(g)
			for _, complaint := range a.Errors {
				fmt.Fprintf(os.Stderr, "error: %s\n", complaint)
			}
			for _, id := range a.Dangling {
				fmt.Fprintf(os.Stderr, "dangling edge endpoint: %s\n", id)
			}
			for _, id := range a.Orphans {
				fmt.Fprintf(os.Stderr, "orphan node: %s\n", id)
			}
		}

		if *storeFile != "" {
			s, err := bolt.NewStorage(*storeFile)
			if err == nil {
				err = s.Open()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			if err = s.WriteGraph(ctx, *graphId, g); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			if err = s.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		}

		emitJSON(g, *pretty)

	case "eval":
		var (
			fs = flag.NewFlagSet("eval", flag.ExitOnError)

			src      = fs.String("e", "", "Expression")
			dataJS   = fs.String("d", "{}", "Context data in JSON")
			dataFile = fs.String("data-file", "", "Optional JSON file for context data")
			legacy   = fs.Bool("legacy", false, "Collapse errors into the result (JSON number or string)")
		)
		fs.Parse(os.Args[2:])

		var (
			data expr.Context
			err  error
		)
		if *dataFile != "" {
			data, err = reader.ReadInput(*dataFile)
		} else {
			data, err = reader.ReadInputString(*dataJS)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if *legacy {
			emitJSON(expr.Eval(*src, data), false)
			return
		}

		n, err := expr.Evaluate(*src, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%g\n", n)

	case "dot":
		g := compileArgs(ctx, os.Args[2:])
		if err := tools.Dot(g, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

	case "mermaid":
		g := compileArgs(ctx, os.Args[2:])
		if err := tools.Mermaid(g, os.Stdout, nil); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

	case "html":
		var (
			fs = flag.NewFlagSet("html", flag.ExitOnError)

			filename = fs.String("f", "", "Flow definition filename (default: the demo flow)")
			title    = fs.String("title", "flow", "Page title")
		)
		fs.Parse(os.Args[2:])

		decisions := readFlow(*filename)
		g, err := flow.Build(ctx, decisions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := tools.RenderFlowPage(*title, decisions, g, os.Stdout, nil); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

	case "yamltojson":
		bs, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		var x interface{}
		if err = yaml.Unmarshal(bs, &x); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		emitJSON(x, true)

	default:
		Usage()
		os.Exit(1)
	}
}

func Usage() {
	fmt.Fprintf(os.Stderr, `flowtool <command> [flags]

commands:
  compile     compile a flow definition to a graph (JSON on stdout)
  eval        evaluate an arithmetic expression against context data
  dot         render a compiled flow for Graphviz
  mermaid     render a compiled flow for Mermaid
  html        render a flow documentation page
  yamltojson  convert YAML on stdin to JSON on stdout

Run 'flowtool <command> -h' for flags.
`)
}

func readFlow(filename string) []*flow.Decision {
	if filename == "" {
		return flow.DemoDecisions()
	}
	decisions, err := reader.ReadFlow(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return decisions
}

func compileArgs(ctx context.Context, args []string) *flow.DecisionGraph {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	filename := fs.String("f", "", "Flow definition filename (default: the demo flow)")
	fs.Parse(args)

	g, err := flow.Build(ctx, readFlow(*filename))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return g
}

func emitJSON(x interface{}, pretty bool) {
	var (
		bs  []byte
		err error
	)
	if pretty {
		bs, err = json.MarshalIndent(&x, "", "  ")
	} else {
		bs, err = json.Marshal(&x)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", bs)
}
