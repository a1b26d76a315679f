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

// Package reader loads flow definitions and rule rows from files.
//
// A flow definition file (JSON or YAML) is a list of DecisionRefs.
// Each ref's Rules string is resolved according to its Kind: a table
// reads rule rows from that path (JSON or CSV), a function reads its
// source from that path, and an expression uses the string verbatim
// as expression text.
//
// All of the file traffic lives here so that package flow doesn't do
// any IO.
package reader

import (
	"encoding/csv"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/Comcast/littleflow/expr"
	"github.com/Comcast/littleflow/flow"

	"github.com/jsccast/yaml"
)

// A DecisionRef is a Decision as written in a flow definition file,
// with its rule rows (or function source) still behind a path.
type DecisionRef struct {
	Id      string   `json:"id" yaml:"id"`
	Kind    string   `json:"kind" yaml:"kind"`
	Doc     string   `json:"doc,omitempty" yaml:"doc,omitempty"`
	Rules   string   `json:"rules,omitempty" yaml:"rules,omitempty"`
	Inputs  []string `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs []string `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty"`
	Targets []string `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// UnknownExtension occurs when a filename doesn't tell us how to
// parse the file.
type UnknownExtension struct {
	Path string
}

func (e UnknownExtension) Error() string {
	return `unknown file extension for "` + e.Path + `"`
}

// Resolve turns a DecisionRef into a Decision, reading whatever the
// ref's Kind calls for.
func (r *DecisionRef) Resolve() (*flow.Decision, error) {
	d := &flow.Decision{
		Id:      r.Id,
		Kind:    r.Kind,
		Doc:     r.Doc,
		Inputs:  r.Inputs,
		Outputs: r.Outputs,
		Sources: r.Sources,
		Targets: r.Targets,
	}

	switch r.Kind {
	case "table":
		rules, err := ReadRules(r.Rules)
		if err != nil {
			return nil, err
		}
		d.Rules = rules
	case "function":
		bs, err := ioutil.ReadFile(r.Rules)
		if err != nil {
			return nil, err
		}
		d.Function = string(bs)
	default:
		// For an expression, Rules is the expression text
		// itself.  Any other kind gets the same treatment and
		// takes its chances with the builder registry.
		d.Expression = r.Rules
	}

	return d, nil
}

// ReadFlow reads a flow definition file (JSON or YAML, by extension)
// and resolves each ref.
func ReadFlow(path string) ([]*flow.Decision, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var refs []*DecisionRef
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err = json.Unmarshal(bs, &refs); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(bs, &refs); err != nil {
			return nil, err
		}
	default:
		return nil, UnknownExtension{path}
	}

	decisions := make([]*flow.Decision, 0, len(refs))
	for _, r := range refs {
		d, err := r.Resolve()
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}

	return decisions, nil
}

// ReadRules reads decision-table rows from a JSON array of objects
// or from a CSV file with a header row.
func ReadRules(path string) ([]flow.Rule, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		bs, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var rules []flow.Rule
		if err = json.Unmarshal(bs, &rules); err != nil {
			return nil, err
		}
		return rules, nil
	case ".csv":
		return readRulesCSV(path)
	default:
		return nil, UnknownExtension{path}
	}
}

func readRulesCSV(path string) ([]flow.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []flow.Rule{}, nil
	}

	header := records[0]
	rules := make([]flow.Rule, 0, len(records)-1)
	for _, record := range records[1:] {
		rule := make(flow.Rule, len(header))
		for i, cell := range record {
			rule[header[i]] = cell
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// ReadInput reads JSON context data for expression evaluation.
func ReadInput(path string) (expr.Context, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadInputString(string(bs))
}

// ReadInputString parses JSON context data.
func ReadInputString(data string) (expr.Context, error) {
	var ctx expr.Context
	if err := json.Unmarshal([]byte(data), &ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}
