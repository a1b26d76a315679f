package reader

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadRulesJSON(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "rules.json",
		`[{"tier":"gold","discount":"0.2"},{"tier":"","discount":"0"}]`)

	rules, err := ReadRules(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 2 {
		t.Fatalf("rule count == %d", len(rules))
	}
	if rules[0]["tier"] != "gold" {
		t.Fatalf("bad rule %#v", rules[0])
	}
}

func TestReadRulesCSV(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "rules.csv", "tier,discount\ngold,0.2\n,0\n")

	rules, err := ReadRules(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 2 {
		t.Fatalf("rule count == %d", len(rules))
	}
	if rules[0]["discount"] != "0.2" {
		t.Fatalf("bad rule %#v", rules[0])
	}
	if rules[1]["tier"] != "" {
		t.Fatalf("bad rule %#v", rules[1])
	}
}

func TestReadRulesUnknownExtension(t *testing.T) {
	_, err := ReadRules("rules.xml")
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, is := err.(UnknownExtension); !is {
		t.Fatalf("expected UnknownExtension; got %T (%v)", err, err)
	}
}

func TestReadFlowJSON(t *testing.T) {
	dir := t.TempDir()
	rules := write(t, dir, "discount.json", `[{"tier":"gold","discount":"0.2"}]`)
	fn := write(t, dir, "passthrough.js", "const handler = (input) => input;")

	flowFile := write(t, dir, "flow.json", `[
  {"id":"discount","kind":"table","rules":`+quote(rules)+`,
   "inputs":["tier"],"outputs":["discount"],
   "sources":["request"],"targets":["total"]},
  {"id":"total","kind":"expression","rules":"$price * $quantity",
   "inputs":["total"],"sources":["discount"],"targets":["after"]},
  {"id":"after","kind":"function","rules":`+quote(fn)+`,
   "sources":["total"],"targets":["response"]}
]`)

	decisions, err := ReadFlow(flowFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(decisions) != 3 {
		t.Fatalf("decision count == %d", len(decisions))
	}
	if len(decisions[0].Rules) != 1 {
		t.Fatalf("bad table %#v", decisions[0])
	}
	if decisions[1].Expression != "$price * $quantity" {
		t.Fatalf("bad expression %#v", decisions[1])
	}
	if decisions[2].Function != "const handler = (input) => input;" {
		t.Fatalf("bad function %#v", decisions[2])
	}
}

func TestReadFlowYAML(t *testing.T) {
	dir := t.TempDir()

	flowFile := write(t, dir, "flow.yaml", `- id: total
  kind: expression
  rules: "$price * $quantity"
  inputs:
    - total
  sources:
    - request
  targets:
    - response
`)

	decisions, err := ReadFlow(flowFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(decisions) != 1 {
		t.Fatalf("decision count == %d", len(decisions))
	}
	d := decisions[0]
	if d.Id != "total" || d.Kind != "expression" {
		t.Fatalf("bad decision %#v", d)
	}
	if d.Expression != "$price * $quantity" {
		t.Fatalf("bad expression %q", d.Expression)
	}
	if len(d.Sources) != 1 || d.Sources[0] != "request" {
		t.Fatalf("bad sources %#v", d.Sources)
	}
}

func TestReadInputString(t *testing.T) {
	ctx, err := ReadInputString(`{"x": 3, "y": 4.5}`)
	if err != nil {
		t.Fatal(err)
	}
	if n, have := ctx.Float("x"); !have || n != 3 {
		t.Fatalf("bad x: %v %v", n, have)
	}
	if n, have := ctx.Float("y"); !have || n != 4.5 {
		t.Fatalf("bad y: %v %v", n, have)
	}
}

func quote(s string) string {
	return `"` + s + `"`
}
