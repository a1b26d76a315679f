package tools

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Comcast/littleflow/flow"
)

func TestMermaid(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "g.mermaid")

	out, err := os.Create(filename)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, err := flow.DemoGraph(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if err := Mermaid(g, out, nil); err != nil {
		t.Fatal(err)
	}

	bs, err := ioutil.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	s := string(bs)
	for _, want := range []string{"graph TB", "n1 --> n2", "$price * $quantity"} {
		if !strings.Contains(s, want) {
			t.Fatalf("%s missing from %s", want, s)
		}
	}
}
